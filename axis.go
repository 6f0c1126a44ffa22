package gizmo

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// AxisFlags is a set over {X, Y, Z}. Plane handles select two axes and the
// uniform/screen handles select all three.
type AxisFlags uint8

const (
	AxisX AxisFlags = 1 << iota
	AxisY
	AxisZ

	AxisNone AxisFlags = 0
	AxisXY             = AxisX | AxisY
	AxisYZ             = AxisY | AxisZ
	AxisXZ             = AxisX | AxisZ
	AxisAll            = AxisX | AxisY | AxisZ
)

func (a AxisFlags) Has(b AxisFlags) bool {
	return b != AxisNone && a&b == b
}

func (a AxisFlags) Count() int {
	n := 0
	for i := 0; i < 3; i++ {
		if a&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// Indices lists the selected axes as 0 (X), 1 (Y), 2 (Z), in that order.
func (a AxisFlags) Indices() []int {
	out := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		if a&(1<<i) != 0 {
			out = append(out, i)
		}
	}
	return out
}

func (a AxisFlags) String() string {
	if a == AxisNone {
		return "None"
	}
	var sb strings.Builder
	for i, name := range [3]string{"X", "Y", "Z"} {
		if a&(1<<i) != 0 {
			sb.WriteString(name)
		}
	}
	return sb.String()
}

func axisFlag(i int) AxisFlags {
	return AxisFlags(1 << i)
}

func unitAxis(i int) mgl32.Vec3 {
	var v mgl32.Vec3
	v[i] = 1
	return v
}
