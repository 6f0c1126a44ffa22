// Package assets resolves gizmo handle mesh paths to ray-castable surfaces,
// either from geometry built in code or from glTF files.
package assets

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

var ErrUnknownAsset = errors.New("assets: unknown procedural asset")

const (
	arrowLength   = 2.0
	shaftRadius   = 0.03
	tipLength     = 0.4
	tipRadius     = 0.1
	cubeHalf      = 0.12
	planeNear     = 0.5
	planeFar      = 0.9
	ringRadius    = 1.8
	ringWidth     = 0.06
	frameWidth    = 0.04
	outlineRadius = 2.1
	ringSegments  = 48
	shadeRadius   = 1.75
	shadeRings    = 12
	centerHalf    = 0.15
)

var procedural = map[string]func() []geom.Triangle{
	"translate/arrow_x": func() []geom.Triangle { return alongAxis(arrow(), 0) },
	"translate/arrow_y": func() []geom.Triangle { return alongAxis(arrow(), 1) },
	"translate/arrow_z": func() []geom.Triangle { return alongAxis(arrow(), 2) },
	"rotate/ring_x":     func() []geom.Triangle { return alongAxis(ring(ringRadius), 0) },
	"rotate/ring_y":     func() []geom.Triangle { return alongAxis(ring(ringRadius), 1) },
	"rotate/ring_z":     func() []geom.Triangle { return alongAxis(ring(ringRadius), 2) },
	"rotate/outline":    func() []geom.Triangle { return alongAxis(ring(outlineRadius), 2) },
	"rotate/shade":      func() []geom.Triangle { return sphere(shadeRadius) },
	"scale/handle_x":    func() []geom.Triangle { return alongAxis(cubeArrow(), 0) },
	"scale/handle_y":    func() []geom.Triangle { return alongAxis(cubeArrow(), 1) },
	"scale/handle_z":    func() []geom.Triangle { return alongAxis(cubeArrow(), 2) },
	"scale/center":      centerCube,
	"common/plane_xy":   func() []geom.Triangle { return alongAxis(planeQuad(), 0) },
	"common/plane_yz":   func() []geom.Triangle { return alongAxis(planeQuad(), 1) },
	"common/plane_xz":   func() []geom.Triangle { return alongAxis(planeQuad(), 2) },
	"common/frame_xy":   func() []geom.Triangle { return alongAxis(planeFrame(), 0) },
	"common/frame_yz":   func() []geom.Triangle { return alongAxis(planeFrame(), 1) },
	"common/frame_xz":   func() []geom.Triangle { return alongAxis(planeFrame(), 2) },
}

// ProceduralProvider builds the stock handle meshes in code, so a gizmo works
// without any asset files.
type ProceduralProvider struct{}

func (ProceduralProvider) LoadSurface(path string) (*geom.Surface, error) {
	build, ok := procedural[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, path)
	}
	return geom.NewSurface(build()), nil
}

// ProceduralNames lists the paths ProceduralProvider knows, sorted.
func ProceduralNames() []string {
	names := make([]string, 0, len(procedural))
	for name := range procedural {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// alongAxis cycles the coordinates of shapes modelled along X (or, for the
// planes and rings, in the XY plane / around X) onto axis i. Cycling keeps
// handedness.
func alongAxis(tris []geom.Triangle, axis int) []geom.Triangle {
	if axis == 0 {
		return tris
	}
	cycle := func(p mgl32.Vec3) mgl32.Vec3 {
		var out mgl32.Vec3
		for i := 0; i < 3; i++ {
			out[(i+axis)%3] = p[i]
		}
		return out
	}
	out := make([]geom.Triangle, len(tris))
	for i, t := range tris {
		out[i] = geom.Triangle{A: cycle(t.A), B: cycle(t.B), C: cycle(t.C)}
	}
	return out
}

func box(minB, maxB mgl32.Vec3) []geom.Triangle {
	c := func(x, y, z int) mgl32.Vec3 {
		v := minB
		if x == 1 {
			v[0] = maxB[0]
		}
		if y == 1 {
			v[1] = maxB[1]
		}
		if z == 1 {
			v[2] = maxB[2]
		}
		return v
	}
	quads := [6][4]mgl32.Vec3{
		{c(0, 0, 0), c(0, 1, 0), c(1, 1, 0), c(1, 0, 0)}, // -Z
		{c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1)}, // +Z
		{c(0, 0, 0), c(1, 0, 0), c(1, 0, 1), c(0, 0, 1)}, // -Y
		{c(0, 1, 0), c(0, 1, 1), c(1, 1, 1), c(1, 1, 0)}, // +Y
		{c(0, 0, 0), c(0, 0, 1), c(0, 1, 1), c(0, 1, 0)}, // -X
		{c(1, 0, 0), c(1, 1, 0), c(1, 1, 1), c(1, 0, 1)}, // +X
	}
	tris := make([]geom.Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris, quad(q[0], q[1], q[2], q[3])...)
	}
	return tris
}

func quad(a, b, c, d mgl32.Vec3) []geom.Triangle {
	return []geom.Triangle{{A: a, B: b, C: c}, {A: a, B: c, C: d}}
}

// arrow is a square shaft along +X capped with a pyramid tip.
func arrow() []geom.Triangle {
	shaftEnd := float32(arrowLength - tipLength)
	tris := box(mgl32.Vec3{0, -shaftRadius, -shaftRadius}, mgl32.Vec3{shaftEnd, shaftRadius, shaftRadius})

	apex := mgl32.Vec3{arrowLength, 0, 0}
	base := [4]mgl32.Vec3{
		{shaftEnd, -tipRadius, -tipRadius},
		{shaftEnd, tipRadius, -tipRadius},
		{shaftEnd, tipRadius, tipRadius},
		{shaftEnd, -tipRadius, tipRadius},
	}
	for i := 0; i < 4; i++ {
		tris = append(tris, geom.Triangle{A: base[i], B: base[(i+1)%4], C: apex})
	}
	return append(tris, quad(base[0], base[3], base[2], base[1])...)
}

// cubeArrow is the scale handle: a shaft ending in a cube.
func cubeArrow() []geom.Triangle {
	shaftEnd := float32(arrowLength - 2*cubeHalf)
	tris := box(mgl32.Vec3{0, -shaftRadius, -shaftRadius}, mgl32.Vec3{shaftEnd, shaftRadius, shaftRadius})
	return append(tris, box(
		mgl32.Vec3{shaftEnd, -cubeHalf, -cubeHalf},
		mgl32.Vec3{arrowLength, cubeHalf, cubeHalf},
	)...)
}

func centerCube() []geom.Triangle {
	return box(mgl32.Vec3{-centerHalf, -centerHalf, -centerHalf}, mgl32.Vec3{centerHalf, centerHalf, centerHalf})
}

// planeQuad is the XY plane handle, set off from the origin.
func planeQuad() []geom.Triangle {
	return quad(
		mgl32.Vec3{planeNear, planeNear, 0},
		mgl32.Vec3{planeFar, planeNear, 0},
		mgl32.Vec3{planeFar, planeFar, 0},
		mgl32.Vec3{planeNear, planeFar, 0},
	)
}

// planeFrame is the border of planeQuad, drawn as four thin strips.
func planeFrame() []geom.Triangle {
	const h = frameWidth * 0.5
	strip := func(x0, y0, x1, y1 float32) []geom.Triangle {
		return quad(
			mgl32.Vec3{x0, y0, 0},
			mgl32.Vec3{x1, y0, 0},
			mgl32.Vec3{x1, y1, 0},
			mgl32.Vec3{x0, y1, 0},
		)
	}
	var tris []geom.Triangle
	tris = append(tris, strip(planeNear-h, planeNear-h, planeFar+h, planeNear+h)...)
	tris = append(tris, strip(planeNear-h, planeFar-h, planeFar+h, planeFar+h)...)
	tris = append(tris, strip(planeNear-h, planeNear+h, planeNear+h, planeFar-h)...)
	return append(tris, strip(planeFar-h, planeNear+h, planeFar+h, planeFar-h)...)
}

// sphere is a latitude/longitude ball centred on the origin.
func sphere(radius float32) []geom.Triangle {
	point := func(lat, lon int) mgl32.Vec3 {
		theta := math.Pi * float64(lat) / shadeRings
		phi := 2 * math.Pi * float64(lon) / ringSegments
		sinT := math.Sin(theta)
		return mgl32.Vec3{
			radius * float32(sinT*math.Cos(phi)),
			radius * float32(math.Cos(theta)),
			radius * float32(sinT*math.Sin(phi)),
		}
	}
	tris := make([]geom.Triangle, 0, 2*shadeRings*ringSegments)
	for lat := 0; lat < shadeRings; lat++ {
		for lon := 0; lon < ringSegments; lon++ {
			tris = append(tris, quad(point(lat, lon), point(lat+1, lon), point(lat+1, lon+1), point(lat, lon+1))...)
		}
	}
	return tris
}

// ring is a flat annulus in the YZ plane, i.e. around the X axis.
func ring(radius float32) []geom.Triangle {
	inner := radius - ringWidth*0.5
	outer := radius + ringWidth*0.5
	point := func(r float32, seg int) mgl32.Vec3 {
		a := 2 * math.Pi * float64(seg) / ringSegments
		return mgl32.Vec3{0, r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}
	tris := make([]geom.Triangle, 0, 2*ringSegments)
	for i := 0; i < ringSegments; i++ {
		tris = append(tris, quad(point(inner, i), point(outer, i), point(outer, i+1), point(inner, i+1))...)
	}
	return tris
}
