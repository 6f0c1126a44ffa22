package gizmo

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	ModeOff Mode = iota
	ModeTranslate
	ModeRotate
	ModeScale

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	}
	return "unknown"
}

// ParseMode accepts the names printed by Mode.String, in any case.
func ParseMode(s string) (Mode, error) {
	for m := ModeOff; m < modeCount; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return ModeOff, fmt.Errorf("gizmo: unknown mode %q", s)
}

type TransformSpace int

const (
	SpaceWorld TransformSpace = iota
	SpaceLocal
)

func (s TransformSpace) String() string {
	if s == SpaceLocal {
		return "local"
	}
	return "world"
}

func ParseTransformSpace(s string) (TransformSpace, error) {
	switch strings.ToLower(s) {
	case "", "world":
		return SpaceWorld, nil
	case "local":
		return SpaceLocal, nil
	}
	return SpaceWorld, fmt.Errorf("gizmo: unknown transform space %q", s)
}

// modeState is one manipulation mode: its remembered transform space, its
// delta/total accumulators and its drag algorithm.
type modeState interface {
	mode() Mode
	space() TransformSpace
	setSpace(s TransformSpace)
	clearDelta()
	start(g *Gizmo)
	resetOffset()
	transform(g *Gizmo, in Input, cam Camera) bool
}

func (g *Gizmo) stateFor(m Mode) modeState {
	switch m {
	case ModeTranslate:
		return g.translator
	case ModeRotate:
		return g.rotator
	case ModeScale:
		return g.scaler
	}
	return nil
}

func (g *Gizmo) states() [3]modeState {
	return [3]modeState{g.translator, g.rotator, g.scaler}
}

// SetMode switches the active handle set. A drag in progress is dropped
// without EndTransform's bookkeeping. The accumulated deltas of the other
// modes are cleared; totals, TotalScale included, are left as they are.
func (g *Gizmo) SetMode(m Mode) {
	if m < ModeOff || m >= modeCount || m == g.mode {
		return
	}
	if g.isTransforming {
		g.stopDrag()
	}

	g.mode = m
	g.active = g.stateFor(m)
	for _, s := range g.states() {
		if s != g.active {
			s.clearDelta()
		}
	}
	g.selectedAxes = AxisNone
	if g.active != nil {
		g.applySpace(g.active.space())
	}
	g.log.Debugf("gizmo: mode %s, space %s", g.mode, g.space)
}

// SetTransformSpace changes the space of the active mode. Translate and
// rotate remember their own choice; scale always works in local space.
func (g *Gizmo) SetTransformSpace(s TransformSpace) {
	if g.active == nil {
		g.applySpace(s)
		return
	}
	g.active.setSpace(s)
	g.applySpace(g.active.space())
	g.log.Debugf("gizmo: %s space %s", g.mode, g.space)
}

func (g *Gizmo) applySpace(s TransformSpace) {
	g.space = s
	if s == SpaceWorld {
		g.rotation = mgl32.QuatIdent()
	} else {
		g.rotation = g.localRotation
	}
}
