package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

var screenUp = mgl32.Vec2{0, 1}

type scaleState struct {
	delta mgl32.Vec3
	total mgl32.Vec3

	lineOrigin mgl32.Vec2
	lineDir    mgl32.Vec2
	offset     float32
	offsetSet  bool
}

func newScaleState() *scaleState {
	return &scaleState{delta: mgl32.Vec3{1, 1, 1}, total: mgl32.Vec3{1, 1, 1}}
}

func (s *scaleState) mode() Mode                 { return ModeScale }
func (s *scaleState) space() TransformSpace      { return SpaceLocal }
func (s *scaleState) setSpace(sp TransformSpace) {}
func (s *scaleState) clearDelta()                { s.delta = mgl32.Vec3{1, 1, 1} }
func (s *scaleState) resetOffset()               { s.offsetSet = false }

func (s *scaleState) start(g *Gizmo) {
	s.total = mgl32.Vec3{1, 1, 1}
	s.delta = mgl32.Vec3{1, 1, 1}
	s.offsetSet = false
}

// scaleDirection averages the viewer-facing directions of the selected axes.
// Flip flags change with the camera, so callers recompute it per sample.
func (g *Gizmo) scaleDirection() mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, i := range g.selectedAxes.Indices() {
		sum = sum.Add(g.flippedAxis(i))
	}
	return geom.SafeNormalize(sum, g.flippedAxis(0))
}

func (s *scaleState) transform(g *Gizmo, in Input, cam Camera) bool {
	defer g.wrapCursor(in)

	vp := ViewProjection(cam)
	if g.selectedAxes.Count() == 3 {
		origin, ok := geom.ProjectToClip(vp, g.position)
		if !ok {
			return false
		}
		s.lineOrigin, s.lineDir = origin, screenUp
	} else {
		origin, dir, ok := referenceLine(vp, g.position, g.scaleDirection())
		if !ok {
			return false
		}
		s.lineOrigin, s.lineDir = origin, dir
	}

	cursor, ok := g.cursorNDC(in)
	if !ok {
		return false
	}
	amount := s.lineDir.Dot(cursor.Sub(s.lineOrigin)) * g.cfg.ScaleSensitivity
	if !s.offsetSet {
		s.offset = -amount
		s.offsetSet = true
		return false
	}
	amount = remapScale(amount + s.offset + 1)

	prev := s.total
	s.total = mgl32.Vec3{1, 1, 1}
	for _, i := range g.selectedAxes.Indices() {
		s.total[i] = amount
	}
	s.delta = mgl32.Vec3{s.total[0] / prev[0], s.total[1] / prev[1], s.total[2] / prev[2]}
	if amount != 1 {
		g.hasTransformed = true
	}
	return g.hasTransformed
}

// remapScale keeps factors below one positive: pulling back by d gives
// 1/(1+d), mirroring the 1+d of pushing forward.
func remapScale(amount float32) float32 {
	if amount < 1 {
		return 1 / (-(amount - 1) + 1)
	}
	return amount
}
