package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

type rotateState struct {
	spaceSel TransformSpace

	// axis is in gizmo space; moveDir is the world ring tangent at the grab
	// point.
	component int
	axis      mgl32.Vec3
	moveDir   mgl32.Vec3

	current mgl32.Quat
	delta   mgl32.Quat
	total   mgl32.Vec3

	lineOrigin mgl32.Vec2
	lineDir    mgl32.Vec2
	offset     float32
	offsetSet  bool
}

func newRotateState() *rotateState {
	return &rotateState{current: mgl32.QuatIdent(), delta: mgl32.QuatIdent()}
}

func (s *rotateState) mode() Mode                 { return ModeRotate }
func (s *rotateState) space() TransformSpace      { return s.spaceSel }
func (s *rotateState) setSpace(sp TransformSpace) { s.spaceSel = sp }
func (s *rotateState) clearDelta()                { s.delta = mgl32.QuatIdent() }
func (s *rotateState) resetOffset()               { s.offsetSet = false }

// start picks the rotation axis: X when it is selected, else Y, else Z.
func (s *rotateState) start(g *Gizmo) {
	s.component = 2
	switch {
	case g.selectedAxes.Has(AxisX):
		s.component = 0
	case g.selectedAxes.Has(AxisY):
		s.component = 1
	}
	s.axis = unitAxis(s.component)
	worldAxis := g.rotation.Rotate(s.axis)

	fallback := geom.Perpendicular(worldAxis)
	radial := geom.SafeNormalize(g.hitPoint.Sub(g.position), fallback)
	s.moveDir = geom.SafeNormalize(worldAxis.Cross(radial), fallback)

	s.total = mgl32.Vec3{}
	s.current = mgl32.QuatIdent()
	s.delta = mgl32.QuatIdent()
	s.offsetSet = false
}

// transform measures how far the cursor has travelled along the projected
// tangent of the ring at the grab point and converts it to degrees.
func (s *rotateState) transform(g *Gizmo, in Input, cam Camera) bool {
	defer g.wrapCursor(in)

	origin, dir, ok := referenceLine(ViewProjection(cam), g.position, s.moveDir)
	if !ok {
		return false
	}
	s.lineOrigin, s.lineDir = origin, dir

	cursor, ok := g.cursorNDC(in)
	if !ok {
		return false
	}
	amount := s.lineDir.Dot(cursor.Sub(s.lineOrigin)) * g.cfg.RotateSensitivity
	if !s.offsetSet {
		s.offset = -amount
		s.offsetSet = true
		return false
	}
	amount += s.offset

	old := s.current
	s.current = mgl32.QuatRotate(mgl32.DegToRad(amount), s.axis)
	s.delta = s.current.Mul(old.Inverse())
	if g.space == SpaceLocal {
		g.rotation = g.rotation.Mul(s.delta).Normalize()
	}
	s.total = mgl32.Vec3{}
	s.total[s.component] = amount
	if amount != 0 {
		g.hasTransformed = true
	}
	return g.hasTransformed
}

// referenceLine projects p and p+dir to clip space and returns the 2D line
// between them. It fails when dir points straight at the camera.
func referenceLine(viewProj mgl32.Mat4, p, dir mgl32.Vec3) (mgl32.Vec2, mgl32.Vec2, bool) {
	a, ok := geom.ProjectToClip(viewProj, p)
	if !ok {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	b, ok := geom.ProjectToClip(viewProj, p.Add(dir))
	if !ok {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	d := b.Sub(a)
	if d.Len() < 1e-6 {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	return a, d.Normalize(), true
}
