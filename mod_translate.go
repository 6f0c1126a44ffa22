package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

type translateState struct {
	spaceSel TransformSpace

	delta mgl32.Vec3
	total mgl32.Vec3

	plane     geom.Plane
	offset    mgl32.Vec3
	offsetSet bool
}

func (s *translateState) mode() Mode                 { return ModeTranslate }
func (s *translateState) space() TransformSpace      { return s.spaceSel }
func (s *translateState) setSpace(sp TransformSpace) { s.spaceSel = sp }
func (s *translateState) clearDelta()                { s.delta = mgl32.Vec3{} }
func (s *translateState) resetOffset()               { s.offsetSet = false }

func (s *translateState) start(g *Gizmo) {
	s.delta = mgl32.Vec3{}
	s.total = mgl32.Vec3{}
	s.offsetSet = false
}

// dragPlane builds the plane the cursor ray is intersected with. With one
// axis it contains the axis and faces the camera as much as possible; with
// two it is spanned by both axes.
func (s *translateState) dragPlane(g *Gizmo, cam Camera) geom.Plane {
	view := geom.SafeNormalize(g.position.Sub(cam.Position()), g.cfg.Forward.Mul(-1))
	axes := g.selectedAxes.Indices()

	var normal mgl32.Vec3
	switch len(axes) {
	case 1:
		axis := g.worldAxis(axes[0])
		normal = axis.Cross(view).Cross(axis)
	case 2:
		normal = g.worldAxis(axes[0]).Cross(g.worldAxis(axes[1]))
	default:
		normal = view
	}
	return geom.Plane{Normal: geom.SafeNormalize(normal, view), Point: g.position}
}

func (s *translateState) transform(g *Gizmo, in Input, cam Camera) bool {
	s.plane = s.dragPlane(g, cam)
	hit, _, ok := s.plane.IntersectRay(in.Ray)
	if !ok {
		s.delta = mgl32.Vec3{}
		return false
	}

	inv := g.rotation.Conjugate()
	local := inv.Rotate(hit.Sub(g.position))
	newPos := g.position
	for _, i := range g.selectedAxes.Indices() {
		newPos = newPos.Add(g.worldAxis(i).Mul(local[i]))
	}

	toNew := geom.SafeNormalize(newPos.Sub(cam.Position()), mgl32.Vec3{})
	if mgl32.Abs(s.plane.Normal.Dot(toNew)) < g.cfg.EdgeOnThreshold {
		return false
	}

	// The first sample only records where on the handle the drag started.
	if !s.offsetSet {
		s.offset = g.position.Sub(newPos)
		s.offsetSet = true
		return false
	}

	d := inv.Rotate(newPos.Sub(g.position).Add(s.offset))
	for i := 0; i < 3; i++ {
		if g.selectedAxes&axisFlag(i) == 0 {
			d[i] = 0
		}
	}

	s.delta = d
	s.total = s.total.Add(d)
	g.position = g.position.Add(g.rotation.Rotate(d))
	if d != (mgl32.Vec3{}) {
		g.hasTransformed = true
	}
	return g.hasTransformed
}
