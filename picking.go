package gizmo

import (
	"math"

	"github.com/gekko3d/gizmo/geom"
)

// CheckSelectedAxes hover-tests the active mode's handles. While idle the
// selection is rebuilt from scratch; during a drag it stays frozen and the
// call only reports it.
func (g *Gizmo) CheckSelectedAxes(ray geom.Ray) bool {
	if g.isTransforming {
		return g.selectedAxes != AxisNone
	}
	g.selectedAxes = AxisNone
	if g.active == nil {
		return false
	}

	// Parameters along both local rays match the world ray since directions
	// are left unnormalized.
	local := ray.Transform(g.worldToLocal(false))
	billboard := ray.Transform(g.worldToLocal(true))

	best := float32(math.MaxFloat32)
	bestPart := -1
	for i, part := range g.parts() {
		if !part.RayCastEnabled || part.Mesh == nil || part.Mesh.Surface == nil {
			continue
		}
		r := local
		if part.IsBillboard {
			r = billboard
		}
		surf := part.Mesh.Surface

		tMin, _, ok := surf.Bounds.Expand(g.cfg.BoundsMargin).IntersectRay(r)
		if !ok || tMin > best {
			continue
		}
		if t, ok := surf.IntersectRay(r, g.cfg.RayThickness); ok && t < best {
			best, bestPart = t, i
		}
	}

	if bestPart < 0 {
		return false
	}
	// A part without axes still wins the pick, shadowing the handles behind
	// it, but selects nothing.
	g.selectedAxes = g.parts()[bestPart].Axes
	g.hitPoint = ray.At(best)
	return g.selectedAxes != AxisNone
}
