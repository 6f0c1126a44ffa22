package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Triangle struct {
	A, B, C mgl32.Vec3
}

// Surface is a ray-castable triangle soup with precomputed bounds.
type Surface struct {
	Triangles []Triangle
	Bounds    AABB
}

func NewSurface(tris []Triangle) *Surface {
	bounds := EmptyAABB()
	for _, tri := range tris {
		bounds = bounds.Extend(tri.A).Extend(tri.B).Extend(tri.C)
	}
	return &Surface{Triangles: tris, Bounds: bounds}
}

// IntersectRay returns the smallest ray parameter at which the ray touches
// the surface. Triangles are treated as two-sided. A ray passing within
// thickness of a triangle edge counts as a hit, which keeps thin handle
// geometry pickable.
func (s *Surface) IntersectRay(r Ray, thickness float32) (float32, bool) {
	best := float32(math.MaxFloat32)
	found := false
	for _, tri := range s.Triangles {
		if t, ok := IntersectTriangle(r, tri); ok {
			if t < best {
				best, found = t, true
			}
			continue
		}
		if thickness <= 0 {
			continue
		}
		for _, e := range [3][2]mgl32.Vec3{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}} {
			t, d := ClosestRaySegment(r, e[0], e[1])
			if d <= thickness && t < best {
				best, found = t, true
			}
		}
	}
	return best, found
}

// IntersectTriangle is the Möller–Trumbore test.
func IntersectTriangle(r Ray, tri Triangle) (float32, bool) {
	edge1 := tri.B.Sub(tri.A)
	edge2 := tri.C.Sub(tri.A)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1.0 / a
	s := r.Origin.Sub(tri.A)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t >= 0
}

// ClosestRaySegment finds the point on segment ab closest to the ray and
// returns the ray parameter of its projection plus the distance between them.
func ClosestRaySegment(r Ray, a, b mgl32.Vec3) (float32, float32) {
	ad := b.Sub(a)
	w := r.Origin.Sub(a)
	aa := r.Direction.Dot(r.Direction)
	if aa < epsilon {
		return 0, w.Len()
	}
	bb := r.Direction.Dot(ad)
	e := ad.Dot(ad)
	c := r.Direction.Dot(w)
	f := ad.Dot(w)

	var s float32
	det := aa*e - bb*bb
	if e > epsilon && det > epsilon {
		s = mgl32.Clamp((aa*f-bb*c)/det, 0, 1)
	} else if e > epsilon {
		s = mgl32.Clamp(f/e, 0, 1)
	}

	p := a.Add(ad.Mul(s))
	t := p.Sub(r.Origin).Dot(r.Direction) / aa
	if t < 0 {
		t = 0
	}
	return t, r.At(t).Sub(p).Len()
}
