// Package geom holds the ray and surface math the gizmo uses for picking and
// for projecting handles to the screen.
package geom

import "github.com/go-gl/mathgl/mgl32"

const epsilon = 1e-7

type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform moves the ray into the space described by m. The direction is not
// renormalized, so parameters along the transformed ray match the untransformed ray.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1.0))
	d := m.Mul4x1(r.Direction.Vec4(0.0))
	return Ray{Origin: o.Vec3(), Direction: d.Vec3()}
}

// Plane is the set of points p with Normal·(p-Point) == 0.
type Plane struct {
	Normal mgl32.Vec3
	Point  mgl32.Vec3
}

// IntersectRay returns the hit point and ray parameter. Rays parallel to the
// plane, or hitting it behind the origin, miss.
func (p Plane) IntersectRay(r Ray) (mgl32.Vec3, float32, bool) {
	denom := r.Direction.Dot(p.Normal)
	if denom > -1e-6 && denom < 1e-6 {
		return mgl32.Vec3{}, 0, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return mgl32.Vec3{}, 0, false
	}
	return r.At(t), t, true
}

// SafeNormalize returns v normalized, or fallback when v is too short to have
// a direction.
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return fallback
	}
	return v.Mul(1.0 / l)
}

// Perpendicular returns some unit vector orthogonal to v.
func Perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	other := mgl32.Vec3{1, 0, 0}
	if mgl32.Abs(v.X()) > 0.9 {
		other = mgl32.Vec3{0, 1, 0}
	}
	return SafeNormalize(v.Cross(other), mgl32.Vec3{0, 0, 1})
}
