package geom

import "github.com/go-gl/mathgl/mgl32"

// ProjectToClip maps a world point through a view-projection matrix and
// returns its 2D normalized device coordinates. Points on the camera plane
// cannot be projected.
func ProjectToClip(viewProj mgl32.Mat4, p mgl32.Vec3) (mgl32.Vec2, bool) {
	c := viewProj.Mul4x1(p.Vec4(1.0))
	w := c.W()
	if w > -1e-6 && w < 1e-6 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{c.X() / w, c.Y() / w}, true
}

// CursorToNDC converts window pixel coordinates (origin top-left) to the
// [-1,1] range with Y pointing up.
func CursorToNDC(x, y float32, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		(2.0*x)/float32(width) - 1.0,
		1.0 - (2.0*y)/float32(height),
	}
}

// ScreenRay unprojects a pixel to a world-space ray starting on the near
// plane.
func ScreenRay(x, y float32, width, height int, view, proj mgl32.Mat4) Ray {
	ndc := CursorToNDC(x, y, width, height)
	inv := proj.Mul4(view).Inv()

	near := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})
	n := near.Vec3().Mul(1.0 / near.W())
	f := far.Vec3().Mul(1.0 / far.W())

	return Ray{Origin: n, Direction: f.Sub(n).Normalize()}
}
