package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is read every frame and never modified by the gizmo.
type Camera interface {
	Position() mgl32.Vec3
	ViewMatrix() mgl32.Mat4
	ProjectionMatrix() mgl32.Mat4
}

// PerspectiveCamera is a look-at camera with a symmetric perspective
// projection. FovY is in degrees.
type PerspectiveCamera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FovY   float32
	Aspect float32
	Near   float32
	Far    float32
}

func NewPerspectiveCamera(eye, target mgl32.Vec3, aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Eye:    eye,
		Target: target,
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   60,
		Aspect: aspect,
		Near:   0.1,
		Far:    1000,
	}
}

func (c *PerspectiveCamera) Position() mgl32.Vec3 {
	return c.Eye
}

func (c *PerspectiveCamera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns the matrix taking world points to clip space.
func ViewProjection(cam Camera) mgl32.Mat4 {
	return cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
}
