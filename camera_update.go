package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

const minVisualScale = 1e-4

// UpdateForCamera refreshes the camera-relative state. Call it once per
// frame before hover checks or drag samples.
//
// The camera distance behind the screen-constant size is frozen while
// translating so the handles do not resize under the cursor.
func (g *Gizmo) UpdateForCamera(cam Camera) {
	toGizmo := g.position.Sub(cam.Position())
	view := geom.SafeNormalize(toGizmo, g.cfg.Forward.Mul(-1))
	for i := 0; i < 3; i++ {
		g.flip[i] = g.worldAxis(i).Dot(view) >= 0
	}

	if !(g.isTransforming && g.mode == ModeTranslate) {
		g.cameraDistance = toGizmo.Len()
	}
	g.refreshScale()

	g.billboard = billboardRotation(g.cfg.Forward, cam.Position().Sub(g.position))
}

// billboardRotation turns forward onto the direction toCamera.
func billboardRotation(forward, toCamera mgl32.Vec3) mgl32.Quat {
	to := geom.SafeNormalize(toCamera, forward)
	cosTheta := mgl32.Clamp(forward.Dot(to), -1.0, 1.0)
	axis := forward.Cross(to)
	if axis.Len() < 1e-6 {
		if cosTheta > 0 {
			return mgl32.QuatIdent()
		}
		return mgl32.QuatRotate(math.Pi, geom.Perpendicular(forward))
	}
	angle := float32(math.Acos(float64(cosTheta)))
	return mgl32.QuatRotate(angle, axis.Normalize())
}

// IncrementSize grows the handles by one step of SizeStepFactor.
func (g *Gizmo) IncrementSize() {
	if g.sizeStep < g.cfg.MaxSizeSteps {
		g.sizeStep++
	}
	g.refreshScale()
}

// DecrementSize shrinks the handles by one step of SizeStepFactor.
func (g *Gizmo) DecrementSize() {
	if g.sizeStep > -g.cfg.MaxSizeSteps {
		g.sizeStep--
	}
	g.refreshScale()
}

// SizeMultiplier is the user size adjustment, SizeStepFactor^steps.
func (g *Gizmo) SizeMultiplier() float32 {
	return float32(math.Pow(float64(g.cfg.SizeStepFactor), float64(g.sizeStep)))
}

func (g *Gizmo) refreshScale() {
	s := g.cameraDistance * g.cfg.ScreenScale * g.SizeMultiplier()
	if s < minVisualScale {
		s = minVisualScale
	}
	g.scale = mgl32.Vec3{s, s, s}
}

// localToWorld is the matrix of regular parts or of billboard parts.
func (g *Gizmo) localToWorld(billboard bool) mgl32.Mat4 {
	rot, s := g.partFrame(billboard)
	translate := mgl32.Translate3D(g.position.X(), g.position.Y(), g.position.Z())
	scale := mgl32.Scale3D(s.X(), s.Y(), s.Z())
	return translate.Mul4(rot.Mat4()).Mul4(scale)
}

func (g *Gizmo) worldToLocal(billboard bool) mgl32.Mat4 {
	rot, s := g.partFrame(billboard)
	invScale := mgl32.Scale3D(1.0/s.X(), 1.0/s.Y(), 1.0/s.Z())
	invRotate := rot.Conjugate().Mat4()
	invTranslate := mgl32.Translate3D(-g.position.X(), -g.position.Y(), -g.position.Z())
	return invScale.Mul4(invRotate).Mul4(invTranslate)
}

// partFrame returns the orientation and signed scale of a part. Only the
// scale handles mirror their flipped axes toward the viewer; the other modes
// always draw along the positive axes.
func (g *Gizmo) partFrame(billboard bool) (mgl32.Quat, mgl32.Vec3) {
	if billboard {
		return g.billboard, g.scale
	}
	s := g.scale
	if g.mode == ModeScale {
		for i := 0; i < 3; i++ {
			if g.flip[i] {
				s[i] = -s[i]
			}
		}
	}
	return g.rotation, s
}
