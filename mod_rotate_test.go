package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWarper struct {
	calls [][2]float64
}

func (w *recordingWarper) WarpCursor(x, y float64) {
	w.calls = append(w.calls, [2]float64{x, y})
}

// grabZRing starts a Z-ring drag grabbed below the center, where the ring's
// tangent projects onto the screen's +X.
func grabZRing(t *testing.T, g *Gizmo, cam Camera) {
	t.Helper()
	g.UpdateForCamera(cam)
	g.selectedAxes = AxisZ
	g.hitPoint = mgl32.Vec3{0, -1.8, 0}
	g.StartTransform()
	require.True(t, g.IsTransforming())
	require.True(t, g.rotator.moveDir.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func quatNear(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	if want.Dot(got) < 0 {
		got = got.Scale(-1)
	}
	assert.True(t, want.ApproxEqualThreshold(got, 1e-4), "want %v, got %v", want, got)
}

func TestRotate_DeltasComposeToTotal(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	cam := testCamera(mgl32.Vec3{0, 0, 5})
	grabZRing(t, g, cam)

	assert.False(t, g.TransformFromInput(cursorAt(cam, 1000, 500), cam))
	assert.False(t, g.HasTransformed())

	composed := mgl32.QuatIdent()
	for _, x := range []float32{1100, 1300, 1250, 900} {
		g.TransformFromInput(cursorAt(cam, x, 500), cam)
		composed = g.DeltaRotation().Mul(composed)
	}

	// 100 px left of center on a 2000 px window is -0.1 NDC.
	assert.InDelta(t, -18.0, g.TotalRotation().Z(), 1e-3)
	assert.InDelta(t, 0.0, g.TotalRotation().X(), 1e-6)
	quatNear(t, mgl32.QuatRotate(mgl32.DegToRad(-18), mgl32.Vec3{0, 0, 1}), composed)
	assert.True(t, g.HasTransformed())

	// World space leaves the gizmo frame alone.
	assert.Equal(t, mgl32.QuatIdent(), g.Rotation())
}

func TestRotate_LocalSpaceTurnsGizmo(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	g.SetTransformSpace(SpaceLocal)
	cam := testCamera(mgl32.Vec3{0, 0, 5})
	grabZRing(t, g, cam)

	g.TransformFromInput(cursorAt(cam, 1000, 500), cam)
	g.TransformFromInput(cursorAt(cam, 1250, 500), cam)

	assert.InDelta(t, 45.0, g.TotalRotation().Z(), 1e-3)
	quatNear(t, mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 0, 1}), g.Rotation())
}

func TestRotate_OutlineSelectsNothing(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	cam := testCamera(mgl32.Vec3{0, 0, 5})
	g.UpdateForCamera(cam)

	// The outline is 2.1 handle units out, 1.05 world units at scale 0.5.
	assert.False(t, g.CheckSelectedAxes(rayAt(cam, mgl32.Vec3{0, 1.05, 0}).Ray))
	assert.Equal(t, AxisNone, g.SelectedAxes())

	g.StartTransform()
	assert.False(t, g.IsTransforming())
}

func TestRotate_StartPicksOneAxis(t *testing.T) {
	tests := []struct {
		selected AxisFlags
		want     int
	}{
		{selected: AxisX, want: 0},
		{selected: AxisY, want: 1},
		{selected: AxisZ, want: 2},
		{selected: AxisXY, want: 0},
		{selected: AxisYZ, want: 1},
		{selected: AxisAll, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.selected.String(), func(t *testing.T) {
			g := newTestGizmo(t, ModeRotate)
			g.UpdateForCamera(testCamera(mgl32.Vec3{0, 0, 5}))
			g.selectedAxes = tt.selected
			g.hitPoint = mgl32.Vec3{0, 0, 1}
			g.StartTransform()

			assert.Equal(t, tt.want, g.rotator.component)
			assert.Equal(t, unitAxis(tt.want), g.rotator.axis)
		})
	}
}

func TestRotate_TotalHoldsSelectedComponent(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	g.SetLocalRotation(mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 1, 0}))
	g.SetTransformSpace(SpaceLocal)
	cam := testCamera(mgl32.Vec3{0, 0, 5})
	g.UpdateForCamera(cam)

	// Grabbed at the front of the X ring, whose tangent there runs down the
	// screen.
	g.selectedAxes = AxisX
	g.hitPoint = g.Rotation().Rotate(mgl32.Vec3{0, 0, 1.8})
	g.StartTransform()

	g.TransformFromInput(cursorAt(cam, 1000, 500), cam)
	g.TransformFromInput(cursorAt(cam, 1000, 550), cam)

	total := g.TotalRotation()
	assert.InDelta(t, 18.0, total.X(), 1e-2)
	assert.Zero(t, total.Y())
	assert.Zero(t, total.Z())
}

func TestRotate_EmptyViewportIsIgnored(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	g.SetTransformSpace(SpaceLocal)
	cam := testCamera(mgl32.Vec3{0, 0, 5})
	grabZRing(t, g, cam)
	g.TransformFromInput(cursorAt(cam, 1000, 500), cam)

	minimised := cursorAt(cam, 1250, 500)
	minimised.Width, minimised.Height = 0, 0
	assert.False(t, g.TransformFromInput(minimised, cam))
	assert.False(t, g.HasTransformed())
	assert.Equal(t, mgl32.Vec3{}, g.TotalRotation())
	assert.Equal(t, mgl32.QuatIdent(), g.Rotation())

	// The drag picks up where it left off once the window has a size again.
	g.TransformFromInput(cursorAt(cam, 1250, 500), cam)
	assert.InDelta(t, 45.0, g.TotalRotation().Z(), 1e-3)
}

func TestRotate_CursorWrapIsSeamless(t *testing.T) {
	run := func(wrap bool, xs []float32) (*Gizmo, *recordingWarper) {
		g := newTestGizmo(t, ModeRotate)
		w := &recordingWarper{}
		g.SetCursorWarper(w)
		g.EnableCursorWrap(wrap)
		cam := testCamera(mgl32.Vec3{0, 0, 5})
		grabZRing(t, g, cam)
		for _, x := range xs {
			g.TransformFromInput(cursorAt(cam, x, 500), cam)
		}
		return g, w
	}

	// With wrap the cursor reaches the right edge at 1999 and comes back at 1.
	wrapped, w := run(true, []float32{1995, 1999, 1, 5})
	unwrapped, _ := run(false, []float32{1995, 1999, 2001, 2005})

	assert.InDelta(t, 1.8, unwrapped.TotalRotation().Z(), 1e-3)
	assert.InDelta(t, unwrapped.TotalRotation().Z(), wrapped.TotalRotation().Z(), 1e-3)
	assert.Equal(t, [][2]float64{{1, 500}}, w.calls)
	assert.Equal(t, mgl32.Vec2{2, 0}, wrapped.wrapOffset)

	wrapped.EndTransform()
	assert.Equal(t, mgl32.Vec2{}, wrapped.wrapOffset)
}

func TestCursorWrap_Edges(t *testing.T) {
	g := newTestGizmo(t, ModeScale)
	w := &recordingWarper{}
	g.SetCursorWarper(w)
	g.EnableCursorWrap(true)
	g.isTransforming = true

	g.wrapCursor(Input{CursorX: 0, CursorY: 999, Width: 100, Height: 1000})
	assert.Equal(t, [][2]float64{{98, 1}}, w.calls)
	assert.Equal(t, mgl32.Vec2{-2, -2}, g.wrapOffset)

	g.wrapCursor(Input{CursorX: 50, CursorY: 0, Width: 100, Height: 1000})
	assert.Equal(t, [2]float64{50, 998}, w.calls[1])
	assert.Equal(t, mgl32.Vec2{-2, 0}, g.wrapOffset)

	// Translate drags never wrap.
	g.mode = ModeTranslate
	g.wrapCursor(Input{CursorX: 0, CursorY: 500, Width: 100, Height: 1000})
	assert.Len(t, w.calls, 2)
}
