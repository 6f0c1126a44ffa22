package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/geom"
)

type submitted struct {
	part   int
	bounds geom.AABB
}

type fakeRenderer struct {
	opaque      []submitted
	transparent []submitted
}

func (r *fakeRenderer) AddOpaqueMesh(g *Gizmo, partIndex int, bounds geom.AABB) {
	r.opaque = append(r.opaque, submitted{partIndex, bounds})
}

func (r *fakeRenderer) AddTransparentMesh(g *Gizmo, partIndex int, bounds geom.AABB) {
	r.transparent = append(r.transparent, submitted{partIndex, bounds})
}

func highlighted(t *testing.T, g *Gizmo) []string {
	t.Helper()
	var names []string
	for i, part := range g.Registry().Parts(g.Mode()) {
		pass := PassOpaque
		if part.Transparent {
			pass = PassTransparent
		}
		cmd, ok := g.Draw(DrawOptions{Pass: pass}, i, ViewInfo{View: mgl32.Ident4(), Projection: mgl32.Ident4()})
		require.True(t, ok)
		if cmd.Material == MaterialHighlight {
			names = append(names, part.Name)
		}
	}
	return names
}

func TestSubmit_SplitsPasses(t *testing.T) {
	g := newTestGizmo(t, ModeTranslate)
	g.UpdateForCamera(testCamera(mgl32.Vec3{0, 0, 10}))

	r := &fakeRenderer{}
	assert.Equal(t, 9, g.Submit(r))
	require.Len(t, r.opaque, 6)
	require.Len(t, r.transparent, 3)
	assert.Equal(t, []int{6, 7, 8}, []int{r.transparent[0].part, r.transparent[1].part, r.transparent[2].part})

	// X is side-on and counts as flipped, but translate arrows are never
	// mirrored: the arrow spans 0..2 at scale 1.
	require.True(t, g.AxisFlipped(0))
	xBounds := r.opaque[0].bounds
	assert.InDelta(t, 0.0, xBounds.Min.X(), 1e-4)
	assert.InDelta(t, 2.0, xBounds.Max.X(), 1e-4)

	g.SetMode(ModeOff)
	assert.Equal(t, 0, g.Submit(&fakeRenderer{}))
}

func TestDraw(t *testing.T) {
	g := newTestGizmo(t, ModeTranslate)
	cam := testCamera(mgl32.Vec3{0, 0, 10})
	g.UpdateForCamera(cam)
	view := ViewInfo{View: cam.ViewMatrix(), Projection: cam.ProjectionMatrix()}

	_, ok := g.Draw(DrawOptions{Pass: PassOpaque}, 6, view)
	assert.False(t, ok, "plane fills draw in the transparent pass")
	_, ok = g.Draw(DrawOptions{Pass: PassOpaque}, 3, view)
	assert.True(t, ok, "plane frames are opaque")
	_, ok = g.Draw(DrawOptions{Pass: PassOpaque}, 42, view)
	assert.False(t, ok)

	cmd, ok := g.Draw(DrawOptions{Pass: PassOpaque}, 0, view)
	require.True(t, ok)
	assert.Equal(t, "translate/arrow_x", cmd.Mesh.Path)
	assert.Equal(t, MaterialNormal, cmd.Material)
	assert.True(t, cmd.WorldViewProjection.ApproxEqualThreshold(ViewProjection(cam).Mul4(cmd.World), 1e-5))
}

func TestDraw_Highlight(t *testing.T) {
	g := newTestGizmo(t, ModeTranslate)
	g.selectedAxes = AxisXY
	assert.Equal(t, []string{"x", "y", "xy", "xy_fill"}, highlighted(t, g))

	// The outline has no axes and the shade needs all three.
	g.SetMode(ModeRotate)
	g.selectedAxes = AxisZ
	assert.Equal(t, []string{"z"}, highlighted(t, g))

	g.SetMode(ModeScale)
	g.selectedAxes = AxisAll
	assert.Equal(t, []string{"x", "y", "z", "xy", "yz", "xz", "xy_fill", "yz_fill", "xz_fill", "uniform"}, highlighted(t, g))

	g.selectedAxes = AxisNone
	assert.Empty(t, highlighted(t, g))
}

func TestPartMatrix(t *testing.T) {
	g := newTestGizmo(t, ModeRotate)
	g.SetPosition(mgl32.Vec3{1, 2, 3})
	g.UpdateForCamera(testCamera(mgl32.Vec3{1, 2, 13}))

	// The outline uses the billboard frame.
	outline := g.PartMatrix(0)
	assert.Equal(t, g.localToWorld(true), outline)
	assert.True(t, outline.Mul4x1(mgl32.Vec4{2.1, 0, 0, 1}).Vec3().ApproxEqualThreshold(mgl32.Vec3{3.1, 2, 3}, 1e-4))

	// X faces away from the camera, but rings are never mirrored.
	require.True(t, g.AxisFlipped(0))
	ringX := g.PartMatrix(1)
	assert.True(t, ringX.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3().ApproxEqualThreshold(mgl32.Vec3{2, 2, 3}, 1e-4))

	// Scale handles mirror the same axis toward the viewer.
	g.SetMode(ModeScale)
	handleX := g.PartMatrix(0)
	assert.True(t, handleX.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 2, 3}, 1e-4))

	assert.Equal(t, mgl32.Ident4(), g.PartMatrix(-1))
}

func TestPartMatrix_ScalePreview(t *testing.T) {
	g := newTestGizmo(t, ModeScale)
	g.UpdateForCamera(testCamera(mgl32.Vec3{1, 1, 5}))
	g.selectedAxes = AxisX
	g.StartTransform()
	g.scaler.total = mgl32.Vec3{2, 1, 1}

	base := g.localToWorld(false)
	assert.Equal(t, base.Mul4(mgl32.Scale3D(2, 1, 1)), g.PartMatrix(0))
	assert.Equal(t, base, g.PartMatrix(1))

	g.EndTransform()
	assert.Equal(t, base, g.PartMatrix(0))
}
