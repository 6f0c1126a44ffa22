package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// Renderer collects the parts to draw this frame. It later calls Draw on the
// gizmo for each part it accepted.
type Renderer interface {
	AddOpaqueMesh(g *Gizmo, partIndex int, bounds geom.AABB)
	AddTransparentMesh(g *Gizmo, partIndex int, bounds geom.AABB)
}

type MaterialSet int

const (
	MaterialNormal MaterialSet = iota
	MaterialHighlight
)

type RenderPass int

const (
	PassOpaque RenderPass = iota
	PassTransparent
)

type DrawOptions struct {
	Pass RenderPass
}

type ViewInfo struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// DrawCommand is everything a renderer needs to draw one part.
type DrawCommand struct {
	PartIndex           int
	Mesh                *MeshRef
	World               mgl32.Mat4
	WorldViewProjection mgl32.Mat4
	Material            MaterialSet
}

// Submit hands every visible part of the active mode to r, with its
// world-space bounds. It returns the number of parts submitted.
func (g *Gizmo) Submit(r Renderer) int {
	n := 0
	for i, part := range g.parts() {
		if part.Mesh == nil || part.Mesh.Surface == nil {
			continue
		}
		bounds := part.Mesh.Surface.Bounds.Transform(g.PartMatrix(i))
		if part.Transparent {
			r.AddTransparentMesh(g, i, bounds)
		} else {
			r.AddOpaqueMesh(g, i, bounds)
		}
		n++
	}
	return n
}

// Draw resolves the matrix and material of a submitted part. It returns
// false for unknown parts or parts that do not belong to the requested pass.
func (g *Gizmo) Draw(opts DrawOptions, partIndex int, view ViewInfo) (DrawCommand, bool) {
	parts := g.parts()
	if partIndex < 0 || partIndex >= len(parts) {
		return DrawCommand{}, false
	}
	part := parts[partIndex]
	if part.Transparent != (opts.Pass == PassTransparent) {
		return DrawCommand{}, false
	}

	world := g.PartMatrix(partIndex)
	material := MaterialNormal
	if g.isHighlighted(part) {
		material = MaterialHighlight
	}
	return DrawCommand{
		PartIndex:           partIndex,
		Mesh:                part.Mesh,
		World:               world,
		WorldViewProjection: view.Projection.Mul4(view.View).Mul4(world),
		Material:            material,
	}, true
}

// PartMatrix is the model matrix of a part: the billboard frame for
// billboard parts, the gizmo frame otherwise. While a scale drag runs, the
// grabbed parts preview the current factor.
func (g *Gizmo) PartMatrix(partIndex int) mgl32.Mat4 {
	parts := g.parts()
	if partIndex < 0 || partIndex >= len(parts) {
		return mgl32.Ident4()
	}
	part := parts[partIndex]
	if part.IsBillboard {
		return g.localToWorld(true)
	}

	m := g.localToWorld(false)
	if g.mode == ModeScale && g.isTransforming && g.isHighlighted(part) {
		t := g.scaler.total
		m = m.Mul4(mgl32.Scale3D(t.X(), t.Y(), t.Z()))
	}
	return m
}

// isHighlighted lights every part whose axes are all selected, so a plane
// or uniform selection also lights its single-axis handles.
func (g *Gizmo) isHighlighted(part ModelPart) bool {
	if part.Axes == AxisNone {
		return false
	}
	return g.selectedAxes.Has(part.Axes)
}
