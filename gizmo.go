// Package gizmo implements the interactive transform widget of a 3D editor:
// picking translate/rotate/scale handles with a ray and turning cursor drags
// into translation, rotation and scale deltas for the host to apply.
//
// A host drives one Gizmo per viewport from its UI thread. Each frame it calls
// UpdateForCamera, then CheckSelectedAxes while idle; StartTransform on
// button press, TransformFromInput while the button is held and
// EndTransform on release. ProcessInput bundles that sequence.
package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/geom"
)

// Input is one cursor sample: the world-space pick ray through the cursor
// and the cursor itself in window pixels.
type Input struct {
	Ray     geom.Ray
	CursorX float32
	CursorY float32
	Width   int
	Height  int
}

type Gizmo struct {
	cfg      Config
	log      Logger
	registry *ModelRegistry
	warper   CursorWarper

	mode       Mode
	active     modeState
	translator *translateState
	rotator    *rotateState
	scaler     *scaleState

	space         TransformSpace
	position      mgl32.Vec3
	rotation      mgl32.Quat
	localRotation mgl32.Quat
	billboard     mgl32.Quat
	scale         mgl32.Vec3
	flip          [3]bool

	cameraDistance float32
	sizeStep       int

	selectedAxes   AxisFlags
	hitPoint       mgl32.Vec3
	isTransforming bool
	hasTransformed bool

	wrapEnabled bool
	wrapOffset  mgl32.Vec2

	buttonDown bool
}

// New creates a gizmo in ModeOff backed by a loaded registry.
func New(registry *ModelRegistry, opts Options) (*Gizmo, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}

	g := &Gizmo{
		cfg:           cfg,
		log:           loggerOrNop(opts.Logger),
		registry:      registry,
		warper:        opts.Warper,
		translator:    &translateState{},
		rotator:       newRotateState(),
		scaler:        newScaleState(),
		rotation:      mgl32.QuatIdent(),
		localRotation: mgl32.QuatIdent(),
		billboard:     mgl32.QuatIdent(),
		scale:         mgl32.Vec3{1, 1, 1},
	}
	return g, nil
}

// StartTransform begins a drag on the currently selected axes. It does
// nothing when no mode is active or nothing is hovered.
func (g *Gizmo) StartTransform() {
	if g.active == nil || g.selectedAxes == AxisNone {
		return
	}
	g.isTransforming = true
	g.hasTransformed = false
	g.wrapOffset = mgl32.Vec2{}
	g.active.start(g)
	g.log.Debugf("gizmo: start %s on %s", g.mode, g.selectedAxes)
}

// EndTransform finishes a drag. Every mode drops its per-drag offsets so a
// stray sample after this point is harmless, and TotalScale returns to one.
func (g *Gizmo) EndTransform() {
	if g.isTransforming {
		g.log.Debugf("gizmo: end %s (moved=%v)", g.mode, g.hasTransformed)
	}
	g.stopDrag()
	g.scaler.total = mgl32.Vec3{1, 1, 1}
}

func (g *Gizmo) stopDrag() {
	g.isTransforming = false
	g.wrapOffset = mgl32.Vec2{}
	for _, s := range g.states() {
		s.resetOffset()
	}
}

// TransformFromInput feeds one cursor sample to the active mode. It reports
// whether the drag has produced any change yet.
func (g *Gizmo) TransformFromInput(in Input, cam Camera) bool {
	if !g.isTransforming || g.active == nil {
		return false
	}
	return g.active.transform(g, in, cam)
}

func (g *Gizmo) Mode() Mode                     { return g.mode }
func (g *Gizmo) TransformSpace() TransformSpace { return g.space }
func (g *Gizmo) Position() mgl32.Vec3           { return g.position }
func (g *Gizmo) Rotation() mgl32.Quat           { return g.rotation }
func (g *Gizmo) LocalRotation() mgl32.Quat      { return g.localRotation }
func (g *Gizmo) Scale() mgl32.Vec3              { return g.scale }
func (g *Gizmo) BillboardRotation() mgl32.Quat  { return g.billboard }
func (g *Gizmo) SelectedAxes() AxisFlags        { return g.selectedAxes }
func (g *Gizmo) HitPoint() mgl32.Vec3           { return g.hitPoint }
func (g *Gizmo) IsTransforming() bool           { return g.isTransforming }
func (g *Gizmo) HasTransformed() bool           { return g.hasTransformed }
func (g *Gizmo) Registry() *ModelRegistry       { return g.registry }

// AxisFlipped reports whether axis i (0..2) is drawn mirrored so it points
// toward the viewer.
func (g *Gizmo) AxisFlipped(i int) bool { return g.flip[i] }

func (g *Gizmo) DeltaTranslation() mgl32.Vec3 { return g.translator.delta }
func (g *Gizmo) TotalTranslation() mgl32.Vec3 { return g.translator.total }
func (g *Gizmo) DeltaRotation() mgl32.Quat    { return g.rotator.delta }

// TotalRotation is the drag's accumulated angle in degrees per axis.
func (g *Gizmo) TotalRotation() mgl32.Vec3 { return g.rotator.total }
func (g *Gizmo) DeltaScale() mgl32.Vec3    { return g.scaler.delta }
func (g *Gizmo) TotalScale() mgl32.Vec3    { return g.scaler.total }

func (g *Gizmo) SetPosition(p mgl32.Vec3) {
	g.position = p
}

// SetLocalRotation records the orientation of the manipulated object. In
// local space it also becomes the gizmo's orientation.
func (g *Gizmo) SetLocalRotation(q mgl32.Quat) {
	g.localRotation = q.Normalize()
	if g.space == SpaceLocal {
		g.rotation = g.localRotation
	}
}

func (g *Gizmo) parts() []ModelPart {
	return g.registry.Parts(g.mode)
}

// worldAxis is the direction of axis i under the current orientation.
func (g *Gizmo) worldAxis(i int) mgl32.Vec3 {
	return g.rotation.Rotate(unitAxis(i))
}

// flippedAxis is worldAxis turned to point toward the viewer.
func (g *Gizmo) flippedAxis(i int) mgl32.Vec3 {
	if g.flip[i] {
		return g.worldAxis(i).Mul(-1)
	}
	return g.worldAxis(i)
}
