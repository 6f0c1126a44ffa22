package gizmo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/geom"
)

var ErrNoRegistry = errors.New("gizmo: model registry is nil")

type AssetID string

func makeAssetID() AssetID {
	return AssetID(uuid.NewString())
}

// MeshProvider resolves an asset path to a ray-castable surface.
type MeshProvider interface {
	LoadSurface(path string) (*geom.Surface, error)
}

// MeshRef is a loaded handle mesh. It is shared by every part and every
// gizmo that names the same path, and never modified after loading.
type MeshRef struct {
	ID      AssetID
	Path    string
	Surface *geom.Surface
}

type ModelPart struct {
	Name           string
	Axes           AxisFlags
	RayCastEnabled bool
	IsBillboard    bool
	Transparent    bool
	Mesh           *MeshRef
}

// PartSpec describes one part of a mode's model before its mesh is loaded.
type PartSpec struct {
	Name        string    `yaml:"name"`
	Path        string    `yaml:"path"`
	Axes        AxisFlags `yaml:"axes"`
	RayCast     bool      `yaml:"ray_cast"`
	Billboard   bool      `yaml:"billboard"`
	Transparent bool      `yaml:"transparent"`
}

type Manifest map[Mode][]PartSpec

// DefaultManifest names the stock handle meshes. The paths are understood by
// assets.ProceduralProvider, and by assets.GLTFProvider when the matching
// .glb files exist under its root.
//
// Plane handles are a pickable frame plus a transparent fill. The fill only
// takes hits in scale mode. The rotate outline faces the camera and selects
// no axis; it is pickable so it shadows the rings behind it.
func DefaultManifest() Manifest {
	arrows := func(prefix string) []PartSpec {
		return []PartSpec{
			{Name: "x", Path: prefix + "_x", Axes: AxisX, RayCast: true},
			{Name: "y", Path: prefix + "_y", Axes: AxisY, RayCast: true},
			{Name: "z", Path: prefix + "_z", Axes: AxisZ, RayCast: true},
		}
	}
	planes := func(pickFill bool) []PartSpec {
		return []PartSpec{
			{Name: "xy", Path: "common/frame_xy", Axes: AxisXY, RayCast: true},
			{Name: "yz", Path: "common/frame_yz", Axes: AxisYZ, RayCast: true},
			{Name: "xz", Path: "common/frame_xz", Axes: AxisXZ, RayCast: true},
			{Name: "xy_fill", Path: "common/plane_xy", Axes: AxisXY, RayCast: pickFill, Transparent: true},
			{Name: "yz_fill", Path: "common/plane_yz", Axes: AxisYZ, RayCast: pickFill, Transparent: true},
			{Name: "xz_fill", Path: "common/plane_xz", Axes: AxisXZ, RayCast: pickFill, Transparent: true},
		}
	}

	rotate := []PartSpec{{Name: "outline", Path: "rotate/outline", Axes: AxisNone, RayCast: true, Billboard: true}}
	rotate = append(rotate, arrows("rotate/ring")...)
	rotate = append(rotate, PartSpec{Name: "xyz", Path: "rotate/shade", Axes: AxisAll, Transparent: true})

	scale := append(arrows("scale/handle"), planes(true)...)
	scale = append(scale, PartSpec{Name: "uniform", Path: "scale/center", Axes: AxisAll, RayCast: true})

	return Manifest{
		ModeTranslate: append(arrows("translate/arrow"), planes(false)...),
		ModeRotate:    rotate,
		ModeScale:     scale,
	}
}

// ModelRegistry owns the per-mode part tables. It is built once and then
// only read, so one registry can back any number of gizmos.
type ModelRegistry struct {
	parts  [modeCount][]ModelPart
	meshes map[string]*MeshRef
}

// LoadModelRegistry loads every distinct mesh path in the manifest once.
// Failure to load any mesh is fatal for the registry.
func LoadModelRegistry(provider MeshProvider, manifest Manifest, logger Logger) (*ModelRegistry, error) {
	logger = loggerOrNop(logger)
	reg := &ModelRegistry{meshes: make(map[string]*MeshRef)}

	for _, mode := range []Mode{ModeTranslate, ModeRotate, ModeScale} {
		specs := manifest[mode]
		table := make([]ModelPart, 0, len(specs))
		for _, spec := range specs {
			mesh, ok := reg.meshes[spec.Path]
			if !ok {
				surf, err := provider.LoadSurface(spec.Path)
				if err != nil {
					err = fmt.Errorf("gizmo: load %s part %q: %w", mode, spec.Name, err)
					logger.Errorf("%v", err)
					return nil, err
				}
				mesh = &MeshRef{ID: makeAssetID(), Path: spec.Path, Surface: surf}
				reg.meshes[spec.Path] = mesh
			}
			table = append(table, ModelPart{
				Name:           spec.Name,
				Axes:           spec.Axes,
				RayCastEnabled: spec.RayCast,
				IsBillboard:    spec.Billboard,
				Transparent:    spec.Transparent,
				Mesh:           mesh,
			})
		}
		if len(table) == 0 {
			logger.Warnf("gizmo: manifest has no parts for %s; the mode will draw nothing", mode)
		}
		reg.parts[mode] = table
	}

	logger.Infof("gizmo: loaded %d meshes for %d parts", len(reg.meshes), reg.partCount())
	return reg, nil
}

func (r *ModelRegistry) partCount() int {
	n := 0
	for _, table := range r.parts {
		n += len(table)
	}
	return n
}

// Parts returns the part table of a mode. Callers must not modify it.
func (r *ModelRegistry) Parts(m Mode) []ModelPart {
	if r == nil || m <= ModeOff || m >= modeCount {
		return nil
	}
	return r.parts[m]
}

// Meshes returns the loaded meshes ordered by path.
func (r *ModelRegistry) Meshes() []*MeshRef {
	out := make([]*MeshRef, 0, len(r.meshes))
	for _, m := range r.meshes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
