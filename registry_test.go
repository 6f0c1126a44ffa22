package gizmo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/assets"
	"github.com/gekko3d/gizmo/geom"
)

type countingProvider struct {
	inner MeshProvider
	loads map[string]int
	fail  string
}

func testProvider() *countingProvider {
	return &countingProvider{inner: assets.ProceduralProvider{}, loads: map[string]int{}}
}

func (p *countingProvider) LoadSurface(path string) (*geom.Surface, error) {
	p.loads[path]++
	if path == p.fail {
		return nil, errBrokenMesh
	}
	return p.inner.LoadSurface(path)
}

var errBrokenMesh = errors.New("broken mesh")

type recordingLogger struct {
	nopLogger
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestLoadModelRegistry_SharesMeshes(t *testing.T) {
	p := testProvider()
	log := &recordingLogger{}
	reg, err := LoadModelRegistry(p, DefaultManifest(), log)
	require.NoError(t, err)

	assert.Len(t, reg.Meshes(), 18)
	assert.Equal(t, []string{"gizmo: loaded 18 meshes for 24 parts"}, log.infos)
	assert.Empty(t, log.warnings)
	for path, n := range p.loads {
		assert.Equal(t, 1, n, "%s loaded more than once", path)
	}

	translate := reg.Parts(ModeTranslate)
	scale := reg.Parts(ModeScale)
	require.Len(t, translate, 9)
	require.Len(t, scale, 10)
	assert.Same(t, translate[3].Mesh, scale[3].Mesh)
	assert.Same(t, translate[6].Mesh, scale[6].Mesh)
	assert.NotEmpty(t, translate[3].Mesh.ID)
	assert.NotEqual(t, translate[0].Mesh.ID, translate[1].Mesh.ID)

	// Plane fills are drawn in both modes but only pickable when scaling.
	assert.True(t, translate[6].Transparent)
	assert.False(t, translate[6].RayCastEnabled)
	assert.True(t, scale[6].RayCastEnabled)

	rotate := reg.Parts(ModeRotate)
	require.Len(t, rotate, 5)
	assert.Equal(t, "outline", rotate[0].Name)
	assert.True(t, rotate[0].IsBillboard)
	assert.True(t, rotate[0].RayCastEnabled)
	assert.Equal(t, AxisNone, rotate[0].Axes)
	assert.Equal(t, "xyz", rotate[4].Name)
	assert.False(t, rotate[4].RayCastEnabled)
	assert.True(t, rotate[4].Transparent)

	assert.Nil(t, reg.Parts(ModeOff))

	meshes := reg.Meshes()
	for i := 1; i < len(meshes); i++ {
		assert.Less(t, meshes[i-1].Path, meshes[i].Path)
	}
}

func TestLoadModelRegistry_SharedByGizmos(t *testing.T) {
	reg := newTestRegistry(t)
	a, err := New(reg, Options{})
	require.NoError(t, err)
	b, err := New(reg, Options{})
	require.NoError(t, err)

	a.SetMode(ModeTranslate)
	b.SetMode(ModeTranslate)
	assert.Same(t, a.Registry(), b.Registry())
	assert.Same(t, a.parts()[0].Mesh, b.parts()[0].Mesh)
}

func TestLoadModelRegistry_Failure(t *testing.T) {
	p := testProvider()
	p.fail = "rotate/ring_y"
	log := &recordingLogger{}

	reg, err := LoadModelRegistry(p, DefaultManifest(), log)
	assert.Nil(t, reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBrokenMesh)
	assert.Contains(t, err.Error(), `rotate part "y"`)
	assert.Len(t, log.errors, 1)
}

func TestLoadModelRegistry_WarnsOnEmptyMode(t *testing.T) {
	manifest := DefaultManifest()
	delete(manifest, ModeRotate)
	log := &recordingLogger{}

	reg, err := LoadModelRegistry(testProvider(), manifest, log)
	require.NoError(t, err)
	assert.Empty(t, reg.Parts(ModeRotate))
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "rotate")
}

func TestLoadModelRegistry_UnknownAsset(t *testing.T) {
	manifest := Manifest{ModeTranslate: {{Name: "x", Path: "translate/missing", Axes: AxisX}}}
	_, err := LoadModelRegistry(assets.ProceduralProvider{}, manifest, nil)
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
}
