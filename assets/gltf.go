package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gekko3d/gizmo/geom"
)

var ErrNoTriangles = errors.New("assets: no triangle primitives")

// GLTFProvider loads handle meshes from .glb/.gltf files under Root. A path
// without an extension gets Ext appended (".glb" when empty).
//
// Every triangle primitive of every mesh in the file is merged into one
// surface; node transforms are ignored, so handles must be authored around
// the origin.
type GLTFProvider struct {
	Root string
	Ext  string
}

func (p GLTFProvider) resolve(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".glb" && ext != ".gltf" {
		e := p.Ext
		if e == "" {
			e = ".glb"
		}
		path += e
	}
	return filepath.Join(p.Root, filepath.FromSlash(path))
}

func (p GLTFProvider) LoadSurface(path string) (*geom.Surface, error) {
	file := p.resolve(path)
	doc, err := gltf.Open(file)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", file, err)
	}

	var tris []geom.Triangle
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			t, err := readTriangles(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("gltf %q mesh %d prim %d: %w", file, mi, pi, err)
			}
			tris = append(tris, t...)
		}
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("gltf %q: %w", file, ErrNoTriangles)
	}
	return geom.NewSurface(tris), nil
}

func readTriangles(doc *gltf.Document, prim *gltf.Primitive) ([]geom.Triangle, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vec := func(i uint32) mgl32.Vec3 {
		p := positions[i]
		return mgl32.Vec3{p[0], p[1], p[2]}
	}
	tris := make([]geom.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		if int(i0) >= len(positions) || int(i1) >= len(positions) || int(i2) >= len(positions) {
			return nil, fmt.Errorf("index out of range at triangle %d", i/3)
		}
		tris = append(tris, geom.Triangle{A: vec(i0), B: vec(i1), C: vec(i2)})
	}
	return tris, nil
}

// WriteGLB stores a surface as a single-mesh binary glTF file, creating
// parent directories as needed.
func WriteGLB(path, name string, surf *geom.Surface) error {
	positions := make([][3]float32, 0, 3*len(surf.Triangles))
	for _, t := range surf.Triangles {
		positions = append(positions, t.A, t.B, t.C)
	}
	indices := make([]uint32, len(positions))
	for i := range indices {
		indices[i] = uint32(i)
	}

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, positions)
	idx := modeler.WriteIndices(doc, indices)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{"POSITION": pos},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}
