package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadMesh loads a mesh file by extension: .obj, .gltf or .glb.
func LoadMesh(path string, color mgl32.Vec3) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path, color)
	case ".gltf", ".glb":
		return LoadGLTF(path, color)
	}
	return nil, fmt.Errorf("unsupported mesh format %q", path)
}

// LoadGLTF opens a .glb or .gltf file and flattens every triangle primitive
// reachable from the default scene into one mesh, with node transforms baked
// in. Materials are ignored; every vertex gets color.
func LoadGLTF(path string, color mgl32.Vec3) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mesh, err := flattenGLTF(doc, name, color)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return mesh, nil
}

func flattenGLTF(doc *gltf.Document, name string, color mgl32.Vec3) (*Mesh, error) {
	var roots []int
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else {
		// No default scene: collect all parentless nodes
		hasParent := make([]bool, len(doc.Nodes))
		for _, gn := range doc.Nodes {
			for _, c := range gn.Children {
				if c >= 0 && c < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i := range doc.Nodes {
			if !hasParent[i] {
				roots = append(roots, i)
			}
		}
	}

	mesh := &Mesh{Name: name}
	visited := make([]bool, len(doc.Nodes))

	var walk func(idx int, parent mgl32.Mat4) error
	walk = func(idx int, parent mgl32.Mat4) error {
		if idx < 0 || idx >= len(doc.Nodes) || visited[idx] {
			return nil
		}
		visited[idx] = true
		gn := doc.Nodes[idx]
		world := parent.Mul4(nodeTransform(gn))

		if gn.Mesh != nil && *gn.Mesh >= 0 && *gn.Mesh < len(doc.Meshes) {
			gm := doc.Meshes[*gn.Mesh]
			for pi, prim := range gm.Primitives {
				if err := appendPrimitive(mesh, doc, prim, world, color); err != nil {
					return fmt.Errorf("mesh %d prim %d: %w", *gn.Mesh, pi, err)
				}
			}
		}
		for _, c := range gn.Children {
			if err := walk(c, world); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r, mgl32.Ident4()); err != nil {
			return nil, err
		}
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no triangle geometry found")
	}
	return mesh, nil
}

// nodeTransform returns the node's local matrix. An explicit matrix wins
// over translation/rotation/scale.
func nodeTransform(gn *gltf.Node) mgl32.Mat4 {
	if gn.Matrix != gltf.DefaultMatrix && gn.Matrix != ([16]float64{}) {
		// both are column-major
		var m mgl32.Mat4
		for i, v := range gn.Matrix {
			m[i] = float32(v)
		}
		return m
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()

	rot := mgl32.Quat{
		W: float32(r[3]),
		V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])},
	}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

// appendPrimitive expands one indexed glTF primitive into flat triangles.
func appendPrimitive(dst *Mesh, doc *gltf.Document, prim *gltf.Primitive, world mgl32.Mat4, color mgl32.Vec3) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	posAcc, err := accessor(doc, posIdx)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
		normals, err = modeler.ReadNormal(doc, acc, nil)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		indices, err = modeler.ReadIndices(doc, acc, nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	normalMat := world.Mat3().Inv().Transpose()
	for i := 0; i+2 < len(indices); i += 3 {
		var pts [3]mgl32.Vec3
		for c := 0; c < 3; c++ {
			k := indices[i+c]
			if int(k) >= len(positions) {
				return fmt.Errorf("index %d out of range", k)
			}
			p := positions[k]
			pts[c] = mgl32.TransformCoordinate(mgl32.Vec3{p[0], p[1], p[2]}, world)
		}
		flat := faceNormal(pts[0], pts[1], pts[2])
		for c := 0; c < 3; c++ {
			n := flat
			if k := indices[i+c]; int(k) < len(normals) {
				v := normals[k]
				n = normalMat.Mul3x1(mgl32.Vec3{v[0], v[1], v[2]}).Normalize()
			}
			dst.Vertices = appendVertex(dst.Vertices, pts[c], color, n)
		}
	}
	return nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d out of range (%d accessors)", idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}
