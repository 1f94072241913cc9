package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMeshColor is the albedo given to loaded meshes, which carry no
// material of their own.
var DefaultMeshColor = mgl32.Vec3{0.9, 0.9, 0.9}

type faceVertex struct{ v, vn int }

// LoadOBJ parses a Wavefront .obj file into a single flat triangle mesh
// colored with color. Groups, objects and materials are merged.
func LoadOBJ(path string, color mgl32.Vec3) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	m, err := ParseOBJ(f, name, color)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return m, nil
}

// ParseOBJ reads v, vn and f records. Faces may use "v", "v/vt", "v//vn" or
// "v/vt/vn" and any number of vertices (fan triangulated). Triangles whose
// vertices lack normals get the face normal.
func ParseOBJ(r io.Reader, name string, color mgl32.Vec3) (*Mesh, error) {
	var positions []mgl32.Vec3
	var normals []mgl32.Vec3
	var tris [][3]faceVertex

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			fverts := make([]faceVertex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fv, err := parseFaceVertex(tok, len(positions), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				fverts = append(fverts, fv)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				tris = append(tris, [3]faceVertex{fverts[0], fverts[i], fverts[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	vertices := make([]float32, 0, len(tris)*3*FloatsPerVertex)
	for _, tri := range tris {
		pts := [3]mgl32.Vec3{positions[tri[0].v], positions[tri[1].v], positions[tri[2].v]}
		flat := faceNormal(pts[0], pts[1], pts[2])
		for c, fv := range tri {
			n := flat
			if fv.vn >= 0 {
				n = normals[fv.vn]
			}
			vertices = appendVertex(vertices, pts[c], color, n)
		}
	}
	return &Mesh{Name: name, Vertices: vertices}, nil
}

// parseFaceVertex parses one face vertex token into 0-based indices, -1 if
// absent. Negative OBJ indices count back from the most recent element.
func parseFaceVertex(tok string, nPos, nNorm int) (faceVertex, error) {
	parts := strings.Split(tok, "/")
	res := faceVertex{v: -1, vn: -1}

	var err error
	if res.v, err = resolveIndex(parts[0], nPos); err != nil || res.v < 0 {
		return res, fmt.Errorf("face vertex %q: bad position index", tok)
	}
	if len(parts) > 2 && parts[2] != "" {
		if res.vn, err = resolveIndex(parts[2], nNorm); err != nil || res.vn < 0 {
			return res, fmt.Errorf("face vertex %q: bad normal index", tok)
		}
	}
	return res, nil
}

func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	}
	return -1, fmt.Errorf("index %d out of range", n)
}

func parseVec3(fields []string) (mgl32.Vec3, error) {
	if len(fields) < 3 {
		return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func faceNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
