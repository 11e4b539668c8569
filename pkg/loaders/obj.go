package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
)

// LoadOBJ reads an OBJ file's `v` (vertex), `vt` (texture coordinate),
// `mtllib` (material library), `usemtl` (active material), and `f`
// (face, triangulated as a fan if it has more than 3 vertices)
// directives into a list of Triangle shapes. defaultMaterial is used
// for any face before the first usemtl directive, or when a usemtl
// name isn't found in the referenced MTL file.
func LoadOBJ(path string, defaultMaterial core.Material) ([]core.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening OBJ %s: %w", path, err)
	}
	defer f.Close()

	var vertices []core.Vec3
	var uvs []core.Vec2
	var shapes []core.Shape

	materials := map[string]core.Material{}
	current := defaultMaterial

	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: v: %w", path, lineNum, err)
			}
			vertices = append(vertices, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("loaders: %s:%d: vt needs 2 components", path, lineNum)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("loaders: %s:%d: vt: invalid number", path, lineNum)
			}
			uvs = append(uvs, core.NewVec2(u, v))

		case "mtllib":
			if len(fields) < 2 {
				continue
			}
			mtlPath := filepath.Join(filepath.Dir(path), fields[1])
			loaded, err := LoadMTL(mtlPath)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: mtllib: %w", path, lineNum, err)
			}
			for name, mat := range loaded {
				materials[name] = mat
			}

		case "usemtl":
			if len(fields) < 2 {
				continue
			}
			if mat, ok := materials[fields[1]]; ok {
				current = mat
			} else {
				current = defaultMaterial
			}

		case "f":
			tris, err := parseFace(fields[1:], vertices, uvs, current, lineNum, path)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: reading OBJ %s: %w", path, err)
	}

	return shapes, nil
}

// parseFace triangulates a face with a fan from its first vertex,
// so quads and larger polygons become (n-2) triangles.
func parseFace(fields []string, vertices []core.Vec3, uvs []core.Vec2, mat core.Material, lineNum int, path string) ([]core.Shape, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("loaders: %s:%d: f needs at least 3 vertices", path, lineNum)
	}

	type vertRef struct {
		pos core.Vec3
		uv  core.Vec2
		has bool
	}
	refs := make([]vertRef, len(fields))
	for i, field := range fields {
		idx := strings.Split(field, "/")
		vi, err := strconv.Atoi(idx[0])
		if err != nil || vi < 1 || vi > len(vertices) {
			return nil, fmt.Errorf("loaders: %s:%d: f: invalid vertex index %q", path, lineNum, idx[0])
		}
		refs[i].pos = vertices[vi-1]

		if len(idx) > 1 && idx[1] != "" {
			ti, err := strconv.Atoi(idx[1])
			if err != nil || ti < 1 || ti > len(uvs) {
				return nil, fmt.Errorf("loaders: %s:%d: f: invalid texture index %q", path, lineNum, idx[1])
			}
			refs[i].uv = uvs[ti-1]
			refs[i].has = true
		}
	}

	shapes := make([]core.Shape, 0, len(refs)-2)
	for i := 1; i < len(refs)-1; i++ {
		a, b, c := refs[0], refs[i], refs[i+1]
		if a.has && b.has && c.has {
			shapes = append(shapes, geometry.NewTriangleWithUVs(a.pos, b.pos, c.pos, a.uv, b.uv, c.uv, mat))
		} else {
			shapes = append(shapes, geometry.NewTriangle(a.pos, b.pos, c.pos, mat))
		}
	}
	return shapes, nil
}
