// Package loaders reads STL and OBJ/MTL files into the closed
// core.Shape sum type. These are external collaborators to the core
// renderer — pkg/core never imports this package, only the other
// direction holds.
package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
)

const stlHeaderSize = 80
const stlTriangleRecordSize = 4*3*4 + 2 // normal + 3 vertices, 3 float32s (4 bytes) each, + 2-byte attribute count

// LoadSTL reads a binary STL file (80-byte header, little-endian
// uint32 triangle count, then one 50-byte record per triangle: a
// float32[3] facet normal, three float32[3] vertices, and a uint16
// attribute byte count) and returns one Triangle per record, all
// sharing the given material.
func LoadSTL(path string, mat core.Material) ([]core.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening STL %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if _, err := io.CopyN(io.Discard, r, stlHeaderSize); err != nil {
		return nil, fmt.Errorf("loaders: reading STL header of %s: %w", path, err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("loaders: reading STL triangle count of %s: %w", path, err)
	}

	shapes := make([]core.Shape, 0, count)
	for i := uint32(0); i < count; i++ {
		tri, err := readSTLTriangle(r, mat)
		if err != nil {
			return nil, fmt.Errorf("loaders: reading STL triangle %d of %s: %w", i, path, err)
		}
		shapes = append(shapes, tri)
	}

	return shapes, nil
}

func readSTLTriangle(r io.Reader, mat core.Material) (*geometry.Triangle, error) {
	var floats [12]float32 // normal(3) + v0(3) + v1(3) + v2(3), normal is recomputed and discarded
	if err := binary.Read(r, binary.LittleEndian, &floats); err != nil {
		return nil, err
	}
	var attrByteCount uint16
	if err := binary.Read(r, binary.LittleEndian, &attrByteCount); err != nil {
		return nil, err
	}

	v0 := core.NewVec3(float64(floats[3]), float64(floats[4]), float64(floats[5]))
	v1 := core.NewVec3(float64(floats[6]), float64(floats[7]), float64(floats[8]))
	v2 := core.NewVec3(float64(floats[9]), float64(floats[10]), float64(floats[11]))

	return geometry.NewTriangle(v0, v1, v2, mat), nil
}
