package loaders

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/material"
)

func writeSTL(t *testing.T, triangles [][3][3]float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.stl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	header := make([]byte, stlHeaderSize)
	if _, err := f.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(len(triangles))); err != nil {
		t.Fatalf("write count: %v", err)
	}
	for _, tri := range triangles {
		var normal [3]float32 // unused by the reader, left zero
		if err := binary.Write(f, binary.LittleEndian, normal); err != nil {
			t.Fatalf("write normal: %v", err)
		}
		for _, v := range tri {
			if err := binary.Write(f, binary.LittleEndian, v); err != nil {
				t.Fatalf("write vertex: %v", err)
			}
		}
		if err := binary.Write(f, binary.LittleEndian, uint16(0)); err != nil {
			t.Fatalf("write attr count: %v", err)
		}
	}
	return path
}

func TestLoadSTL_ReadsTriangleVertices(t *testing.T) {
	path := writeSTL(t, [][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	})

	shapes, err := LoadSTL(path, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("LoadSTL: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}

	ray := core.NewRay(core.NewVec3(0.1, 0.1, 1), core.NewVec3(0, 0, -1))
	if _, hit := shapes[0].Hit(ray, 1e-6, math.Inf(1)); !hit {
		t.Error("expected ray through the triangle interior to hit")
	}
}

func TestLoadSTL_MultipleTrianglesAllParsed(t *testing.T) {
	path := writeSTL(t, [][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{5, 5, 5}, {6, 5, 5}, {5, 6, 5}},
		{{-5, -5, -5}, {-4, -5, -5}, {-5, -4, -5}},
	})

	shapes, err := LoadSTL(path, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("LoadSTL: %v", err)
	}
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
}

func TestLoadSTL_MissingFileErrors(t *testing.T) {
	_, err := LoadSTL(filepath.Join(t.TempDir(), "missing.stl"), material.NewDiffuse(core.Vec3{}))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
