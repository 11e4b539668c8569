package renderer

import (
	"sync"

	"github.com/df07/pathtracer/pkg/core"
)

// ImageBuffer is the shared height x width accumulator that render
// workers write completed rows into. Each row is owned by exactly one
// worker until that row's computation is finished, per the row-level
// data-parallel scheduling model; the mutex only guards the brief
// write-back handoff and preview snapshot reads, never the sampling
// work itself.
type ImageBuffer struct {
	Width, Height int

	mu     sync.Mutex
	pixels [][]core.Vec3
}

// NewImageBuffer allocates a zeroed width x height accumulator.
func NewImageBuffer(width, height int) *ImageBuffer {
	pixels := make([][]core.Vec3, height)
	for i := range pixels {
		pixels[i] = make([]core.Vec3, width)
	}
	return &ImageBuffer{Width: width, Height: height, pixels: pixels}
}

// SetRow writes a completed row's pixel sums into the buffer.
func (b *ImageBuffer) SetRow(row int, values []core.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.pixels[row], values)
}

// Snapshot returns a deep copy of the current buffer contents, safe to
// read concurrently with in-flight row writes. Used both for the final
// PPM write and by an external live-preview reader.
func (b *ImageBuffer) Snapshot() [][]core.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := make([][]core.Vec3, b.Height)
	for i, row := range b.pixels {
		rowCopy := make([]core.Vec3, len(row))
		copy(rowCopy, row)
		snap[i] = rowCopy
	}
	return snap
}
