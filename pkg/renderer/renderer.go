// Package renderer implements the parallel per-row render driver: a
// fixed-size worker pool samples each row of the image independently
// and writes it back into a shared accumulator, which is then
// tone-mapped and written out as a PPM image.
package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/integrator"
)

// Renderer holds everything needed to drive a render: the scene's
// acceleration structure, camera, and integrator, plus the output
// resolution and sampling budget. A Renderer is read-only once built —
// the BVH root, camera, and materials it references are shared-read by
// every worker and never mutated.
type Renderer struct {
	World           core.Hittable
	Camera          *camera.Camera
	Integrator      *integrator.PathTracer
	Width, Height   int
	SamplesPerPixel int
	WorkerCount     int
	Logger          core.Logger
}

// New creates a Renderer. A WorkerCount of 0 or less defaults to
// runtime.NumCPU() workers.
func New(world core.Hittable, cam *camera.Camera, pt *integrator.PathTracer, width, height, samplesPerPixel, workerCount int) *Renderer {
	return &Renderer{
		World:           world,
		Camera:          cam,
		Integrator:      pt,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		WorkerCount:     workerCount,
	}
}

// Render dispatches one job per image row across the worker pool and
// blocks until every row has been sampled, returning the filled image
// buffer and the sampling statistics gathered along the way.
func (r *Renderer) Render() (*ImageBuffer, *RenderStats) {
	img := NewImageBuffer(r.Width, r.Height)
	stats := &RenderStats{}

	start := time.Now()
	pool := newWorkerPool(r.WorkerCount)
	pool.run(r, img, stats)

	if r.Logger != nil {
		r.Logger.Printf("rendered %dx%d at %d spp in %s (avg %.1f samples/px)\n",
			r.Width, r.Height, r.SamplesPerPixel, time.Since(start), stats.AverageSamples())
	}

	return img, stats
}

// RenderAsync starts the same row-parallel render as Render but returns
// immediately, so a caller can poll img.Snapshot() for a live preview
// while the workers fill it in. The returned channel is closed once
// every row has been written.
func (r *Renderer) RenderAsync() (*ImageBuffer, *RenderStats, <-chan struct{}) {
	img := NewImageBuffer(r.Width, r.Height)
	stats := &RenderStats{}
	done := make(chan struct{})

	go func() {
		start := time.Now()
		pool := newWorkerPool(r.WorkerCount)
		pool.run(r, img, stats)

		if r.Logger != nil {
			r.Logger.Printf("rendered %dx%d at %d spp in %s (avg %.1f samples/px)\n",
				r.Width, r.Height, r.SamplesPerPixel, time.Since(start), stats.AverageSamples())
		}
		close(done)
	}()

	return img, stats, done
}

// WritePPM tone-maps img's accumulated color sums (each pixel divided
// by samplesPerPixel, then gamma-2 square-root tone mapped) and writes
// an ASCII PPM (P3) image to w.
func WritePPM(w io.Writer, img *ImageBuffer, samplesPerPixel int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	rows := img.Snapshot()
	for _, row := range rows {
		for _, c := range row {
			r, g, b := tonemap(c, samplesPerPixel)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("writing PPM pixel: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing PPM output: %w", err)
	}
	return nil
}

// Tonemap converts an accumulated color sum over n samples into 8-bit
// RGB via gamma-2 (square-root) tone mapping, clamped to [0, 0.999]
// before scaling into [0, 255]. Exported for live-preview consumers
// that need the same mapping WritePPM uses on a partially-filled
// ImageBuffer.
func Tonemap(c core.Vec3, n int) (int, int, int) {
	if n <= 0 {
		return 0, 0, 0
	}
	inv := 1.0 / float64(n)
	toByte := func(x float64) int {
		v := math.Sqrt(math.Max(0, x*inv))
		v = math.Min(v, 0.999)
		return int(256 * v)
	}
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func tonemap(c core.Vec3, n int) (int, int, int) { return Tonemap(c, n) }
