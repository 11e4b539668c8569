package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/pathtracer/pkg/core"
)

// worker renders whole rows against a shared, read-only Renderer. Each
// worker owns its own RNG; sharing one generator across workers would
// serialize them, so none is shared. The seed is deterministic in the
// worker's index so renders are reproducible across runs with the same
// worker count.
type worker struct {
	id       int
	rng      *rand.Rand
	renderer *Renderer
}

func newWorker(id int, r *Renderer) *worker {
	return &worker{id: id, rng: rand.New(rand.NewSource(int64(id) + 1)), renderer: r}
}

// renderRow samples every pixel in output row `row` and returns the
// accumulated (unaveraged) color sums along with the sample count
// taken per pixel.
func (w *worker) renderRow(row int) ([]core.Vec3, int) {
	r := w.renderer
	imageRow := r.Height - row - 1
	pixels := make([]core.Vec3, r.Width)

	for j := 0; j < r.Width; j++ {
		var sum core.Vec3
		for s := 0; s < r.SamplesPerPixel; s++ {
			u := (float64(j) + w.rng.Float64()) / float64(r.Width-1)
			v := (float64(imageRow) + w.rng.Float64()) / float64(r.Height-1)
			ray := r.Camera.GetRay(u, v)
			sum = sum.Add(r.Integrator.ColorAt(ray, r.World, w.rng))
		}
		pixels[j] = sum
	}

	return pixels, r.SamplesPerPixel
}

// workerPool dispatches rows to a fixed-size set of workers. Rows are
// self-contained jobs: no cross-row communication happens during
// sampling, and the only synchronization point is the image buffer's
// write-back lock plus the final join.
type workerPool struct {
	numWorkers int
}

func newWorkerPool(numWorkers int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &workerPool{numWorkers: numWorkers}
}

// run renders every row of r.Height into img, recording sampling stats,
// and blocks until all rows are complete. Row completion order is
// unspecified; each row writes a disjoint destination so the final
// image is independent of completion order.
func (wp *workerPool) run(r *Renderer, img *ImageBuffer, stats *RenderStats) {
	rows := make(chan int)
	var wg sync.WaitGroup

	wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		w := newWorker(i, r)
		go func(w *worker) {
			defer wg.Done()
			for row := range rows {
				pixels, samples := w.renderRow(row)
				img.SetRow(row, pixels)
				stats.addRow(len(pixels), samples*len(pixels))
			}
		}(w)
	}

	for row := 0; row < r.Height; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()
}
