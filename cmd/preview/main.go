// Command preview renders a built-in scene and shows it updating
// row-by-row in the terminal using tcell, by polling the same
// ImageBuffer snapshot the PPM writer reads at the end of a render.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/df07/pathtracer/pkg/integrator"
	"github.com/df07/pathtracer/pkg/renderer"
	"github.com/df07/pathtracer/pkg/scene"
)

const frameInterval = 100 * time.Millisecond

func main() {
	sceneName := flag.String("scene", "default", "built-in scene: default, cornell, spheregrid")
	flag.Parse()

	s, err := buildScene(*sceneName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	pt := integrator.NewPathTracer(s.Config.MaxDepth)
	r := renderer.New(s.World, s.Camera, pt, s.Config.Width, s.Config.Height, s.Config.SamplesPerPixel, s.Config.WorkerCount)
	img, stats, done := r.RenderAsync()

	runPreview(screen, img, stats, done, s.Config.SamplesPerPixel)
}

func buildScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene()
	case "cornell":
		return scene.NewCornellScene()
	case "spheregrid":
		return scene.NewSphereGridScene()
	default:
		return nil, fmt.Errorf("unknown scene %q (want default, cornell, or spheregrid)", name)
	}
}

// runPreview redraws the terminal from img's current snapshot at a
// fixed cadence until the render finishes, then waits for a keypress
// to quit. The whole image is scaled to the terminal's size, each cell
// showing the image pixel nearest its position.
func runPreview(screen tcell.Screen, img *renderer.ImageBuffer, stats *renderer.RenderStats, done <-chan struct{}, samplesPerPixel int) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			draw(screen, img, stats.AverageSamples(), samplesPerPixel)

		case <-done:
			// A closed channel is always ready, so stop selecting on it;
			// the final frame stays up until a quit key is pressed.
			done = nil
			ticker.Stop()
			draw(screen, img, stats.AverageSamples(), samplesPerPixel)
		}
	}
}

func draw(screen tcell.Screen, img *renderer.ImageBuffer, avgSamples float64, samplesPerPixel int) {
	cols, rows := screen.Size()
	rows-- // reserve the bottom row for the status line
	if cols <= 0 || rows <= 0 {
		return
	}

	snapshot := img.Snapshot()
	for termY := 0; termY < rows; termY++ {
		srcY := termY * img.Height / rows
		row := snapshot[srcY]
		for termX := 0; termX < cols; termX++ {
			srcX := termX * img.Width / cols
			r, g, b := renderer.Tonemap(row[srcX], samplesPerPixel)
			color := tcell.NewRGBColor(int32(r), int32(g), int32(b))
			screen.SetContent(termX, termY, ' ', nil, tcell.StyleDefault.Background(color))
		}
	}

	status := fmt.Sprintf("avg %.1f samples/px — q to quit", avgSamples)
	for i, ch := range status {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows, ch, nil, tcell.StyleDefault)
	}

	screen.Show()
}
