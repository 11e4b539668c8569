// Command raytracer renders a scene to a PPM file using the parallel
// per-row render driver in pkg/renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/config"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/integrator"
	"github.com/df07/pathtracer/pkg/renderer"
	"github.com/df07/pathtracer/pkg/scene"
)

type cliFlags struct {
	scenePath       string
	sceneName       string
	output          string
	width           int
	height          int
	samplesPerPixel int
	maxDepth        int
	workers         int
	verbose         bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.scenePath, "config", "", "path to a YAML render configuration (overrides -scene)")
	flag.StringVar(&f.sceneName, "scene", "default", "built-in scene: default, cornell, spheregrid")
	flag.StringVar(&f.output, "out", "render.ppm", "output PPM path")
	flag.IntVar(&f.width, "width", 0, "override image width (0 = use scene/config default)")
	flag.IntVar(&f.height, "height", 0, "override image height (0 = use scene/config default)")
	flag.IntVar(&f.samplesPerPixel, "samples", 0, "override samples per pixel (0 = use scene/config default)")
	flag.IntVar(&f.maxDepth, "max-depth", 0, "override max bounce depth (0 = use scene/config default)")
	flag.IntVar(&f.workers, "workers", 0, "override number of parallel workers (0 = use scene/config default)")
	flag.BoolVar(&f.verbose, "verbose", false, "log per-bounce integrator tracing")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	r, samplesPerPixel, err := buildRenderer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytracer: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(flags.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytracer: creating %s: %v\n", flags.output, err)
		os.Exit(1)
	}
	defer out.Close()

	start := time.Now()
	img, stats := r.Render()
	fmt.Printf("rendered %dx%d in %s (avg %.1f samples/px)\n", r.Width, r.Height, time.Since(start), stats.AverageSamples())

	if err := renderer.WritePPM(out, img, samplesPerPixel); err != nil {
		fmt.Fprintf(os.Stderr, "raytracer: writing %s: %v\n", flags.output, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s\n", flags.output)
}

// buildRenderer constructs a renderer.Renderer from either a YAML
// config file (-config) or a built-in scene constructor (-scene), with
// CLI flags overriding individual render parameters. It returns the
// effective samples-per-pixel separately since WritePPM needs it.
func buildRenderer(flags cliFlags) (*renderer.Renderer, int, error) {
	var world core.Hittable
	var cam *camera.Camera
	var width, height, samplesPerPixel, maxDepth, workers int

	if flags.scenePath != "" {
		cfg, err := config.Load(flags.scenePath)
		if err != nil {
			return nil, 0, err
		}
		cfg.ApplyOverrides(flags.width, flags.height, flags.samplesPerPixel, flags.workers)

		cam, err = cfg.Camera.Build()
		if err != nil {
			return nil, 0, fmt.Errorf("building camera: %w", err)
		}

		materials, err := cfg.Materialize()
		if err != nil {
			return nil, 0, err
		}

		world, err = cfg.BuildWorld(materials)
		if err != nil {
			return nil, 0, err
		}

		width, height = cfg.Render.Width, cfg.Render.Height
		samplesPerPixel = cfg.Render.SamplesPerPixel
		maxDepth = cfg.Render.MaxDepth
		workers = cfg.Render.WorkerCount
	} else {
		s, err := buildScene(flags.sceneName)
		if err != nil {
			return nil, 0, err
		}
		world, cam = s.World, s.Camera
		width, height = s.Config.Width, s.Config.Height
		samplesPerPixel, maxDepth, workers = s.Config.SamplesPerPixel, s.Config.MaxDepth, s.Config.WorkerCount

		if flags.width > 0 {
			width = flags.width
		}
		if flags.height > 0 {
			height = flags.height
		}
		if flags.samplesPerPixel > 0 {
			samplesPerPixel = flags.samplesPerPixel
		}
		if flags.workers > 0 {
			workers = flags.workers
		}
	}

	if flags.maxDepth > 0 {
		maxDepth = flags.maxDepth
	}

	pt := integrator.NewPathTracer(maxDepth)
	if flags.verbose {
		pt.Verbose = true
		pt.Logger = renderer.NewDefaultLogger()
	}

	r := renderer.New(world, cam, pt, width, height, samplesPerPixel, workers)
	r.Logger = renderer.NewDefaultLogger()
	return r, samplesPerPixel, nil
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
