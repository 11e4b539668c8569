package scene

import (
	"math"

	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values (lightness, chroma, hue in
// degrees) to linear RGB, via the OKLab intermediate space.
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene builds a gridSize x gridSize grid of metal spheres
// over a diffuse ground plane, colored by sweeping hue across one axis
// and chroma across the other.
func NewSphereGridScene() (*Scene, error) {
	cam, err := camera.New(
		core.NewVec3(4.5, 6, 18),
		core.NewVec3(4.5, 0.8, 4.5),
		core.NewVec3(0, 1, 0),
		40.0, 16.0/9.0, 14.0,
	)
	if err != nil {
		return nil, err
	}

	groundA, groundB := quad(
		core.NewVec3(-5000, 0, -5000),
		core.NewVec3(10000, 0, 0),
		core.NewVec3(0, 0, 10000),
		material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)),
	)

	shapes := []core.Shape{groundA, groundB}

	const gridSize = 20
	const targetArea = 9.0
	spacing := targetArea / float64(gridSize-1)

	sphereRadius := spacing * 0.35
	sphereRadius = math.Max(0.02, math.Min(0.35, sphereRadius))

	const baseLightness = 0.65
	const minChroma = 0.05
	const maxChroma = 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			y := sphereRadius

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := material.NewMetal(color, roughness)

			sphere := geometry.NewSphere(core.NewVec3(x, y, z), sphereRadius, metal)
			shapes = append(shapes, sphere)
		}
	}

	s := &Scene{
		Camera: cam,
		Shapes: shapes,
		Config: RenderConfig{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        40,
			WorkerCount:     0,
		},
	}

	return s.Build(), nil
}
