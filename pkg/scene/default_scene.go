package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/material"
)

// NewDefaultScene builds a small showcase scene under the sky gradient
// background: a diffuse ground plane, Cook-Torrance, metal and glass
// spheres, and a hollow glass sphere around a diffuse core.
func NewDefaultScene() (*Scene, error) {
	cam, err := camera.New(
		core.NewVec3(0, 0.75, 2),
		core.NewVec3(0, 0.5, -1),
		core.NewVec3(0, 1, 0),
		40.0, 16.0/9.0, 2.25,
	)
	if err != nil {
		return nil, err
	}

	diffuseGreen := material.NewDiffuse(core.NewVec3(0.48, 0.48, 0.0))
	diffuseBlue := material.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)
	plasticRed := material.NewCookTorrance(core.NewVec3(0.65, 0.25, 0.2), 0.8, core.NewVec3(0.04, 0.04, 0.04), 0.3)

	groundA, groundB := quad(
		core.NewVec3(-5000, 0, -5000),
		core.NewVec3(10000, 0, 0),
		core.NewVec3(0, 0, 10000),
		diffuseGreen,
	)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, plasticRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, diffuseBlue)

	s := &Scene{
		Camera: cam,
		Shapes: []core.Shape{
			groundA, groundB,
			sphereCenter, sphereLeft, sphereRight,
			solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter,
		},
		Config: RenderConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			WorkerCount:     0,
		},
	}

	return s.Build(), nil
}
