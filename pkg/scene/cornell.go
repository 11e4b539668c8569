package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/material"
	"github.com/df07/pathtracer/pkg/texture"
)

// NewCornellScene builds a classic Cornell box: five diffuse walls, an
// emissive ceiling patch, and two spheres — one metal, one glass.
func NewCornellScene() (*Scene, error) {
	cam, err := camera.New(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40.0, 1.0, 800.0,
	)
	if err != nil {
		return nil, err
	}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseTexture(texture.NewSolid(core.Vec3{}), core.NewVec3(15, 15, 15))

	const boxSize = 555.0

	floorA, floorB := quad(
		core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceilA, ceilB := quad(
		core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	backA, backB := quad(
		core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	leftA, leftB := quad(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	rightA, rightB := quad(
		core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)

	const lightSize = 130.0
	const lightOffset = (boxSize - lightSize) / 2.0
	lightA, lightB := quad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0), core.NewVec3(0, 0, lightSize),
		light,
	)

	metalSphere := geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	glassSphere := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))

	s := &Scene{
		Camera: cam,
		Shapes: []core.Shape{
			floorA, floorB, ceilA, ceilB, backA, backB, leftA, leftB, rightA, rightB,
			lightA, lightB,
			metalSphere, glassSphere,
		},
		Config: RenderConfig{
			Width:           400,
			Height:          400,
			SamplesPerPixel: 150,
			MaxDepth:        40,
			WorkerCount:     0,
		},
	}

	return s.Build(), nil
}
