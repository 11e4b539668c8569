// Package scene provides example scene constructors built on top of
// pkg/core, pkg/geometry, pkg/material, and pkg/camera: a default
// showcase scene, a Cornell box, and a sphere grid.
package scene

import (
	"github.com/df07/pathtracer/pkg/camera"
	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
)

// RenderConfig holds the render driver parameters a scene is intended
// to be rendered with. The scene constructors fill in defaults; Build
// does not read them, so callers can change them on the returned Scene.
type RenderConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	WorkerCount     int
}

// Scene bundles a camera and shape list with the render configuration
// they were designed for. Build constructs the immutable BVH once;
// World is then safe to hand to any number of render workers.
type Scene struct {
	Camera *camera.Camera
	Shapes []core.Shape
	Config RenderConfig

	World core.Hittable
}

// Build constructs the scene's BVH from its current shape list. Call
// this once after all shapes have been added and before rendering.
func (s *Scene) Build() *Scene {
	s.World = geometry.Build(s.Shapes)
	return s
}

// quad returns two triangles covering the parallelogram with corner
// `corner` and edge vectors u, v, expressed in terms of the closed
// Sphere/Triangle shape set.
func quad(corner, u, v core.Vec3, mat core.Material) (*geometry.Triangle, *geometry.Triangle) {
	a := corner
	b := corner.Add(u)
	c := corner.Add(u).Add(v)
	d := corner.Add(v)
	return geometry.NewTriangle(a, b, c, mat), geometry.NewTriangle(a, c, d, mat)
}
