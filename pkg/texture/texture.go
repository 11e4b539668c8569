// Package texture provides the value_at(u, v, p) -> Color surface
// textures consumed by pkg/material.
package texture

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Solid is a constant color, independent of surface position.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a constant-color texture.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// ValueAt always returns the constant color.
func (s *Solid) ValueAt(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two colors in 3D space based on the sign of
// sin(size*x)*sin(size*y)*sin(size*z).
type Checker struct {
	Color1, Color2 core.Vec3
	Size           float64
}

// NewChecker creates a checker texture with the given cell size.
func NewChecker(color1, color2 core.Vec3, size float64) *Checker {
	return &Checker{Color1: color1, Color2: color2, Size: size}
}

// ValueAt selects Color1 or Color2 by the sign of the product of sines.
func (c *Checker) ValueAt(u, v float64, p core.Vec3) core.Vec3 {
	sin := math.Sin(c.Size*p.X) * math.Sin(c.Size*p.Y) * math.Sin(c.Size*p.Z)
	if sin < 0 {
		return c.Color1
	}
	return c.Color2
}
