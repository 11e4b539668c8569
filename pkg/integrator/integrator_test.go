package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/geometry"
	"github.com/df07/pathtracer/pkg/material"
)

func TestColorAt_HitsSphere(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	world := geometry.Build([]core.Shape{sphere})

	pt := NewPathTracer(1)
	rng := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := pt.ColorAt(ray, world, rng)
	// With depth 1 the recursive call runs at depth 0 and returns black,
	// and this Diffuse has no emission, so the color comes out black;
	// the test checks that the hit path runs without panicking and
	// returns a non-negative color.
	if color.X < 0 || color.Y < 0 || color.Z < 0 {
		t.Errorf("expected non-negative color, got %v", color)
	}
}

func TestColorAt_MissReturnsSkyGradient(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	world := geometry.Build([]core.Shape{sphere, geometry.NewSphere(core.NewVec3(100, 100, 100), 0.1, material.NewDiffuse(core.NewVec3(1, 1, 1)))})

	pt := NewPathTracer(5)
	rng := rand.New(rand.NewSource(1))
	// Straight up, misses the sphere at (0,0,-1); t_blend = 0.5*(1+1) = 1.0
	// so the result is the top sky color exactly.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	color := pt.ColorAt(ray, world, rng)
	want := core.NewVec3(0.5, 0.7, 1.0)
	const tol = 1e-9
	if math.Abs(color.X-want.X) > tol || math.Abs(color.Y-want.Y) > tol || math.Abs(color.Z-want.Z) > tol {
		t.Errorf("sky color = %v, want %v", color, want)
	}
}

func TestColorAt_MissBlendsSkyGradientByRayDirection(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	world := geometry.Build([]core.Shape{sphere, geometry.NewSphere(core.NewVec3(100, 100, 100), 0.1, material.NewDiffuse(core.NewVec3(1, 1, 1)))})

	pt := NewPathTracer(5)
	rng := rand.New(rand.NewSource(1))
	// Unit direction with y=0.5 gives t_blend = 0.5*(0.5+1) = 0.75:
	// 0.25*(1,1,1) + 0.75*(0.5,0.7,1.0) = (0.625, 0.775, 1.0).
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(math.Sqrt(3)/2, 0.5, 0))

	color := pt.ColorAt(ray, world, rng)
	want := core.NewVec3(0.625, 0.775, 1.0)
	const tol = 1e-9
	if math.Abs(color.X-want.X) > tol || math.Abs(color.Y-want.Y) > tol || math.Abs(color.Z-want.Z) > tol {
		t.Errorf("sky color = %v, want %v", color, want)
	}
}

func TestColorAt_DepthZeroReturnsBlack(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	world := geometry.Build([]core.Shape{sphere})

	pt := NewPathTracer(0)
	rng := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := pt.ColorAt(ray, world, rng)
	if !color.IsZero() {
		t.Errorf("expected black at depth 0, got %v", color)
	}
}

func TestColorAt_AbsorbedRayReturnsOnlyEmission(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, &absorbingMaterial{emission: core.NewVec3(3, 3, 3)})
	world := geometry.Build([]core.Shape{sphere})

	pt := NewPathTracer(5)
	rng := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := pt.ColorAt(ray, world, rng)
	if !color.Equals(core.NewVec3(3, 3, 3)) {
		t.Errorf("expected pure emission (3,3,3), got %v", color)
	}
}

// absorbingMaterial emits light but never scatters, used to test the
// "absorbed ray" (no scatter) path in isolation.
type absorbingMaterial struct {
	emission core.Vec3
}

func (a *absorbingMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Ray, core.Vec3, core.Vec3, bool) {
	return core.Ray{}, core.Vec3{}, core.Vec3{}, false
}

func (a *absorbingMaterial) Emit() core.Vec3 {
	return a.emission
}
