package material

import (
	"math/rand"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestMetal_PerfectMirrorReflectsAboutNormal(t *testing.T) {
	m := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	rng := rand.New(rand.NewSource(1))

	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(1, -1, 0), core.NewVec3(1, -1, 0))

	scattered, attenuation, direct, ok := m.Scatter(ray, hit, rng)
	if !ok {
		t.Fatal("expected scatter")
	}
	if !direct.IsZero() {
		t.Errorf("Metal should have no direct term, got %v", direct)
	}

	want := core.Reflect(ray.Direction.Normalize(), normal)
	got := scattered.Direction.Normalize()
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("reflected direction = %v, want %v", got, want)
	}
	if !attenuation.Equals(core.NewVec3(0.9, 0.9, 0.9)) {
		t.Errorf("attenuation = %v, want albedo", attenuation)
	}
}

func TestMetal_AbsorbsGrazingReflection(t *testing.T) {
	// A ray exactly tangent to the surface reflects to itself
	// (dot(v,n)=0), so dot(reflected,normal)=0 and the ray is absorbed.
	m := NewMetal(core.NewVec3(1, 1, 1), 0.0)
	rng := rand.New(rand.NewSource(1))

	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	_, _, _, ok := m.Scatter(ray, hit, rng)
	if ok {
		t.Error("expected absorption for grazing reflection")
	}
}

func TestMetal_FuzzClampedToUnitRange(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("Fuzz = %f, want clamped to 1.0", m.Fuzz)
	}

	m2 := NewMetal(core.NewVec3(1, 1, 1), -5.0)
	if m2.Fuzz != 0.0 {
		t.Errorf("Fuzz = %f, want clamped to 0.0", m2.Fuzz)
	}
}
