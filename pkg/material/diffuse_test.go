package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestDiffuse_AlwaysScatters(t *testing.T) {
	d := NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	rng := rand.New(rand.NewSource(42))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		_, _, _, ok := d.Scatter(ray, hit, rng)
		if !ok {
			t.Fatal("Diffuse should always scatter")
		}
	}
}

func TestDiffuse_AttenuationMatchesTwoAlbedoCosTheta(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	d := NewDiffuse(albedo)
	rng := rand.New(rand.NewSource(7))
	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scattered, attenuation, direct, ok := d.Scatter(ray, hit, rng)
	if !ok {
		t.Fatal("expected scatter")
	}
	if !direct.IsZero() {
		t.Errorf("Diffuse should have no direct term, got %v", direct)
	}

	cosTheta := scattered.Direction.Normalize().Dot(normal)
	want := albedo.Multiply(2 * cosTheta)
	if math.Abs(attenuation.X-want.X) > 1e-9 || math.Abs(attenuation.Y-want.Y) > 1e-9 || math.Abs(attenuation.Z-want.Z) > 1e-9 {
		t.Errorf("attenuation = %v, want %v", attenuation, want)
	}
}

func TestDiffuse_Emit(t *testing.T) {
	emission := core.NewVec3(5, 5, 5)
	d := NewDiffuseTexture(nil, emission)
	if !d.Emit().Equals(emission) {
		t.Errorf("Emit() = %v, want %v", d.Emit(), emission)
	}
}
