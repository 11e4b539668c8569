package material

import (
	"math/rand"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/texture"
)

// Metal reflects rays with an optional fuzz perturbation.
type Metal struct {
	Albedo   core.Texture
	Fuzz     float64
	Emission core.Vec3
}

// NewMetal creates a Metal material with a constant albedo and no
// emission. Fuzz is clamped to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: texture.NewSolid(albedo), Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the hit normal, perturbs it by
// Fuzz*random_in_unit_sphere, and absorbs the ray if the perturbed
// direction ends up below the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Ray, core.Vec3, core.Vec3, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.Ray{}, core.Vec3{}, core.Vec3{}, false
	}

	scattered := core.NewRay(hit.Point, reflected)
	attenuation := m.Albedo.ValueAt(hit.U, hit.V, hit.Point)
	return scattered, attenuation, core.Vec3{}, true
}

// Emit returns the material's emitted radiance.
func (m *Metal) Emit() core.Vec3 {
	return m.Emission
}
