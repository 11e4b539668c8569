// Package material implements the four BRDF variants scattering rays off a
// hit surface: Diffuse, Metal, Dielectric, and Cook-Torrance.
package material

import (
	"math/rand"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/texture"
)

// Diffuse is a Lambertian surface: it scatters uniformly into the
// hemisphere above the hit normal and weights the recursive contribution
// by 2*albedo*cos(theta). This is not energy-conserving (a true Lambertian
// BRDF would use albedo/pi with a cosine-weighted pdf that cancels the
// cosine term) but matches the reference renderer's convention.
type Diffuse struct {
	Albedo   core.Texture
	Emission core.Vec3
}

// NewDiffuse creates a Diffuse material with a constant albedo and no
// emission.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: texture.NewSolid(albedo), Emission: core.Vec3{}}
}

// NewDiffuseTexture creates a Diffuse material with a textured albedo.
func NewDiffuseTexture(albedo core.Texture, emission core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo, Emission: emission}
}

// Scatter always scatters: direction is uniform in the hemisphere around
// the hit normal, attenuation is 2*albedo*cos(theta), and there is no
// direct (non-recursive) term.
func (d *Diffuse) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Ray, core.Vec3, core.Vec3, bool) {
	scatterDir := core.RandomInHemisphere(hit.Normal, rng)
	scattered := core.NewRay(hit.Point, scatterDir)

	cosTheta := scatterDir.Normalize().Dot(hit.Normal.Normalize())
	if cosTheta < 0 {
		cosTheta = 0
	}

	albedo := d.Albedo.ValueAt(hit.U, hit.V, hit.Point)
	attenuation := albedo.Multiply(2 * cosTheta)

	return scattered, attenuation, core.Vec3{}, true
}

// Emit returns the material's emitted radiance.
func (d *Diffuse) Emit() core.Vec3 {
	return d.Emission
}
