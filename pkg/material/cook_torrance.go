package material

import (
	"math"
	"math/rand"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/texture"
)

// CookTorrance is a microfacet material combining a diffuse lobe with a
// Beckmann-style specular lobe, blended by KD.
type CookTorrance struct {
	Diffuse   core.Texture
	KD        float64 // diffuse weight in [0,1]
	Specular  core.Vec3
	Roughness float64 // Beckmann "m" parameter
	Emission  core.Vec3
}

// NewCookTorrance creates a Cook-Torrance material with constant diffuse
// color.
func NewCookTorrance(diffuse core.Vec3, kd float64, specular core.Vec3, roughness float64) *CookTorrance {
	return &CookTorrance{
		Diffuse:   texture.NewSolid(diffuse),
		KD:        kd,
		Specular:  specular,
		Roughness: roughness,
	}
}

// Scatter samples a direction w_i in the hemisphere above the hit normal,
// evaluates the Beckmann distribution D, geometric term G, and vector
// Schlick Fresnel F at the half-vector between w_i and w_o = -rayIn, and
// returns the non-recursive diffuse term separately from the specular
// throughput that multiplies the recursive contribution.
func (c *CookTorrance) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Ray, core.Vec3, core.Vec3, bool) {
	n := hit.Normal.Normalize()
	wo := rayIn.Direction.Normalize().Negate()
	wi := core.RandomInHemisphere(n, rng).Normalize()

	h := wi.Add(wo).Normalize()

	nDotH := n.Dot(h)
	nDotWo := n.Dot(wo)
	nDotWi := n.Dot(wi)
	woDotH := wo.Dot(h)
	wiDotH := wi.Dot(h)

	g := math.Min(1.0, math.Min(2*nDotH*nDotWo/woDotH, 2*nDotH*nDotWi/woDotH))

	fresnel := c.Specular.Add(
		core.NewVec3(1, 1, 1).Subtract(c.Specular).Multiply(math.Pow(1-wiDotH, 5)),
	)

	m := c.Roughness
	nDotH2 := nDotH * nDotH
	d := math.Exp((nDotH2-1)/(m*m*nDotH2)) / (math.Pi * m * m * nDotH2 * nDotH2)

	albedo := c.Diffuse.ValueAt(hit.U, hit.V, hit.Point)
	direct := albedo.Multiply(c.KD / math.Pi)

	specularScale := d * nDotWo * math.Pi / 2 * (1 - c.KD)
	attenuation := fresnel.Multiply(g * specularScale)

	scattered := core.NewRay(hit.Point, wi)
	return scattered, attenuation, direct, true
}

// Emit returns the material's emitted radiance.
func (c *CookTorrance) Emit() core.Vec3 {
	return c.Emission
}
