package material

import (
	"math"
	"math/rand"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/texture"
)

// Dielectric is a transparent material (glass, water) that refracts or
// reflects according to Snell's law and Schlick's Fresnel approximation.
type Dielectric struct {
	IOR      float64 // index of refraction, e.g. 1.5 for glass
	Tint     core.Texture
	Emission core.Vec3
}

// NewDielectric creates a clear (white-tinted) Dielectric material with
// the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior, Tint: texture.NewSolid(core.NewVec3(1, 1, 1))}
}

// Scatter always scatters: it either reflects or refracts depending on
// total internal reflection and Schlick reflectance, chosen by a single
// uniform sample.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, rng *rand.Rand) (core.Ray, core.Vec3, core.Vec3, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.IOR
	} else {
		refractionRatio = d.IOR
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Schlick(cosTheta, refractionRatio) > rng.Float64() {
		direction = core.Reflect(unitDir, hit.Normal)
	} else {
		direction = core.Refract(unitDir, hit.Normal, refractionRatio)
	}

	scattered := core.NewRay(hit.Point, direction)
	tint := d.Tint.ValueAt(hit.U, hit.V, hit.Point)
	return scattered, tint, core.Vec3{}, true
}

// Emit returns the material's emitted radiance.
func (d *Dielectric) Emit() core.Vec3 {
	return d.Emission
}

// Schlick approximates the Fresnel reflectance at the given cosine and
// refraction-index ratio.
func Schlick(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
