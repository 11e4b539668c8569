package core

import "math/rand"

// RandomInUnitSphere returns a uniformly-distributed point inside the unit
// ball by rejection sampling within [-1,1]^3 until the length is under 1.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInHemisphere samples a point in the unit sphere and flips it into
// the hemisphere around n if it landed on the wrong side.
func RandomInHemisphere(n Vec3, rng *rand.Rand) Vec3 {
	p := RandomInUnitSphere(rng)
	if p.Dot(n) <= 0 {
		return p.Negate()
	}
	return p
}
