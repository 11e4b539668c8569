package core

import "math/rand"

// HitRecord describes a ray/primitive intersection. Created fresh per hit
// and immutable after it is returned.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3 // Always oriented against the incoming ray
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients the stored normal against the ray direction and
// records which face was hit. outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the closed set of primitives the tracer can intersect. The set
// is small and known (Sphere, Triangle), so a sum type closed over this
// interface is preferred to open-ended dynamic dispatch.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() AABB
	Centroid() Vec3
}

// Hittable is anything a ray can be tested against — a single Shape, or an
// aggregate such as a BVH node.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}

// Texture supplies a color given surface coordinates and a world-space point.
type Texture interface {
	ValueAt(u, v float64, p Vec3) Vec3
}

// Material evaluates scattering at a hit point. Scatter returns the ray to
// continue tracing, the throughput to multiply the recursive radiance by,
// a direct (non-recursive) contribution, and whether the ray scattered at
// all — a false return means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, rng *rand.Rand) (scattered Ray, attenuation Vec3, direct Vec3, ok bool)
	Emit() Vec3
}
