package geometry

import (
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere, solving
// |origin + t*dir - center|^2 = r^2 and preferring the smaller positive root.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	// Spherical UV mapping: u wraps around the equator, v runs pole to pole.
	u := 0.5 + math.Atan2(outwardNormal.X, outwardNormal.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(outwardNormal.Y)/math.Pi

	rec := core.HitRecord{T: root, Point: point, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere. A
// negative Radius is a valid way to build a sphere whose normal points
// inward (hollow shells), so the extent uses its absolute value to
// keep Min <= Max on every axis.
func (s *Sphere) BoundingBox() core.AABB {
	radius := math.Abs(s.Radius)
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Centroid returns the sphere's center, used for Morton-code BVH construction.
func (s *Sphere) Centroid() core.Vec3 {
	return s.Center
}
