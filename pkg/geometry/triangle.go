package geometry

import (
	"github.com/df07/pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices, with an
// optional set of per-vertex UVs. The normal is precomputed at construction
// since it does not depend on the ray.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3
	bbox          core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.computeNormal()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithUVs creates a new triangle with per-vertex UV coordinates
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	t := NewTriangle(v0, v1, v2, material)
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
	t.hasUVs = true
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Hit tests ray/triangle intersection using Möller–Trumbore.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(tHit)

	var uOut, vOut float64
	if t.hasUVs {
		w := 1.0 - u - v
		uv := t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
		uOut, vOut = uv.X, 1.0-uv.Y
	} else {
		uOut, vOut = u, v
	}

	rec := core.HitRecord{T: tHit, Point: point, Material: t.Material, U: uOut, V: vOut}
	rec.SetFaceNormal(ray, t.normal)
	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Centroid returns the triangle's vertex average, used for BVH construction.
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Multiply(1.0 / 3.0)
}

// Normal returns the triangle's precomputed face normal.
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
