package core

import "math"

// AABB represents an axis-aligned bounding box with Min[k] <= Max[k] for
// every axis k.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// bounds returns the min (index 0) or max (index 1) corner, for the
// sign-indexed slab test below.
func (aabb AABB) bounds(i int) Vec3 {
	if i == 0 {
		return aabb.Min
	}
	return aabb.Max
}

// Hit tests ray/AABB intersection with the branchless sign-indexed slab
// test. For each axis k it folds t_near/t_far using ray.Sign to pick the
// near and far corner directly, instead of sorting t1/t2 per axis. Returns
// the entry distance and true iff the ray enters the box within (t0, t1).
// Zero-component directions produce infinite slab distances via InvDirection
// and fall out of the comparisons below without special-casing.
func (aabb AABB) Hit(ray Ray, t0, t1 float64) (float64, bool) {
	tMin := (aabb.bounds(ray.Sign[0]).X - ray.Origin.X) * ray.InvDirection.X
	tMax := (aabb.bounds(1-ray.Sign[0]).X - ray.Origin.X) * ray.InvDirection.X

	tyMin := (aabb.bounds(ray.Sign[1]).Y - ray.Origin.Y) * ray.InvDirection.Y
	tyMax := (aabb.bounds(1-ray.Sign[1]).Y - ray.Origin.Y) * ray.InvDirection.Y
	if tMin > tyMax || tyMin > tMax {
		return 0, false
	}
	if tyMin > tMin {
		tMin = tyMin
	}
	if tyMax < tMax {
		tMax = tyMax
	}

	tzMin := (aabb.bounds(ray.Sign[2]).Z - ray.Origin.Z) * ray.InvDirection.Z
	tzMax := (aabb.bounds(1-ray.Sign[2]).Z - ray.Origin.Z) * ray.InvDirection.Z
	if tMin > tzMax || tzMin > tMax {
		return 0, false
	}
	if tzMin > tMin {
		tMin = tzMin
	}
	if tzMax < tMax {
		tMax = tzMax
	}

	if tMin < t1 && tMax > t0 {
		return tMin, true
	}
	return 0, false
}

// Union returns an AABB that bounds both this AABB and another. Each axis
// takes the min of the two lower corners and the max of the two upper
// corners — unlike a defective variant seen in some ports, the upper corner
// here is never computed from Min.
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceHalfArea returns half the surface area of the AABB — sufficient
// for comparing relative costs since it is a monotonic function of the
// full surface area.
func (aabb AABB) SurfaceHalfArea() float64 {
	size := aabb.Size()
	return size.X*size.Y + size.Y*size.Z + size.Z*size.X
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Axis returns the [min, max] extent of the box along the given axis (0=X, 1=Y, 2=Z).
func (aabb AABB) Axis(axis int) (float64, float64) {
	switch axis {
	case 0:
		return aabb.Min.X, aabb.Max.X
	case 1:
		return aabb.Min.Y, aabb.Max.Y
	default:
		return aabb.Min.Z, aabb.Max.Z
	}
}
