package geometry

import (
	"math/bits"

	"github.com/df07/pathtracer/pkg/core"
)

// BVHNode is an inner node of a linear BVH built over Morton codes. Leaves
// are stored as core.Shape values directly in Left/Right when a child has
// exactly one primitive; internal children are *BVHNode. The tree is
// immutable after Build returns.
type BVHNode struct {
	Bounds core.AABB
	Left   core.Hittable
	Right  core.Hittable
}

// Build constructs an immutable BVH over shapes using Morton-code spatial
// sorting (LBVH). shapes must be non-empty; the returned root is a
// core.Hittable representing the whole hierarchy (it may be a single
// core.Shape if shapes has length 1).
func Build(shapes []core.Shape) core.Hittable {
	if len(shapes) == 1 {
		return shapes[0]
	}

	bounds := sceneBounds(shapes)
	codes := make([]uint64, len(shapes))
	for i, s := range shapes {
		codes[i] = morton3D(s.Centroid(), bounds)
	}

	ordered := make([]int, len(shapes))
	for i := range ordered {
		ordered[i] = i
	}
	radixSort(ordered, codes)

	sortedShapes := make([]core.Shape, len(shapes))
	sortedCodes := make([]uint64, len(shapes))
	for i, idx := range ordered {
		sortedShapes[i] = shapes[idx]
		sortedCodes[i] = codes[idx]
	}

	return buildRange(sortedShapes, sortedCodes, 0, len(sortedShapes)-1)
}

// sceneBounds returns the union of all shape bounding boxes.
func sceneBounds(shapes []core.Shape) core.AABB {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}
	return box
}

// expandBits interleaves two zero bits before each of the low 10 bits of v,
// spreading a 10-bit value across 30 bits so three such values can be
// interleaved into a 30-bit Morton code.
// https://developer.nvidia.com/blog/thinking-parallel-part-iii-tree-construction-gpu/
func expandBits(v uint64) uint64 {
	v = (v * 0x00010001) & 0xFF0000FF
	v = (v * 0x00000101) & 0x0F00F00F
	v = (v * 0x00000011) & 0xC30C30C3
	v = (v * 0x00000005) & 0x49249249
	return v
}

// morton3D maps a centroid into the unit cube defined by bounds, quantizes
// each axis to 10 bits, and interleaves the bits into a 30-bit Morton code.
func morton3D(p core.Vec3, bounds core.AABB) uint64 {
	size := bounds.Max.Subtract(bounds.Min)
	nx := (p.X - bounds.Min.X) / size.X
	ny := (p.Y - bounds.Min.Y) / size.Y
	nz := (p.Z - bounds.Min.Z) / size.Z

	x := clampAxis(nx * 1024.0)
	y := clampAxis(ny * 1024.0)
	z := clampAxis(nz * 1024.0)

	xx := expandBits(uint64(x))
	yy := expandBits(uint64(y))
	zz := expandBits(uint64(z))
	return xx*4 + yy*2 + zz
}

func clampAxis(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1023 {
		return 1023
	}
	return v
}

// radixSort performs an LSD base-64 radix sort of order (indices into the
// original shape/code slices) by codes[order[i]], stable so ties preserve
// input order.
func radixSort(order []int, codes []uint64) {
	if len(order) == 0 {
		return
	}
	max := codes[order[0]]
	for _, idx := range order[1:] {
		if codes[idx] > max {
			max = codes[idx]
		}
	}

	buf := make([]int, len(order))
	for exp := uint64(1); max/exp > 0; exp *= 64 {
		var count [65]int
		for _, idx := range order {
			count[(codes[idx]/exp)%64+1]++
		}
		for i := 1; i <= 64; i++ {
			count[i] += count[i-1]
		}
		for _, idx := range order {
			digit := (codes[idx] / exp) % 64
			buf[count[digit]] = idx
			count[digit]++
		}
		copy(order, buf)
	}
}

// buildRange recursively builds the tree over sortedShapes[start:end+1],
// splitting by the longest common Morton-code prefix.
func buildRange(sortedShapes []core.Shape, sortedCodes []uint64, start, end int) core.Hittable {
	if start == end {
		return sortedShapes[start]
	}

	if start+1 == end {
		left := sortedShapes[start]
		right := sortedShapes[end]
		return &BVHNode{
			Bounds: left.BoundingBox().Union(right.BoundingBox()),
			Left:   left,
			Right:  right,
		}
	}

	split := binarySplit(sortedCodes, start, end)
	left := buildRange(sortedShapes, sortedCodes, start, split)
	right := buildRange(sortedShapes, sortedCodes, split+1, end)

	return &BVHNode{
		Bounds: boundsOf(left).Union(boundsOf(right)),
		Left:   left,
		Right:  right,
	}
}

// boundsOf returns the bounding box of a Hittable that is either a
// core.Shape leaf or a *BVHNode, the only two cases Build ever produces.
func boundsOf(h core.Hittable) core.AABB {
	switch v := h.(type) {
	case *BVHNode:
		return v.Bounds
	case core.Shape:
		return v.BoundingBox()
	default:
		return core.AABB{}
	}
}

// binarySplit finds the largest index in [first, last) whose Morton code
// shares a strictly longer common prefix with codes[first] than codes[last]
// does, via exponential-then-halving search. Equal end codes split at the
// midpoint.
func binarySplit(codes []uint64, first, last int) int {
	firstCode := codes[first]
	lastCode := codes[last]
	if firstCode == lastCode {
		return (first + last) >> 1
	}

	commonPrefix := bits.LeadingZeros64(firstCode ^ lastCode)

	split := first
	step := last - first
	for {
		step = (step + 1) / 2
		newSplit := split + step
		if newSplit < last {
			splitPrefix := bits.LeadingZeros64(firstCode ^ codes[newSplit])
			if splitPrefix > commonPrefix {
				split = newSplit
			}
		}
		if step <= 1 {
			break
		}
	}
	return split
}

// Hit traverses the BVH front-to-back: when both children are internal
// nodes, the nearer child is visited first and the farther child is pruned
// if the nearer hit already beats its bbox entry distance. Leaf children
// (primitives) short-circuit straight into both children, since their tight
// bounds make a separate bbox test against them wasted work.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	leftNode, leftIsNode := n.Left.(*BVHNode)
	rightNode, rightIsNode := n.Right.(*BVHNode)

	if leftIsNode && rightIsNode {
		return n.hitBothInner(ray, tMin, tMax, leftNode, rightNode)
	}

	left, leftHit := n.Left.Hit(ray, tMin, tMax)
	right, rightHit := n.Right.Hit(ray, tMin, tMax)
	return closerHit(left, leftHit, right, rightHit)
}

func (n *BVHNode) hitBothInner(ray core.Ray, tMin, tMax float64, left, right *BVHNode) (core.HitRecord, bool) {
	leftT, leftHit := left.Bounds.Hit(ray, tMin, tMax)
	rightT, rightHit := right.Bounds.Hit(ray, tMin, tMax)

	switch {
	case !leftHit && !rightHit:
		return core.HitRecord{}, false
	case leftHit && !rightHit:
		return left.Hit(ray, tMin, tMax)
	case rightHit && !leftHit:
		return right.Hit(ray, tMin, tMax)
	}

	if leftT <= rightT {
		return nearFarHit(ray, tMin, tMax, left, right, rightT)
	}
	return nearFarHit(ray, tMin, tMax, right, left, leftT)
}

// nearFarHit visits near first; if its hit beats farEntry the far subtree
// cannot contain a closer primitive, so it is skipped entirely.
func nearFarHit(ray core.Ray, tMin, tMax float64, near, far *BVHNode, farEntry float64) (core.HitRecord, bool) {
	nearRec, nearHit := near.Hit(ray, tMin, tMax)
	if nearHit && nearRec.T < farEntry {
		return nearRec, true
	}
	farRec, farHit := far.Hit(ray, tMin, tMax)
	return closerHit(nearRec, nearHit, farRec, farHit)
}

func closerHit(a core.HitRecord, aHit bool, b core.HitRecord, bHit bool) (core.HitRecord, bool) {
	switch {
	case aHit && bHit:
		if a.T <= b.T {
			return a, true
		}
		return b, true
	case aHit:
		return a, true
	case bHit:
		return b, true
	default:
		return core.HitRecord{}, false
	}
}

// BoundingBox returns the node's bounds, for callers that need the extent
// of a subtree. BVHNode has no Centroid method, so it is a core.Hittable
// but not a core.Shape.
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Bounds
}
