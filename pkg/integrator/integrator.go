// Package integrator implements the recursive Monte Carlo path-tracing
// integrator: BVH intersection, material scattering, and the sky
// background gradient.
package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/pathtracer/pkg/core"
)

// shadowAcneEpsilon is the t_min used for world hits, large enough to
// skip self-intersections caused by floating point error at the surface
// a ray just scattered from.
const shadowAcneEpsilon = 1e-4

// skyTop and skyBottom are the fixed sky-gradient endpoints blended by
// the ray direction's y component when a ray escapes the scene.
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// PathTracer implements unidirectional, BRDF-sampling path tracing with a
// fixed recursion depth cap and no Russian roulette.
type PathTracer struct {
	MaxDepth int
	Verbose  bool
	Logger   core.Logger
}

// NewPathTracer creates a PathTracer with the given maximum bounce depth.
// Verbose logging is off by default; set Logger and Verbose to enable
// per-bounce tracing.
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// ColorAt computes the radiance along ray against world, recursing through
// material scattering up to MaxDepth bounces.
func (pt *PathTracer) ColorAt(ray core.Ray, world core.Hittable, rng *rand.Rand) core.Vec3 {
	return pt.colorAt(ray, world, pt.MaxDepth, rng)
}

func (pt *PathTracer) colorAt(ray core.Ray, world core.Hittable, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	emitted := hit.Material.Emit()

	scattered, attenuation, direct, didScatter := hit.Material.Scatter(ray, hit, rng)
	if !didScatter {
		pt.logf("depth=%d absorbed: emitted=%v\n", pt.MaxDepth-depth, emitted)
		return emitted
	}

	incoming := pt.colorAt(scattered, world, depth-1, rng)
	contribution := emitted.Add(direct).Add(attenuation.MultiplyVec(incoming))

	pt.logf("depth=%d scatter: emitted=%v direct=%v attenuation=%v incoming=%v -> %v\n",
		pt.MaxDepth-depth, emitted, direct, attenuation, incoming, contribution)

	return contribution
}

// backgroundGradient blends skyBottom (t=0) to skyTop (t=1) by the ray
// direction's vertical component.
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}

func (pt *PathTracer) logf(format string, args ...interface{}) {
	if pt.Verbose && pt.Logger != nil {
		pt.Logger.Printf(format, args...)
	}
}
