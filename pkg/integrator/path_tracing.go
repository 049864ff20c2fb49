package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowAcneEpsilon is the smallest t accepted for a hit, so scattered rays do
// not re-hit the surface they left
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing by recursion
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, sampler core.Sampler, stats *geometry.TraversalStats) core.Vec3 {
	return Radiance(ray, world, background, pt.config.MaxDepth, sampler, stats)
}

// Radiance returns emitted light at the first hit plus the attenuated radiance
// of the scattered ray, recursing until bouncesLeft is exhausted.
// Rays that escape the scene return the background color.
func Radiance(ray core.Ray, world geometry.Shape, background core.Vec3, bouncesLeft int, sampler core.Sampler, stats *geometry.TraversalStats) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if bouncesLeft <= 0 {
		return core.Vec3{}
	}

	ctx := geometry.TraceContext{Sampler: sampler, Stats: stats}
	hit, isHit := geometry.Trace(world, ray, ShadowAcneEpsilon, math.Inf(1), ctx)
	if !isHit {
		return background
	}

	emitted := material.EmittedLight(hit.Material, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := Radiance(scatter.Scattered, world, background, bouncesLeft-1, sampler, stats)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// IterativePathTracingIntegrator follows the same path as PathTracingIntegrator
// in a loop, accumulating throughput instead of unwinding a call stack
type IterativePathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewIterativePathTracingIntegrator creates a loop-based path tracing integrator
func NewIterativePathTracingIntegrator(config core.SamplingConfig) *IterativePathTracingIntegrator {
	return &IterativePathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray. Random numbers are drawn in the
// same order as the recursive integrator, so a shared seed gives the same estimate.
func (it *IterativePathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, sampler core.Sampler, stats *geometry.TraversalStats) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	ctx := geometry.TraceContext{Sampler: sampler, Stats: stats}

	for bounces := it.config.MaxDepth; bounces > 0; bounces-- {
		hit, isHit := geometry.Trace(world, ray, ShadowAcneEpsilon, math.Inf(1), ctx)
		if !isHit {
			return color.Add(throughput.MultiplyVec(background))
		}

		emitted := material.EmittedLight(hit.Material, hit.UV, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}
