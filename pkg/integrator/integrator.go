package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance carried back along ray.
	// stats may be nil; when set it receives the BVH node tests of the whole path.
	RayColor(ray core.Ray, world geometry.Shape, background core.Vec3, sampler core.Sampler, stats *geometry.TraversalStats) core.Vec3
}

// New returns the integrator selected by iterative, bounded by config.MaxDepth
func New(config core.SamplingConfig, iterative bool) Integrator {
	if iterative {
		return NewIterativePathTracingIntegrator(config)
	}
	return NewPathTracingIntegrator(config)
}
