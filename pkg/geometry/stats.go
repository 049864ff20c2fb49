package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TraversalStats counts BVH node box tests for a single worker.
// It is not shared between goroutines; merge per-worker values afterwards.
type TraversalStats struct {
	BVHNodeHits   int64
	BVHNodeMisses int64
}

func (s *TraversalStats) recordHit() {
	if s != nil {
		s.BVHNodeHits++
	}
}

func (s *TraversalStats) recordMiss() {
	if s != nil {
		s.BVHNodeMisses++
	}
}

// Add accumulates other into s
func (s *TraversalStats) Add(other TraversalStats) {
	s.BVHNodeHits += other.BVHNodeHits
	s.BVHNodeMisses += other.BVHNodeMisses
}

// Total returns the number of node boxes tested
func (s TraversalStats) Total() int64 {
	return s.BVHNodeHits + s.BVHNodeMisses
}

// TraceContext carries one worker's state down the intersection path.
// Sampler feeds shapes whose hits are random; Stats receives node tests from
// every BVH reached, including those nested in lists and transforms.
// The zero value counts nothing and draws from the global math/rand source.
type TraceContext struct {
	Sampler core.Sampler
	Stats   *TraversalStats
}

func (ctx TraceContext) random1D() float64 {
	if ctx.Sampler != nil {
		return ctx.Sampler.Get1D()
	}
	return rand.Float64()
}

// tracer is implemented by shapes that pass a TraceContext on to their children
type tracer interface {
	trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool)
}

// Trace intersects shape like Shape.Hit using ctx for sampling and counting
func Trace(shape Shape, ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	if t, ok := shape.(tracer); ok {
		return t.trace(ray, tMin, tMax, ctx)
	}
	return shape.Hit(ray, tMin, tMax)
}
