package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoBoundingBox is returned when an unbounded shape is placed in a BVH
var ErrNoBoundingBox = errors.New("shape has no bounding box")

// Shape interface for objects that can be hit by rays.
// Shapes are immutable after construction and safe to share between workers.
type Shape interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns false for unbounded shapes
	BoundingBox() (core.AABB, bool)
}
