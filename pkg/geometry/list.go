package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List aggregates shapes and reports the closest hit among them
type List struct {
	Objects []Shape
}

// NewList creates a list from the given shapes
func NewList(objects ...Shape) *List {
	return &List{Objects: objects}
}

// Add appends a shape; only valid while the scene is being built
func (l *List) Add(objects ...Shape) {
	l.Objects = append(l.Objects, objects...)
}

// Hit returns the closest intersection, shrinking the search interval as hits are found
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return l.trace(ray, tMin, tMax, TraceContext{})
}

func (l *List) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := Trace(object, ray, tMin, closestSoFar, ctx); isHit && hit.T <= closestSoFar {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all children's boxes.
// An empty list or any unbounded child makes the list unbounded.
func (l *List) BoundingBox() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		childBox, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = childBox
		} else {
			box = box.Union(childBox)
		}
	}
	return box, true
}
