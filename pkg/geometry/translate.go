package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset without copying its geometry
type Translate struct {
	Object Shape
	Offset core.Vec3
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space and the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return t.trace(ray, tMin, tMax, TraceContext{})
}

func (t *Translate) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := Trace(t.Object, moved, tMin, tMax, ctx)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the child's box shifted by the offset
func (t *Translate) BoundingBox() (core.AABB, bool) {
	box, ok := t.Object.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}
