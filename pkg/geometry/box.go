package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is a closed axis-aligned box made of six rectangles.
// Rotate or move it by wrapping it in RotateY or Translate.
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *List
}

// NewBox creates a box spanning the min and max corners
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat), // front
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat), // back
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat), // top
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat), // bottom
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat), // right
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat), // left
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

func (b *Box) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	return b.sides.trace(ray, tMin, tMax, ctx)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
