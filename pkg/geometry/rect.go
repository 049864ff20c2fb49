package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectPadding gives flat rectangles a nonzero thickness in their bounding box
const rectPadding = 1e-4

// Orientation names the axis a rectangle is perpendicular to
type Orientation int

const (
	OrientationYZ Orientation = iota // fixed X
	OrientationXZ                    // fixed Y
	OrientationXY                    // fixed Z
)

// AARect is an axis-aligned rectangle lying in the plane axis=K.
// A0..A1 and B0..B1 bound the two in-plane axes in X, Y, Z order.
type AARect struct {
	Orientation Orientation
	A0, A1      float64
	B0, B1      float64
	K           float64
	Material    material.Material
}

// NewXYRect creates a rectangle at z=k spanning [x0,x1]×[y0,y1]
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return &AARect{Orientation: OrientationXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle at y=k spanning [x0,x1]×[z0,z1]
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Orientation: OrientationXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle at x=k spanning [y0,y1]×[z0,z1]
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Orientation: OrientationYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// axes returns the fixed axis and the two in-plane axes
func (r *AARect) axes() (k, a, b int) {
	switch r.Orientation {
	case OrientationYZ:
		return 0, 1, 2
	case OrientationXZ:
		return 1, 0, 2
	default:
		return 2, 0, 1
	}
}

// Hit tests if a ray intersects with the rectangle
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	k, a, b := r.axes()

	// Division by a zero direction gives ±Inf or NaN; both fail the range test
	t := (r.K - ray.Origin.Component(k)) / ray.Direction.Component(k)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	point := ray.At(t)
	pa := point.Component(a)
	pb := point.Component(b)
	if !(pa >= r.A0 && pa <= r.A1 && pb >= r.B0 && pb <= r.B1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2((pa-r.A0)/(r.A1-r.A0), (pb-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, axisVector(k))

	return hitRecord, true
}

// BoundingBox returns the rectangle's extent padded along the fixed axis
func (r *AARect) BoundingBox() (core.AABB, bool) {
	k, a, b := r.axes()

	var min, max [3]float64
	min[k], max[k] = r.K-rectPadding, r.K+rectPadding
	min[a], max[a] = r.A0, r.A1
	min[b], max[b] = r.B0, r.B1

	return core.NewAABB(
		core.NewVec3(min[0], min[1], min[2]),
		core.NewVec3(max[0], max[1], max[2]),
	), true
}

func axisVector(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}
