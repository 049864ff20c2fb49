package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a shape about the world Y axis by a fixed angle
type RotateY struct {
	Object   Shape
	Degrees  float64
	toWorld  mgl64.Mat3
	toObject mgl64.Mat3
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps object rotated by degrees about Y.
// The bounding box is computed once from the eight rotated corners of the child's box.
func NewRotateY(object Shape, degrees float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(degrees))
	r := &RotateY{
		Object:   object,
		Degrees:  degrees,
		toWorld:  toWorld,
		toObject: toWorld.Transpose(),
	}

	childBox, ok := object.BoundingBox()
	if !ok {
		return r
	}

	corners := childBox.Corners()
	rotated := make([]core.Vec3, len(corners))
	for i, corner := range corners {
		rotated[i] = transform(r.toWorld, corner)
	}
	r.box = core.NewAABBFromPoints(rotated...)
	r.hasBox = true
	return r
}

func transform(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// Hit rotates the ray into object space and the hit back into world space.
// Rotation preserves the ray/normal angle so the child's FrontFace stays valid.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return r.trace(ray, tMin, tMax, TraceContext{})
}

func (r *RotateY) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	rotated := core.NewRay(transform(r.toObject, ray.Origin), transform(r.toObject, ray.Direction))

	hit, ok := Trace(r.Object, rotated, tMin, tMax, ctx)
	if !ok {
		return nil, false
	}

	hit.Point = transform(r.toWorld, hit.Point)
	hit.Normal = transform(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the precomputed world-space box, absent if the child is unbounded
func (r *RotateY) BoundingBox() (core.AABB, bool) {
	return r.box, r.hasBox
}
