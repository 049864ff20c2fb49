package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryExitEpsilon separates the entry and exit boundary searches
const boundaryExitEpsilon = 1e-4

// ConstantMedium is a volume of uniform density filling a closed boundary shape.
// Rays scatter inside it after an exponentially distributed free flight.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with an isotropic phase function of the given albedo
func NewConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1.0 / density,
	}
}

// NewConstantMediumColor creates a medium with a solid color phase function
func NewConstantMediumColor(boundary Shape, density float64, color core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(color),
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a scattering
// point between them. The result is random: repeated calls for one ray may differ.
// Hit draws from the global source; Trace with a sampler is reproducible.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.trace(ray, tMin, tMax, TraceContext{})
}

func (m *ConstantMedium) trace(ray core.Ray, tMin, tMax float64, ctx TraceContext) (*material.HitRecord, bool) {
	entry, ok := Trace(m.Boundary, ray, math.Inf(-1), math.Inf(1), ctx)
	if !ok {
		return nil, false
	}
	exit, ok := Trace(m.Boundary, ray, entry.T+boundaryExitEpsilon, math.Inf(1), ctx)
	if !ok {
		return nil, false
	}

	t1, t2 := entry.T, exit.T
	if t1 < tMin {
		t1 = tMin
	}
	if t2 > tMax {
		t2 = tMax
	}
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	// U is in [0,1) so 1-U never reaches zero
	hitDistance := m.negInvDensity * math.Log(1-ctx.random1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		UV:        core.NewVec2(0, 0),
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary
func (m *ConstantMedium) BoundingBox() (core.AABB, bool) {
	return m.Boundary.BoundingBox()
}
