package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations are immutable once built and shared across shapes and workers.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when the
	// ray is absorbed or the surface only emits
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	UV        core.Vec2 // Surface coordinates in [0,1]², origin bottom-left
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedLight returns the light emitted by m, or black for non-emitters
func EmittedLight(m Material, uv core.Vec2, point core.Vec3) core.Vec3 {
	if emitter, isEmissive := m.(Emitter); isEmissive {
		return emitter.Emitted(uv, point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
