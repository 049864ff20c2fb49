package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a light with a constant emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies with a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface; lights absorb every incoming ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (d *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return d.Emit.Evaluate(uv, point)
}
