package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function driven by a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface for volumetric scattering
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.RandomUnitVector(sampler)),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
