package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a checkered ground covered in small random spheres
// around one glass, one diffuse and one metal sphere
func NewDefaultScene(opts Options) (*Scene, error) {
	random := opts.Random

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   16.0 / 9.0,
			Aperture:      0.1,
			FocusDistance: 10.0,
		},
		Background:     core.NewVec3(0.70, 0.80, 1.00),
		SamplingConfig: core.DefaultSamplingConfig(),
	}

	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker))
	s.Shapes = append(s.Shapes, ground)

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			chooseMaterial := random.Float64()

			// Leave room around the large metal sphere
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := randomColor(random, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Shapes = append(s.Shapes, geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s, nil
}
