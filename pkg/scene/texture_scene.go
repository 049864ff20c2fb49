package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene shows one sphere per texture kind over a noise-textured ground,
// in front of a checker-textured light panel.
// The image sphere uses opts.TexturePath, or a UV debug image when unset.
func NewTextureScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 1, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        30.0,
			AspectRatio: 16.0 / 9.0,
		},
		Background:     core.NewVec3(0.70, 0.80, 1.00),
		SamplingConfig: core.DefaultSamplingConfig(),
	}

	imageTexture, err := loadTexture(opts, material.NewUVDebugImage(256, 128))
	if err != nil {
		return nil, err
	}

	noise := material.NewNoiseTexture(material.NewLatticeNoise(opts.Random))
	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	panel := material.NewCheckerColors(core.NewVec3(3, 3, 3), core.NewVec3(0.5, 0.5, 0.5))

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 1, -2.5), 1, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewTexturedLambertian(imageTexture)),
		geometry.NewSphere(core.NewVec3(0, 1, 2.5), 1, material.NewTexturedLambertian(noise)),
		// Glowing checker panel behind the spheres
		geometry.NewYZRect(0, 4, -5, 5, -6, material.NewTexturedDiffuseLight(panel)),
	)

	return s, nil
}
