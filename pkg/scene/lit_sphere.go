package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewLitSphereScene creates a white sphere of radius 2 at the origin lit only by
// an area light above it that the camera cannot see. The background is black,
// so every lit pixel belongs to the sphere.
func NewLitSphereScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(0, 0, 10),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: 1.0,
		},
		Background:     core.Vec3{},
		SamplingConfig: core.DefaultSamplingConfig(),
	}

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertian(core.NewVec3(1, 1, 1))),
		geometry.NewXZRect(-3, 3, -3, 3, 6, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	return s, nil
}
