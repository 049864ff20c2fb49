package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
	}
}

// cornellWalls returns the five walls of the box with a ceiling light spanning
// [x0,x1]x[z0,z1] just below the ceiling
func cornellWalls(lightX0, lightX1, lightZ0, lightZ1 float64, emission core.Vec3) []geometry.Shape {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(emission)

	return []geometry.Shape{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // right wall
		geometry.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, boxSize-1, light),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back wall
	}
}

// cornellBlocks returns the tall and short boxes, rotated and placed on the floor
func cornellBlocks(mat material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

// NewCornellScene creates a classic Cornell box with two rotated white boxes
func NewCornellScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   cornellCamera(),
		Background:     core.Vec3{}, // Only the ceiling light illuminates the box
		SamplingConfig: core.DefaultSamplingConfig().Merge(core.SamplingConfig{SamplesPerPixel: 200}),
	}

	s.Shapes = cornellWalls(213, 343, 227, 332, core.NewVec3(15, 15, 15))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Shapes = append(s.Shapes, tall, short)

	return s, nil
}

// NewCornellSmokeScene replaces the Cornell boxes with blocks of dark smoke and light fog
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   cornellCamera(),
		Background:     core.Vec3{},
		SamplingConfig: core.DefaultSamplingConfig().Merge(core.SamplingConfig{SamplesPerPixel: 200}),
	}

	s.Shapes = cornellWalls(113, 443, 127, 432, core.NewVec3(7, 7, 7))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	s.Shapes = append(s.Shapes,
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s, nil
}
