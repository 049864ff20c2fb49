package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene combines every shape, material and texture: a field of boxes,
// glass, metal, smoke, an image-mapped globe, marble noise and a rotated
// cluster of small spheres
func NewFinalScene(opts Options) (*Scene, error) {
	random := opts.Random

	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(478, 278, -600),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: 1.0,
		},
		Background:     core.Vec3{},
		SamplingConfig: core.DefaultSamplingConfig().Merge(core.SamplingConfig{SamplesPerPixel: 1000}),
	}

	// Ground of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]geometry.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			groundBoxes = append(groundBoxes,
				geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, random)
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes, groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Shapes = append(s.Shapes, geometry.NewXZRect(123, 423, 147, 412, 554, light))

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(400, 400, 200), 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
		geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5)),
	)

	// Mottled blue smoke block and a thin haze filling the whole scene
	smokeBlock := geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(-50, -50, -50), core.NewVec3(50, 50, 50), ground), 30),
		core.NewVec3(150, 320, 60),
	)
	mottled := material.NewCheckerColors(core.NewVec3(0.2, 0.4, 0.9), core.NewVec3(0.1, 0.25, 0.7))
	haze := geometry.NewBox(core.NewVec3(-5000, -5000, -5000), core.NewVec3(5000, 5000, 5000), ground)
	s.Shapes = append(s.Shapes,
		geometry.NewConstantMedium(smokeBlock, 0.2, mottled),
		geometry.NewConstantMediumColor(haze, 0.0001, core.NewVec3(1, 1, 1)),
	)

	globeTexture, err := loadTexture(opts, material.NewCheckerboardImage(256, 128, 16,
		core.NewVec3(0.1, 0.3, 0.8), core.NewVec3(0.2, 0.6, 0.2)))
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globeTexture)),
	)

	marble := material.NewNoiseTexture(material.NewScaledLatticeNoise(random, 0.1))
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marble)),
	)

	// Cluster of small white spheres
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Shape, clusterSize)
	for i := range cluster {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster[i] = geometry.NewSphere(center, 10, white)
	}
	clusterBVH, err := geometry.NewBVH(cluster, random)
	if err != nil {
		return nil, err
	}
	s.Shapes = append(s.Shapes,
		geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)),
	)

	return s, nil
}
