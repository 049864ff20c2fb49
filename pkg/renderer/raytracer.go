package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidRenderConfig is returned for unusable image or sampling settings
var ErrInvalidRenderConfig = errors.New("invalid render config")

// Config contains image size, sampling and parallelism settings
type Config struct {
	Width    int
	Height   int
	Sampling core.SamplingConfig
	Workers  int   // 0 selects DefaultWorkerCount
	Seed     int64 // Worker i samples with Seed+i
}

// Raytracer renders a scene by splitting the image rows across workers.
// The world, camera and integrator are only read during a render.
type Raytracer struct {
	world        geometry.Shape
	camera       *Camera
	background   core.Vec3
	integrator   integrator.Integrator
	config       Config
	logger       core.Logger
	progressStep int64
}

// NewRaytracer creates a raytracer. The logger must be safe for concurrent use.
func NewRaytracer(world geometry.Shape, camera *Camera, background core.Vec3, integ integrator.Integrator, config Config, logger core.Logger) (*Raytracer, error) {
	switch {
	case world == nil:
		return nil, fmt.Errorf("%w: no world", ErrInvalidRenderConfig)
	case camera == nil:
		return nil, fmt.Errorf("%w: no camera", ErrInvalidRenderConfig)
	case integ == nil:
		return nil, fmt.Errorf("%w: no integrator", ErrInvalidRenderConfig)
	case config.Width <= 0 || config.Height <= 0:
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidRenderConfig, config.Width, config.Height)
	case config.Sampling.SamplesPerPixel <= 0:
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrInvalidRenderConfig, config.Sampling.SamplesPerPixel)
	}
	if config.Workers <= 0 {
		config.Workers = DefaultWorkerCount()
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &Raytracer{
		world:        world,
		camera:       camera,
		background:   background,
		integrator:   integ,
		config:       config,
		logger:       logger,
		progressStep: int64(max(1, config.Height/10)),
	}, nil
}

// Render traces every pixel and returns the tone-mapped image, top row first
func (rt *Raytracer) Render() (*image.NRGBA, RenderStats, error) {
	start := time.Now()
	ranges := PartitionRows(rt.config.Height, rt.config.Workers)
	workers := make([]*rowWorker, len(ranges))
	for i, rows := range ranges {
		workers[i] = newRowWorker(i, rows, rt.config.Width, rt.config.Seed)
	}

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (max depth %d) using %d workers...\n",
		rt.config.Width, rt.config.Height, rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth, len(workers))

	var completed atomic.Int64
	var g errgroup.Group
	for _, worker := range workers {
		worker := worker
		g.Go(func() error {
			return worker.run(rt, &completed)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	stats := RenderStats{
		Width:           rt.config.Width,
		Height:          rt.config.Height,
		Workers:         len(workers),
		SamplesPerPixel: rt.config.Sampling.SamplesPerPixel,
		TotalSamples:    int64(rt.config.Width) * int64(rt.config.Height) * int64(rt.config.Sampling.SamplesPerPixel),
	}

	// Merge buffers in row order
	for _, worker := range workers {
		for row := worker.rows.Start; row < worker.rows.End; row++ {
			offset := (row - worker.rows.Start) * rt.config.Width
			for i := 0; i < rt.config.Width; i++ {
				img.SetNRGBA(i, row, ToNRGBA(worker.pixels[offset+i]))
			}
		}
		stats.Traversal.Add(worker.stats)
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%.0f samples/s, %d BVH node tests)\n",
		stats.Duration, stats.SamplesPerSecond(), stats.Traversal.Total())
	return img, stats, nil
}

// samplePixel averages jittered samples for column i of image row (row 0 at the top)
func (rt *Raytracer) samplePixel(i, row int, sampler core.Sampler, stats *geometry.TraversalStats) core.Vec3 {
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	// Camera t grows upwards
	j := float64(rt.config.Height - 1 - row)

	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.Sampling.SamplesPerPixel; sample++ {
		s := (float64(i) + sampler.Get1D()) / width
		t := (j + sampler.Get1D()) / height

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.background, sampler, stats))
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.Sampling.SamplesPerPixel))
}

func (rt *Raytracer) reportProgress(done int64) {
	height := int64(rt.config.Height)
	if done%rt.progressStep == 0 || done == height {
		rt.logger.Printf("Rendered %d/%d rows (%d%%)\n", done, height, done*100/height)
	}
}

// ToNRGBA converts an averaged linear color to an 8-bit pixel with gamma 2.
// NaN and negative channels map to 0.
func ToNRGBA(c core.Vec3) color.NRGBA {
	c = core.NewVec3(nonNegative(c.X), nonNegative(c.Y), nonNegative(c.Z)).GammaCorrect(2).Clamp(0, 1)
	return color.NRGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return v
}

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
