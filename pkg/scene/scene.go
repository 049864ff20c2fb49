package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// maxTextureSize bounds the larger side of loaded texture images
const maxTextureSize = 2048

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Shapes         []geometry.Shape      // Objects in the scene
	World          geometry.Shape        // Acceleration structure over Shapes, set by Preprocess
	CameraConfig   renderer.CameraConfig // Camera placement
	Background     core.Vec3             // Radiance of rays that escape
	SamplingConfig core.SamplingConfig
}

// Options control scene construction
type Options struct {
	AspectRatio float64     // Overrides the scene's aspect ratio when positive
	Random      *rand.Rand  // Source for scene layout, BVH axes and noise; nil uses seed 42
	TexturePath string      // Image for textured scenes; empty uses a procedural stand-in
	Logger      core.Logger // Optional
}

// Builder constructs a scene before preprocessing
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	build       Builder
}

var registry = map[string]SceneInfo{}

func register(name, description string, build Builder) {
	registry[name] = SceneInfo{Name: name, Description: description, build: build}
}

func init() {
	register("default", "Random small spheres around three large ones", NewDefaultScene)
	register("cornell", "Cornell box with two rotated boxes", NewCornellScene)
	register("cornell-smoke", "Cornell box with smoke and fog blocks", NewCornellSmokeScene)
	register("textures", "Checker, noise and image textured spheres", NewTextureScene)
	register("lit-sphere", "White sphere under an area light on black", NewLitSphereScene)
	register("final", "Every primitive, material and texture together", NewFinalScene)
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every registered scene sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		scenes = append(scenes, registry[name])
	}
	return scenes
}

// New builds and preprocesses the named scene
func New(name string, opts Options) (*Scene, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(42))
	}

	s, err := info.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	s.Name = name
	if opts.AspectRatio > 0 {
		s.CameraConfig.AspectRatio = opts.AspectRatio
	}

	if err := s.Preprocess(opts.Random); err != nil {
		return nil, fmt.Errorf("failed to preprocess scene %s: %w", name, err)
	}
	if opts.Logger != nil {
		opts.Logger.Printf("Built scene %s with %d top-level shapes\n", name, len(s.Shapes))
	}
	return s, nil
}

// Preprocess builds the BVH over the scene's shapes
func (s *Scene) Preprocess(random *rand.Rand) error {
	bvh, err := geometry.NewBVH(s.Shapes, random)
	if err != nil {
		return err
	}
	s.World = bvh
	return nil
}

// loadTexture returns the configured image texture, or fallback when no path is set
func loadTexture(opts Options, fallback material.Texture) (material.Texture, error) {
	if opts.TexturePath == "" {
		return fallback, nil
	}
	img, err := loaders.LoadImage(opts.TexturePath, maxTextureSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Printf("Loaded texture %s (%dx%d)\n", opts.TexturePath, img.Width, img.Height)
	}
	return material.NewImageTexture(img.Width, img.Height, img.Pixels), nil
}

// randomColor returns a color with each channel uniform in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(lo+span*random.Float64(), lo+span*random.Float64(), lo+span*random.Float64())
}
