package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the configured scene and writes the image
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, ".env", stderr)
	if err != nil {
		return err
	}

	if cfg.ListScenes {
		fmt.Fprintln(stdout, "Available scenes:")
		for _, info := range scene.List() {
			fmt.Fprintf(stdout, "  %-14s %s\n", info.Name, info.Description)
		}
		return nil
	}

	logger := log.New(stdout, "", log.LstdFlags)
	logger.Printf("Starting path tracer with scene %s...\n", cfg.Scene)

	s, err := scene.New(cfg.Scene, scene.Options{
		AspectRatio: cfg.AspectRatio,
		Random:      rand.New(rand.NewSource(cfg.Seed)),
		TexturePath: cfg.TexturePath,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	sampling := s.SamplingConfig.Merge(core.SamplingConfig{
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.MaxDepth,
	})

	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}

	rt, err := renderer.NewRaytracer(s.World, camera, s.Background, integrator.New(sampling, cfg.Iterative), renderer.Config{
		Width:    cfg.Width,
		Height:   cfg.Height(s.CameraConfig.AspectRatio),
		Sampling: sampling,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
	}, logger)
	if err != nil {
		return err
	}

	img, _, err := rt.Render()
	if err != nil {
		return err
	}

	filename := cfg.OutputPath(time.Now())
	if err := renderer.SaveImage(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s (average luminance %.3f)\n", filename, renderer.CalculateAverageLuminance(img))
	return nil
}
