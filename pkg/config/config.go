package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "RAYTRACER_"

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime parameters of a render.
// Zero values of AspectRatio, Samples and MaxDepth defer to the scene.
type Config struct {
	Scene       string  // Registered scene name
	Output      string  // Output path; empty picks output/<scene>/render_<timestamp>.ppm
	Width       int     // Image width in pixels
	AspectRatio float64 // Width / height
	Samples     int     // Samples per pixel
	MaxDepth    int     // Maximum bounces per path
	Workers     int     // Render goroutines; 0 uses every logical CPU
	Seed        int64   // Base seed for scene layout and sampling
	TexturePath string  // Image for textured scenes
	Iterative   bool    // Use the loop-based integrator
	ListScenes  bool    // Print scene names and exit
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Scene: "default",
		Width: 400,
		Seed:  42,
	}
}

// Load builds a Config from, in increasing precedence: defaults, the optional
// .env file at envFile, RAYTRACER_* environment variables, and args.
// Usage output goes to usage; flag.ErrHelp is returned for -h.
func Load(args []string, envFile string, usage io.Writer) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(usage)
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene name (see -list)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "Output file; .ppm writes plain PPM, .png/.jpg/.gif/.tif/.bmp use that format")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels")
	flags.Float64Var(&cfg.AspectRatio, "aspect", cfg.AspectRatio, "Aspect ratio width/height (0 = scene default)")
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per pixel (0 = scene default)")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Maximum ray bounces (0 = scene default)")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Render goroutines (0 = all logical CPUs)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	flags.StringVar(&cfg.TexturePath, "texture", cfg.TexturePath, "Texture image for textured scenes")
	flags.BoolVar(&cfg.Iterative, "iterative", cfg.Iterative, "Use the iterative path tracer")
	flags.BoolVar(&cfg.ListScenes, "list", cfg.ListScenes, "List available scenes and exit")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, flags.Args())
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides fields from RAYTRACER_* variables that are set
func (c *Config) applyEnv() error {
	var errs []error
	lookup := func(name string) (string, bool) {
		return os.LookupEnv(EnvPrefix + name)
	}
	parseInt := func(name string, target *int) {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*target = n
		}
	}

	if v, ok := lookup("SCENE"); ok {
		c.Scene = v
	}
	if v, ok := lookup("OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := lookup("TEXTURE"); ok {
		c.TexturePath = v
	}
	parseInt("WIDTH", &c.Width)
	parseInt("SAMPLES", &c.Samples)
	parseInt("MAX_DEPTH", &c.MaxDepth)
	parseInt("WORKERS", &c.Workers)
	if v, ok := lookup("ASPECT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sASPECT: %w", EnvPrefix, err))
		} else {
			c.AspectRatio = f
		}
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := lookup("ITERATIVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sITERATIVE: %w", EnvPrefix, err))
		} else {
			c.Iterative = b
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate rejects values no render can use
func (c Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: scene name is empty", ErrInvalidConfig)
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width)
	case c.AspectRatio < 0 || math.IsNaN(c.AspectRatio):
		return fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidConfig, c.AspectRatio)
	case c.Samples < 0:
		return fmt.Errorf("%w: samples %d must not be negative", ErrInvalidConfig, c.Samples)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Height returns the image height for the given aspect ratio, at least 1
func (c Config) Height(aspectRatio float64) int {
	return max(1, int(float64(c.Width)/aspectRatio))
}

// OutputPath returns the configured output path, or a timestamped PPM under
// output/<scene>/
func (c Config) OutputPath(now time.Time) string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join("output", c.Scene, fmt.Sprintf("render_%s.ppm", now.Format("20060102_150405")))
}
