package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Merge returns a copy of c with every positive field of override applied
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel > 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		c.MaxDepth = override.MaxDepth
	}
	return c
}
