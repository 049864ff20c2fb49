package renderer

import (
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int                     // Image width in pixels
	Height          int                     // Image height in pixels
	Workers         int                     // Goroutines used
	SamplesPerPixel int                     // Samples taken per pixel
	TotalSamples    int64                   // Camera rays traced
	Duration        time.Duration           // Wall-clock render time
	Traversal       geometry.TraversalStats // BVH node tests summed over workers
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}
	return total / float64(pixels)
}
