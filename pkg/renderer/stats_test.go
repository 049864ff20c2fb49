package renderer

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0
	// Expected average: 1.0 / 4 = 0.25
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	if avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if lum := CalculateAverageLuminance(image.NewNRGBA(image.Rect(0, 0, 0, 0))); lum != 0 {
		t.Errorf("Expected 0 for empty image, got %f", lum)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 samples/s, got %f", got)
	}
	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 for zero duration, got %f", got)
	}
}
