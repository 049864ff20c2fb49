package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	// Create a temporary directory for test files
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	// Set pixel colors (RGBA with max value 65535 when using RGBA())
	// Top-left: white
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	// Top-right: red
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	// Bottom-left: green
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	// Bottom-right: blue
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	// Save as PNG
	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	// Load the image
	imageData, err := LoadImage(testFile, 0)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	// Verify dimensions
	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}

	// Verify pixel count
	if len(imageData.Pixels) != 4 {
		t.Errorf("Expected 4 pixels, got %d", len(imageData.Pixels))
	}

	// Helper function to check color with tolerance for precision
	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if abs(got.X-expected.X) > tolerance ||
			abs(got.Y-expected.Y) > tolerance ||
			abs(got.Z-expected.Z) > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}

	// Verify colors (row-major order)
	white := core.NewVec3(1.0, 1.0, 1.0)
	red := core.NewVec3(1.0, 0.0, 0.0)
	green := core.NewVec3(0.0, 1.0, 0.0)
	blue := core.NewVec3(0.0, 0.0, 1.0)

	checkColor("Top-left (white)", imageData.Pixels[0], white)
	checkColor("Top-right (red)", imageData.Pixels[1], red)
	checkColor("Bottom-left (green)", imageData.Pixels[2], green)
	checkColor("Bottom-right (blue)", imageData.Pixels[3], blue)
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png", 0)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestLoadImageDownscale verifies large images are shrunk to fit maxDim
func TestLoadImageDownscale(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "large.png")
	writeSolidPNG(t, testFile, 64, 32, color.RGBA{R: 255, G: 128, B: 0, A: 255})

	imageData, err := LoadImage(testFile, 16)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Width != 16 || imageData.Height != 8 {
		t.Errorf("Expected 16x8 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != imageData.Width*imageData.Height {
		t.Errorf("Expected %d pixels, got %d", imageData.Width*imageData.Height, len(imageData.Pixels))
	}

	// Smaller images are left alone
	imageData, err = LoadImage(testFile, 128)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if imageData.Width != 64 || imageData.Height != 32 {
		t.Errorf("Expected 64x32 image, got %dx%d", imageData.Width, imageData.Height)
	}
}

// TestLoadImageCorrupt verifies undecodable files are reported
func TestLoadImageCorrupt(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(testFile, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if _, err := LoadImage(testFile, 0); err == nil {
		t.Error("Expected error for corrupt file, got nil")
	}
}

func writeSolidPNG(t *testing.T, path string, width, height int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
