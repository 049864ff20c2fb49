package renderer

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestEncodePPM(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{12, 34, 56, 255})

	var buf bytes.Buffer
	if err := EncodePPM(&buf, img); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n12 34 56\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestToNRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.NRGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.NRGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.NRGBA{255, 255, 255, 255}},
		{"gamma 2", core.NewVec3(0.25, 0.0625, 0.81), color.NRGBA{127, 63, 229, 255}},
		{"overexposed clamps", core.NewVec3(4, 100, 1.0001), color.NRGBA{255, 255, 255, 255}},
		{"negative clamps", core.NewVec3(-1, -0.5, 0), color.NRGBA{0, 0, 0, 255}},
		{"NaN maps to zero", core.NewVec3(math.NaN(), 1, math.NaN()), color.NRGBA{0, 255, 0, 255}},
		{"infinity clamps", core.NewVec3(math.Inf(1), math.Inf(-1), 0), color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNRGBA(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSaveImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 80), uint8(y * 200), 7, 255})
		}
	}
	dir := t.TempDir()

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "render.ppm")
		if err := SaveImage(path, img); err != nil {
			t.Fatalf("SaveImage failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3+6 {
			t.Fatalf("Expected 9 lines, got %d", len(lines))
		}
		if lines[0] != "P3" || lines[1] != "3 2" || lines[2] != "255" {
			t.Errorf("Unexpected header %q", lines[:3])
		}
		if lines[3+5] != "160 200 7" {
			t.Errorf("Expected last pixel \"160 200 7\", got %q", lines[8])
		}
	})

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "render.png")
		if err := SaveImage(path, img); err != nil {
			t.Fatalf("SaveImage failed: %v", err)
		}
		loaded, err := imaging.Open(path)
		if err != nil {
			t.Fatalf("Failed to reopen PNG: %v", err)
		}
		if loaded.Bounds().Dx() != 3 || loaded.Bounds().Dy() != 2 {
			t.Errorf("Expected 3x2 image, got %v", loaded.Bounds())
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if err := SaveImage(filepath.Join(dir, "render.xyz"), img); err == nil {
			t.Error("Expected error for unsupported extension")
		}
	})
}
