package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// EncodePPM writes img as a plain-text (P3) PPM, top row first with one
// "R G B" line per pixel
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("failed to write PPM pixel: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// SaveImage writes img to path, creating parent directories. A .ppm extension
// selects the P3 encoder; other extensions (.png, .jpg, .gif, .tif, .bmp) are
// encoded by imaging.
func SaveImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if strings.ToLower(filepath.Ext(path)) != ".ppm" {
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := EncodePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
