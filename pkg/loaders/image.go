package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array, row 0 at the top
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG, JPEG, GIF, BMP, TIFF or WebP image and converts it to a
// Vec3 color array in [0,1]. Images larger than maxDim on either side are
// downscaled to fit, keeping their aspect ratio; maxDim <= 0 keeps full size.
func LoadImage(filename string, maxDim int) (*ImageData, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if maxDim > 0 && (bounds.Dx() > maxDim || bounds.Dy() > maxDim) {
		img = resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Bilinear)
	}

	return FromImage(img), nil
}

// FromImage converts a decoded image to ImageData
func FromImage(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
