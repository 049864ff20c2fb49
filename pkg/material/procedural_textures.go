package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerboardImage bakes a 2D checkerboard into an image texture.
// Used as a stand-in when no image file is configured for a textured scene.
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	if checkSize <= 0 {
		checkSize = 1
	}
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugImage bakes an image whose red channel is U and green channel is V,
// with V increasing toward the top row like the sampler expects
func NewUVDebugImage(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		v := 1.0 - float64(y)/float64(max(height-1, 1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
