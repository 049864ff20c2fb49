package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		// Magenta marks a texture without data
		return core.NewVec3(1, 0, 1)
	}

	u := clampUV(uv.X)
	v := clampUV(uv.Y)

	// V=0 is bottom, image row 0 is top
	x := int(u * float64(t.Width))
	y := int((0.999 - v) * float64(t.Height))

	return t.Pixels[y*t.Width+x]
}

func clampUV(value float64) float64 {
	if !(value > 0) {
		return 0
	}
	if value > 0.999 {
		return 0.999
	}
	return value
}
