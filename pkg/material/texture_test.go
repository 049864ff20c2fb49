package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.1, 0.2, 0.3)
	texture := NewSolidColor(color)

	for _, point := range []core.Vec3{{}, core.NewVec3(10, -3, 2)} {
		if got := texture.Evaluate(core.NewVec2(0.3, 0.9), point); got != color {
			t.Errorf("Expected %v at %v, got %v", color, point, got)
		}
	}
}

func TestCheckerTexture(t *testing.T) {
	odd := core.NewVec3(1, 1, 1)
	even := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"all sines positive", core.NewVec3(0.1, 0.1, 0.1), odd},
		{"one sine negative", core.NewVec3(-0.1, 0.1, 0.1), even},
		{"two sines negative", core.NewVec3(-0.1, -0.1, 0.1), odd},
		{"on a zero plane", core.NewVec3(0, 0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// UV must not influence a 3D checker
			for _, uv := range []core.Vec2{{}, core.NewVec2(0.7, 0.2)} {
				if got := checker.Evaluate(uv, tt.point); got != tt.expected {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestLatticeNoise_HashCombination(t *testing.T) {
	noise := NewLatticeNoise(rand.New(rand.NewSource(42)))

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1.3, -2.7, 0.4),
		core.NewVec3(-100.2, 55.5, 1000.9),
	}
	for _, p := range points {
		ix := int(noise.Scale*math.Abs(p.X)) % latticeSize
		iy := int(noise.Scale*math.Abs(p.Y)) % latticeSize
		iz := int(noise.Scale*math.Abs(p.Z)) % latticeSize
		expected := noise.values[noise.permX[ix]^noise.permY[iy]^noise.permZ[iz]]

		if got := noise.Value(p); got != expected {
			t.Errorf("Point %v: expected %f, got %f", p, expected, got)
		}
	}
}

func TestLatticeNoise_TablesArePermutations(t *testing.T) {
	noise := NewLatticeNoise(rand.New(rand.NewSource(1)))

	for name, perm := range map[string][latticeSize]int{"x": noise.permX, "y": noise.permY, "z": noise.permZ} {
		seen := make(map[int]bool)
		for _, v := range perm {
			if v < 0 || v >= latticeSize || seen[v] {
				t.Fatalf("perm%s is not a permutation of [0,%d)", name, latticeSize)
			}
			seen[v] = true
		}
	}
}

func TestLatticeNoise_DeterministicAndBounded(t *testing.T) {
	a := NewLatticeNoise(rand.New(rand.NewSource(9)))
	b := NewLatticeNoise(rand.New(rand.NewSource(9)))
	random := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		p := core.NewVec3(random.Float64()*200-100, random.Float64()*200-100, random.Float64()*200-100)
		va := a.Value(p)
		if va != b.Value(p) {
			t.Fatalf("Equal seeds should give equal noise at %v", p)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Noise value %f out of [0,1)", va)
		}
	}

	// Same lattice cell, same value
	if a.Value(core.NewVec3(0.01, 0.01, 0.01)) != a.Value(core.NewVec3(0.2, 0.2, 0.2)) {
		t.Error("Points inside one lattice cell should share a value")
	}
	// Absolute value makes the field symmetric about each axis
	if a.Value(core.NewVec3(1.1, 2.2, 3.3)) != a.Value(core.NewVec3(-1.1, -2.2, -3.3)) {
		t.Error("Noise should be symmetric under coordinate negation")
	}
}

func TestNoiseTexture_IsGrayscale(t *testing.T) {
	texture := NewNoiseTexture(NewLatticeNoise(rand.New(rand.NewSource(2))))
	c := texture.Evaluate(core.Vec2{}, core.NewVec3(3.3, 1.2, -0.7))
	if c.X != c.Y || c.Y != c.Z {
		t.Errorf("Expected grayscale color, got %v", c)
	}
}

func TestImageTexture_NearestPixelWithFlippedV(t *testing.T) {
	// Layout (row 0 is the top of the image):
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{
		white, black,
		black, white,
	})

	tests := []struct {
		uv       core.Vec2
		expected core.Vec3
	}{
		{core.NewVec2(0.1, 0.1), black}, // bottom-left
		{core.NewVec2(0.9, 0.1), white}, // bottom-right
		{core.NewVec2(0.1, 0.9), white}, // top-left
		{core.NewVec2(0.9, 0.9), black}, // top-right
	}

	for _, tt := range tests {
		if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
			t.Errorf("UV %v: expected %v, got %v", tt.uv, tt.expected, got)
		}
	}
}

func TestImageTexture_ClampsOutOfRangeUV(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 0),
	}
	texture := NewImageTexture(2, 2, pixels)

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"below range", core.NewVec2(-3, -3), pixels[2]},
		{"above range", core.NewVec2(4, 4), pixels[1]},
		{"exactly one", core.NewVec2(1, 1), pixels[1]},
		{"NaN", core.NewVec2(math.NaN(), math.NaN()), pixels[2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_Empty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(1, 0, 1) {
		t.Errorf("Expected magenta for empty texture, got %v", got)
	}
}

func TestProceduralImages(t *testing.T) {
	checker := NewCheckerboardImage(4, 4, 2, core.NewVec3(1, 1, 1), core.Vec3{})
	if checker.Pixels[0] != core.NewVec3(1, 1, 1) || checker.Pixels[2] != (core.Vec3{}) {
		t.Errorf("Unexpected checkerboard row: %v", checker.Pixels[:4])
	}

	uv := NewUVDebugImage(8, 8)
	// Sampling the debug image should roughly return the UV coordinate
	got := uv.Evaluate(core.NewVec2(0.75, 0.25), core.Vec3{})
	if math.Abs(got.X-0.75) > 0.15 || math.Abs(got.Y-0.25) > 0.15 {
		t.Errorf("Expected color near (0.75, 0.25), got %v", got)
	}
}
