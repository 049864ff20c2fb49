package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestAARect_Hit(t *testing.T) {
	tests := []struct {
		name           string
		rect           *AARect
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedUV     core.Vec2
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "XY center from front",
			rect:           NewXYRect(-1, 1, -1, 1, 0, testMaterial()),
			ray:            core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      5,
			expectedUV:     core.NewVec2(0.5, 0.5),
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "XY from behind flips normal",
			rect:           NewXYRect(-1, 1, -1, 1, 0, testMaterial()),
			ray:            core.NewRay(core.NewVec3(0.5, -0.5, -2), core.NewVec3(0, 0, 1)),
			expectHit:      true,
			expectedT:      2,
			expectedUV:     core.NewVec2(0.75, 0.25),
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedFront:  false,
		},
		{
			name:           "XZ light from below",
			rect:           NewXZRect(0, 2, 0, 4, 3, testMaterial()),
			ray:            core.NewRay(core.NewVec3(1, 0, 1), core.NewVec3(0, 1, 0)),
			expectHit:      true,
			expectedT:      3,
			expectedUV:     core.NewVec2(0.5, 0.25),
			expectedNormal: core.NewVec3(0, -1, 0),
			expectedFront:  false,
		},
		{
			name:           "YZ wall",
			rect:           NewYZRect(0, 1, 0, 1, 2, testMaterial()),
			ray:            core.NewRay(core.NewVec3(4, 0.5, 0.5), core.NewVec3(-2, 0, 0)),
			expectHit:      true,
			expectedT:      1,
			expectedUV:     core.NewVec2(0.5, 0.5),
			expectedNormal: core.NewVec3(1, 0, 0),
			expectedFront:  true,
		},
		{
			name:      "outside extent",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial()),
			ray:       core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "parallel ray",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial()),
			ray:       core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "ray in plane",
			rect:      NewXYRect(-1, 1, -1, 1, 0, testMaterial()),
			ray:       core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.rect.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected uv %v, got %v", tt.expectedUV, hit.UV)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestAARect_BoundingBoxPadded(t *testing.T) {
	rect := NewXZRect(0, 2, -1, 1, 5, testMaterial())
	box, ok := rect.BoundingBox()
	if !ok {
		t.Fatal("Expected rect to be bounded")
	}
	if box.Max.Y-box.Min.Y <= 0 {
		t.Errorf("Expected nonzero thickness along Y, got %v", box)
	}
	if box.Min.X != 0 || box.Max.X != 2 || box.Min.Z != -1 || box.Max.Z != 1 {
		t.Errorf("Expected in-plane extent [0,2]x[-1,1], got %v", box)
	}

	// A ray hitting the rect must also hit its box
	ray := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	if !box.Hit(ray, 0.001, math.Inf(1)) {
		t.Error("Expected box hit for ray crossing the rect")
	}
}

func TestBox_Hit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 2, 3), testMaterial())

	tests := []struct {
		name           string
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"front face", core.NewRay(core.NewVec3(0.5, 1, 10), core.NewVec3(0, 0, -1)), true, 7, core.NewVec3(0, 0, 1)},
		{"top face", core.NewRay(core.NewVec3(0.5, 5, 1), core.NewVec3(0, -1, 0)), true, 3, core.NewVec3(0, 1, 0)},
		{"left face", core.NewRay(core.NewVec3(-1, 1, 1), core.NewVec3(1, 0, 0)), true, 1, core.NewVec3(-1, 0, 0)},
		{"miss", core.NewRay(core.NewVec3(5, 5, 10), core.NewVec3(0, 0, -1)), false, 0, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}

	bbox, ok := box.BoundingBox()
	if !ok || bbox.Min != core.NewVec3(0, 0, 0) || bbox.Max != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected bounding box [(0,0,0),(1,2,3)], got %v (ok=%v)", bbox, ok)
	}
}
