package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Only the nearer root is considered: when it falls outside [tMin, tMax] the
// ray misses, even if the farther root would be in range.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic with b = 2*halfB
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	root := (-halfB - math.Sqrt(discriminant)) / a
	if !(root >= tMin && root <= tMax) {
		return nil, false
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    point,
		UV:       sphereUV(outwardNormal),
		Material: s.Material,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// theta is measured up from -Y, phi around Y starting at -X.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	// A negative radius flips the normals but not the extent
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}
