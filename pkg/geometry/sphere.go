package geometry

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Albedo core.Color
}

// NewSphere creates a new white sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	return NewColoredSphere(center, radius, core.White)
}

// NewColoredSphere creates a new sphere with the given surface color
func NewColoredSphere(center core.Vec3, radius float64, albedo core.Color) (*Sphere, error) {
	s := &Sphere{
		Center: center,
		Radius: radius,
		Albedo: albedo,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sphere) validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return core.NewConfigurationError("sphere.radius", "must be a positive finite number")
	}
	if !s.Center.IsFinite() {
		return core.NewConfigurationError("sphere.center", "must be finite")
	}
	return nil
}

// Intersect tests the ray against the sphere using the geometric method.
//
// The ray origin may lie inside the sphere: the projection tc is never used to
// reject early, so in that case the negative near root is dropped and only the
// far root is reported.
func (s *Sphere) Intersect(ray core.Ray) []Intersection {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(ray.Origin)
	tc := l.Dot(ray.Direction)

	// Squared distance from the center to the ray's line
	d2 := l.Dot(l) - tc*tc
	radius2 := s.Radius * s.Radius
	if d2 > radius2 {
		return nil
	}

	// Grazing rays collapse to a single tangent hit
	if radius2-d2 <= core.TangentEpsilon*radius2 {
		return s.collect(ray, tc)
	}

	t1c := math.Sqrt(radius2 - d2)
	return s.collect(ray, tc-t1c, tc+t1c)
}

// collect keeps the finite, non-negative roots in the (already ascending) order given
func (s *Sphere) collect(ray core.Ray, roots ...float64) []Intersection {
	var hits []Intersection
	for _, t := range roots {
		point := ray.At(t)
		if validHit(t, point) {
			hits = append(hits, Intersection{T: t, Point: point})
		}
	}
	return hits
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// SurfaceColor returns the sphere's albedo
func (s *Sphere) SurfaceColor() core.Color {
	return s.Albedo
}

func (s *Sphere) primitive() {}
