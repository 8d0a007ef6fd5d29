package core

import (
	"fmt"
	"math"
)

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction must already be normalized;
// it is checked, never silently normalized. Camera and shadow rays are
// unit length by construction and build Ray directly; NewRay is for
// callers holding directions of unknown length.
func NewRay(origin, direction Vec3) (Ray, error) {
	if math.Abs(direction.Length()-1) > UnitTolerance {
		return Ray{}, fmt.Errorf("ray direction %v is not unit length: %w", direction, ErrDegenerateVector)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// RayTowards creates a ray from origin pointing at target
func RayTowards(origin, target Vec3) (Ray, error) {
	direction, err := target.Subtract(origin).Normalize()
	if err != nil {
		return Ray{}, fmt.Errorf("ray towards %v: %w", target, err)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
