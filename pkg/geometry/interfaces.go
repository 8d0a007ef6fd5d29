package geometry

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// Intersection is a single ray/primitive crossing at ray parameter T
type Intersection struct {
	T     float64   // Ray parameter, always >= 0
	Point core.Vec3 // ray.At(T)
}

// Primitive is the closed set of shapes the tracer can hit.
//
// Intersect returns every crossing in front of the ray origin ordered by
// ascending T, or nil when the ray misses. Degenerate configurations for a
// particular ray (parallel rays, vanishing determinants, non-finite results)
// are reported as a miss, never as an error.
type Primitive interface {
	Intersect(ray core.Ray) []Intersection
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// SurfaceColor returns the albedo used for shading
	SurfaceColor() core.Color

	// validate reports a ConfigurationError when the exported fields break the
	// shape's invariants or no longer match the state cached at construction
	validate() error
	primitive()
}

// Validate checks a primitive's invariants. Primitives built with their
// constructors always pass; struct literals and later field edits may not.
func Validate(p Primitive) error {
	return p.validate()
}

// Nearest returns the closest intersection of a primitive, if any
func Nearest(p Primitive, ray core.Ray) (Intersection, bool) {
	hits := p.Intersect(ray)
	if len(hits) == 0 {
		return Intersection{}, false
	}
	return hits[0], true
}

// validHit reports whether t is a usable, finite parameter in front of the ray
func validHit(t float64, point core.Vec3) bool {
	return t >= 0 && !math.IsNaN(t) && !math.IsInf(t, 0) && point.IsFinite()
}
