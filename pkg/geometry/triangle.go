package geometry

import (
	"github.com/df07/go-raykernel/pkg/core"
)

// Triangle is the half of a parallelogram spanned from vertex A by edges B-A and C-A
type Triangle struct {
	A, B, C core.Vec3

	plane *FinitePlane
}

// NewTriangle creates a new white triangle. The three vertices must not be collinear.
func NewTriangle(a, b, c core.Vec3) (*Triangle, error) {
	return NewColoredTriangle(a, b, c, core.White)
}

// NewColoredTriangle creates a new triangle with the given surface color
func NewColoredTriangle(a, b, c core.Vec3, albedo core.Color) (*Triangle, error) {
	plane, err := NewColoredFinitePlane(a, b.Subtract(a), c.Subtract(a), albedo)
	if err != nil {
		return nil, &core.ConfigurationError{Field: "triangle.vertices", Reason: "vertices are collinear", Err: err}
	}
	return &Triangle{A: a, B: b, C: c, plane: plane}, nil
}

// validate checks that the supporting plane was built from the current vertices
func (tri *Triangle) validate() error {
	if tri.plane == nil ||
		tri.plane.Position != tri.A ||
		tri.plane.U != tri.B.Subtract(tri.A) ||
		tri.plane.V != tri.C.Subtract(tri.A) {
		return core.NewConfigurationError("triangle.vertices", "do not match the supporting plane; build triangles with NewTriangle")
	}
	if err := tri.plane.validate(); err != nil {
		return &core.ConfigurationError{Field: "triangle.vertices", Reason: "invalid supporting plane", Err: err}
	}
	return nil
}

// Intersect tests the ray against the triangle
func (tri *Triangle) Intersect(ray core.Ray) []Intersection {
	if tri.plane == nil {
		return nil
	}
	t, w1, w2, ok := tri.plane.solve(ray)
	if !ok {
		return nil
	}

	if w1 < 0 || w2 < 0 || w1+w2 > 1 {
		return nil
	}

	return []Intersection{{T: t, Point: ray.At(t)}}
}

// NormalAt returns the unit normal (B-A) × (C-A)
func (tri *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return tri.plane.NormalAt(point)
}

// SurfaceColor returns the triangle's albedo
func (tri *Triangle) SurfaceColor() core.Color {
	return tri.plane.Albedo
}

func (tri *Triangle) primitive() {}
