package geometry

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// FinitePlane is a parallelogram anchored at Position and spanned by edge vectors U and V
type FinitePlane struct {
	Position core.Vec3  // One corner of the parallelogram
	U        core.Vec3  // First edge vector
	V        core.Vec3  // Second edge vector
	Albedo   core.Color // Surface color

	normal     core.Vec3 // U × V, not normalized
	unitNormal core.Vec3
	uu, uv, vv float64 // Gram matrix entries for the barycentric solve
	det        float64 // uu*vv - uv*uv
}

// NewFinitePlane creates a new white parallelogram.
// U and V must be linearly independent.
func NewFinitePlane(position, u, v core.Vec3) (*FinitePlane, error) {
	return NewColoredFinitePlane(position, u, v, core.White)
}

// NewColoredFinitePlane creates a new parallelogram with the given surface color
func NewColoredFinitePlane(position, u, v core.Vec3, albedo core.Color) (*FinitePlane, error) {
	if !position.IsFinite() || !u.IsFinite() || !v.IsFinite() {
		return nil, core.NewConfigurationError("plane", "position and edges must be finite")
	}

	normal := u.Cross(v)
	unitNormal, err := normal.Normalize()
	if err != nil {
		return nil, &core.ConfigurationError{Field: "plane.basis", Reason: "edge vectors are parallel", Err: err}
	}

	uu, uv, vv := u.Dot(u), u.Dot(v), v.Dot(v)
	det := uu*vv - uv*uv
	if math.Abs(det) < core.Epsilon {
		return nil, core.NewConfigurationError("plane.basis", "edge vectors span zero area")
	}

	return &FinitePlane{
		Position:   position,
		U:          u,
		V:          v,
		Albedo:     albedo,
		normal:     normal,
		unitNormal: unitNormal,
		uu:         uu,
		uv:         uv,
		vv:         vv,
		det:        det,
	}, nil
}

// validate checks that the cached basis was built from the current U and V
func (p *FinitePlane) validate() error {
	if !p.Position.IsFinite() || !p.U.IsFinite() || !p.V.IsFinite() {
		return core.NewConfigurationError("plane", "position and edges must be finite")
	}
	if p.det == 0 || p.normal != p.U.Cross(p.V) || p.uv != p.U.Dot(p.V) {
		return core.NewConfigurationError("plane.basis", "does not match U and V; build planes with NewFinitePlane")
	}
	return nil
}

// Intersect tests the ray against the bounded plane
func (p *FinitePlane) Intersect(ray core.Ray) []Intersection {
	t, w1, w2, ok := p.solve(ray)
	if !ok {
		return nil
	}

	// Point must lie inside the parallelogram
	if w1 < 0 || w1 > 1 || w2 < 0 || w2 > 1 {
		return nil
	}

	return []Intersection{{T: t, Point: ray.At(t)}}
}

// solve intersects the ray with the infinite plane and returns the ray parameter
// and the hit's coordinates (w1, w2) in the U/V basis
func (p *FinitePlane) solve(ray core.Ray) (t, w1, w2 float64, ok bool) {
	// If denominator is close to zero, ray is parallel to the plane (no intersection)
	denominator := p.normal.Dot(ray.Direction)
	if math.Abs(denominator) < core.Epsilon*p.normal.Length() {
		return 0, 0, 0, false
	}

	t = p.normal.Dot(p.Position.Subtract(ray.Origin)) / denominator
	hitPoint := ray.At(t)
	if !validHit(t, hitPoint) {
		return 0, 0, 0, false
	}

	if math.Abs(p.det) < core.Epsilon {
		return 0, 0, 0, false
	}

	// Cramer's rule on the 2x2 Gram system
	rhs := hitPoint.Subtract(p.Position)
	uRhs := p.U.Dot(rhs)
	vRhs := p.V.Dot(rhs)
	w1 = (p.vv*uRhs - p.uv*vRhs) / p.det
	w2 = (p.uu*vRhs - p.uv*uRhs) / p.det
	if math.IsNaN(w1) || math.IsNaN(w2) {
		return 0, 0, 0, false
	}

	return t, w1, w2, true
}

// NormalAt returns the unit normal U × V (the same everywhere on the plane)
func (p *FinitePlane) NormalAt(core.Vec3) core.Vec3 {
	return p.unitNormal
}

// SurfaceColor returns the plane's albedo
func (p *FinitePlane) SurfaceColor() core.Color {
	return p.Albedo
}

func (p *FinitePlane) primitive() {}
