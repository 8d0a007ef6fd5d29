package lights

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// Ambient is a positionless light added uniformly to every lit surface
type Ambient struct {
	Color     core.Color
	Intensity float64
}

// NewAmbient creates a new ambient light
func NewAmbient(color core.Color, intensity float64) *Ambient {
	return &Ambient{Color: color, Intensity: intensity}
}

func (a *Ambient) Type() LightType { return LightTypeAmbient }

// Radiance returns the ambient color scaled by intensity
func (a *Ambient) Radiance() core.Vec3 {
	return a.Color.Vec().Multiply(a.Intensity)
}

// Validate checks the intensity
func (a *Ambient) Validate() error {
	return validateIntensity("ambient.intensity", a.Intensity)
}

func (a *Ambient) light() {}

// Point is an omnidirectional light at Origin
type Point struct {
	Origin    core.Vec3
	Color     core.Color
	Intensity float64
}

// NewPoint creates a new point light
func NewPoint(origin core.Vec3, color core.Color, intensity float64) *Point {
	return &Point{Origin: origin, Color: color, Intensity: intensity}
}

func (p *Point) Type() LightType { return LightTypePoint }

// Radiance returns the light color scaled by intensity
func (p *Point) Radiance() core.Vec3 {
	return p.Color.Vec().Multiply(p.Intensity)
}

// Validate checks the intensity and position
func (p *Point) Validate() error {
	if !p.Origin.IsFinite() {
		return core.NewConfigurationError("point.origin", "must be finite")
	}
	return validateIntensity("point.intensity", p.Intensity)
}

// Sample returns the direction and distance from point to the light.
// ok is false when the shading point coincides with the light.
func (p *Point) Sample(point core.Vec3) (sample LightSample, ok bool) {
	toLight := p.Origin.Subtract(point)
	direction, err := toLight.Normalize()
	if err != nil {
		return LightSample{}, false
	}
	return LightSample{
		Direction: direction,
		Distance:  toLight.Length(),
		Radiance:  p.Radiance(),
	}, true
}

func (p *Point) light() {}

func validateIntensity(field string, intensity float64) error {
	if intensity < 0 || math.IsNaN(intensity) || math.IsInf(intensity, 0) {
		return core.NewConfigurationError(field, "must be a non-negative finite number")
	}
	return nil
}
