package lights

import "github.com/df07/go-raykernel/pkg/core"

type LightType string

const (
	LightTypeAmbient LightType = "ambient"
	LightTypePoint   LightType = "point"
)

// Light is the closed set of light sources: Ambient and Point
type Light interface {
	Type() LightType

	// Radiance returns the light's color scaled by its intensity, channels nominally in [0, 1]
	Radiance() core.Vec3

	// Validate reports a configuration error for negative or non-finite intensity
	Validate() error

	light()
}

// LightSample describes a point light as seen from a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Radiance  core.Vec3 // Color scaled by intensity
}
