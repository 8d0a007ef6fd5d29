package geometry

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
)

// CameraConfig contains all parameters for creating a camera
type CameraConfig struct {
	Position  core.Vec3 // Eye position
	Direction core.Vec3 // Facing direction, normalized by NewCamera
	Up        core.Vec3 // Optional up hint, defaults to +Y
	FOV       float64   // Field of view in radians, 0 < FOV < π
	Width     int       // Image width in pixels
	Height    int       // Image height in pixels
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:  core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0, -1),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       math.Pi / 3,
		Width:     400,
		Height:    225,
	}
}

// Camera generates one primary ray per pixel. It is immutable after
// construction and safe for concurrent use.
type Camera struct {
	config CameraConfig

	forward core.Vec3 // unit facing direction
	right   core.Vec3 // unit camera +X in world space
	up      core.Vec3 // unit camera +Y in world space

	aspect   float64
	fovScale float64 // tan(FOV/2)
}

// NewCamera validates the configuration and precomputes the camera basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, core.NewConfigurationError("camera.width", "must be positive")
	}
	if config.Height <= 0 {
		return nil, core.NewConfigurationError("camera.height", "must be positive")
	}
	if !(config.FOV > 0 && config.FOV < math.Pi) {
		return nil, core.NewConfigurationError("camera.fov", "must be in (0, π) radians")
	}
	if !config.Position.IsFinite() {
		return nil, core.NewConfigurationError("camera.position", "must be finite")
	}

	forward, err := config.Direction.Normalize()
	if err != nil {
		return nil, &core.ConfigurationError{Field: "camera.direction", Reason: "cannot be normalized", Err: err}
	}
	config.Direction = forward

	right, up := cameraBasis(forward, config.Up)

	return &Camera{
		config:   config,
		forward:  forward,
		right:    right,
		up:       up,
		aspect:   float64(config.Width) / float64(config.Height),
		fovScale: math.Tan(config.FOV / 2),
	}, nil
}

// cameraBasis builds right and up vectors orthogonal to forward. When the up
// hint is missing or parallel to forward, the world axis least aligned with
// forward is used instead.
func cameraBasis(forward, upHint core.Vec3) (right, up core.Vec3) {
	candidates := []core.Vec3{upHint, core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)}
	for _, candidate := range candidates {
		r, err := forward.Cross(candidate).Normalize()
		if err != nil || math.Abs(forward.Dot(candidate)) > (1-1e-9)*candidate.Length() {
			continue
		}
		return r, r.Cross(forward)
	}
	// Unreachable for a unit forward vector: it cannot be parallel to both +Y and +Z
	return core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)
}

// GetRay returns the primary ray through the center of pixel (px, py).
// Pixel (0, 0) is the top-left corner of the image. Coordinates outside
// [0, Width) x [0, Height) are the caller's responsibility.
func (c *Camera) GetRay(px, py int) core.Ray {
	width := float64(c.config.Width)
	height := float64(c.config.Height)

	// Pixel center in normalized device coordinates
	ndcX := (float64(px) + 0.5) / width
	ndcY := (float64(py) + 0.5) / height

	// Screen space in [-1, 1], +Y up
	screenX := 2*ndcX - 1
	screenY := 1 - 2*ndcY

	// Camera space, scaled by the field of view
	camX := screenX * c.aspect * c.fovScale
	camY := screenY * c.fovScale

	// Camera-local (camX, camY, -1) in world space; forward is camera -Z
	direction := c.right.Multiply(camX).
		Add(c.up.Multiply(camY)).
		Add(c.forward)

	// Length is at least 1 because the forward component is a unit vector
	direction = direction.Multiply(1 / direction.Length())

	return core.Ray{Origin: c.config.Position, Direction: direction}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.config.Height }

// Position returns the eye position
func (c *Camera) Position() core.Vec3 { return c.config.Position }

// Forward returns the unit facing direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// Config returns the validated configuration with a normalized direction
func (c *Camera) Config() CameraConfig { return c.config }
