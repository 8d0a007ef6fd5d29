package scene

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Position:  core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		Direction: core.NewVec3(0, -0.25, -3),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       40.0 * math.Pi / 180,
		Width:     400,
		Height:    225, // 16:9 aspect ratio
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := New(cameraConfig)
	if err != nil {
		return nil, err
	}
	s.Background = core.NewColor(128, 178, 255) // Sky blue

	b := &sceneBuilder{scene: s}
	b.add(geometry.NewColoredSphere(core.NewVec3(0, 0.5, -1), 0.5, core.NewColor(166, 64, 51)))
	b.add(geometry.NewColoredSphere(core.NewVec3(-1, 0.5, -1), 0.5, core.NewColor(204, 204, 204)))
	b.add(geometry.NewColoredSphere(core.NewVec3(1, 0.5, -1), 0.5, core.NewColor(204, 153, 51)))
	b.add(geometry.NewColoredSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, core.NewColor(26, 51, 128)))
	b.add(NewGroundQuad(core.NewVec3(0, 0, 0), 100.0, core.NewColor(122, 122, 0)))

	s.AddLight(
		lights.NewAmbient(core.White, 0.15),
		lights.NewPoint(core.NewVec3(5, 8, 4), core.NewColor(255, 245, 230), 0.9),
		lights.NewPoint(core.NewVec3(-6, 4, 2), core.NewColor(180, 200, 255), 0.3),
	)

	return b.build()
}

// NewEmptyScene creates a scene with a camera and lights but nothing to hit
func NewEmptyScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := New(cameraConfig)
	if err != nil {
		return nil, err
	}
	s.AddLight(lights.NewAmbient(core.White, 1.0))
	return s, s.Validate()
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override geometry.CameraConfig) geometry.CameraConfig {
	result := base
	if override.Position != (core.Vec3{}) {
		result.Position = override.Position
	}
	if override.Direction != (core.Vec3{}) {
		result.Direction = override.Direction
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}
