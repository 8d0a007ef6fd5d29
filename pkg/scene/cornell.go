package scene

import (
	"math"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
)

// NewCornellScene creates a classic Cornell box scene with quad walls and a point light under the ceiling
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Position:  core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		Direction: core.NewVec3(0, 0, 1),
		Up:        core.NewVec3(0, 1, 0),
		FOV:       40.0 * math.Pi / 180,
		Width:     400,
		Height:    400, // Square aspect ratio for Cornell box
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := New(cameraConfig)
	if err != nil {
		return nil, err
	}
	s.Background = core.Black

	white := core.NewColor(186, 186, 186)
	red := core.NewColor(166, 13, 13)
	green := core.NewColor(31, 115, 38)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	b := &sceneBuilder{scene: s}

	// Floor, ceiling and back wall (white)
	b.add(geometry.NewColoredFinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	b.add(geometry.NewColoredFinitePlane(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	b.add(geometry.NewColoredFinitePlane(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	// Left wall (red) at x=0, right wall (green) at x=boxSize
	b.add(geometry.NewColoredFinitePlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red))
	b.add(geometry.NewColoredFinitePlane(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))

	// Two spheres resting on the floor
	b.add(geometry.NewColoredSphere(core.NewVec3(185, 90, 170), 90, white))
	b.add(geometry.NewColoredSphere(core.NewVec3(370, 120, 380), 120, white))

	// A tilted triangle on the back wall
	b.add(geometry.NewColoredTriangle(
		core.NewVec3(200, 300, 550),
		core.NewVec3(350, 300, 550),
		core.NewVec3(275, 450, 540),
		core.NewColor(230, 200, 60),
	))

	s.AddLight(
		lights.NewAmbient(core.White, 0.08),
		lights.NewPoint(core.NewVec3(278, 540, 278), core.NewColor(255, 240, 220), 1.0),
	)

	return b.build()
}
