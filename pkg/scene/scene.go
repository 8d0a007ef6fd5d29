package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
)

// DefaultBackground is returned for rays that hit nothing
var DefaultBackground = core.NewColor(30, 30, 40)

// Scene contains all the elements needed for rendering. It is built once per
// render and must not be modified while a render is in progress.
type Scene struct {
	Camera     *geometry.Camera
	Primitives []geometry.Primitive // Objects in the scene, in tie-break order
	Lights     []lights.Light       // Lights in the scene
	Background core.Color
}

// New creates an empty scene with a validated camera
func New(cameraConfig geometry.CameraConfig) (*Scene, error) {
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}
	return &Scene{
		Camera:     camera,
		Primitives: make([]geometry.Primitive, 0),
		Lights:     make([]lights.Light, 0),
		Background: DefaultBackground,
	}, nil
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(sceneLights ...lights.Light) {
	s.Lights = append(s.Lights, sceneLights...)
}

// NewGroundQuad creates a large horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, albedo core.Color) (*geometry.FinitePlane, error) {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewColoredFinitePlane(corner, u, v, albedo)
}

// Validate checks every invariant the renderer relies on. All problems are
// reported together; any of them is a configuration error.
func (s *Scene) Validate() error {
	if s == nil {
		return core.NewConfigurationError("scene", "is nil")
	}

	var errs []error
	if s.Camera == nil {
		errs = append(errs, core.NewConfigurationError("scene.camera", "is required"))
	}
	for i, primitive := range s.Primitives {
		if primitive == nil {
			errs = append(errs, core.NewConfigurationError(fmt.Sprintf("scene.primitives[%d]", i), "is nil"))
			continue
		}
		if err := geometry.Validate(primitive); err != nil {
			errs = append(errs, fmt.Errorf("scene.primitives[%d]: %w", i, err))
		}
	}
	for i, light := range s.Lights {
		if light == nil {
			errs = append(errs, core.NewConfigurationError(fmt.Sprintf("scene.lights[%d]", i), "is nil"))
			continue
		}
		if err := light.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene.lights[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// sceneBuilder collects construction errors so built-in scenes read as a flat list
type sceneBuilder struct {
	scene *Scene
	errs  []error
}

func (b *sceneBuilder) add(primitive geometry.Primitive, err error) {
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.scene.Add(primitive)
}

func (b *sceneBuilder) build() (*Scene, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	if err := b.scene.Validate(); err != nil {
		return nil, err
	}
	return b.scene, nil
}
