package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/scene"
)

// SceneFile is the YAML representation of a scene
type SceneFile struct {
	Camera     CameraSpec      `yaml:"camera"`
	Background []int           `yaml:"background,omitempty"` // RGB 0-255, defaults to scene.DefaultBackground
	Primitives []PrimitiveSpec `yaml:"primitives"`
	Lights     []LightSpec     `yaml:"lights"`
}

// CameraSpec describes the camera. Unset fields fall back to
// geometry.DefaultCameraConfig. Exactly one of Direction and LookAt may be
// set, and exactly one of FOVDegrees and FOVRadians.
type CameraSpec struct {
	Position   []float64 `yaml:"position,omitempty"`
	Direction  []float64 `yaml:"direction,omitempty"`
	LookAt     []float64 `yaml:"look_at,omitempty"`
	Up         []float64 `yaml:"up,omitempty"`
	FOVDegrees float64   `yaml:"fov_degrees,omitempty"`
	FOVRadians float64   `yaml:"fov_radians,omitempty"`
	Width      int       `yaml:"width,omitempty"`
	Height     int       `yaml:"height,omitempty"`
}

// PrimitiveSpec describes one primitive. Type selects which fields apply:
//
//	sphere:   center, radius
//	plane:    position, u, v
//	triangle: vertices (three points)
type PrimitiveSpec struct {
	Type     string      `yaml:"type"`
	Center   []float64   `yaml:"center,omitempty"`
	Radius   float64     `yaml:"radius,omitempty"`
	Position []float64   `yaml:"position,omitempty"`
	U        []float64   `yaml:"u,omitempty"`
	V        []float64   `yaml:"v,omitempty"`
	Vertices [][]float64 `yaml:"vertices,omitempty"`
	Color    []int       `yaml:"color,omitempty"` // RGB 0-255, defaults to white
}

// LightSpec describes one light. Point lights need a position.
type LightSpec struct {
	Type      string    `yaml:"type"`
	Position  []float64 `yaml:"position,omitempty"`
	Color     []int     `yaml:"color,omitempty"`     // RGB 0-255, defaults to white
	Intensity *float64  `yaml:"intensity,omitempty"` // defaults to 1
}

// LoadSceneYAML reads a YAML scene file and builds a validated scene.
// Non-zero fields of the optional camera override replace the file's values.
func LoadSceneYAML(path string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseSceneYAML(data, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSceneYAML decodes a YAML scene description and builds it.
// Unknown keys are rejected.
func ParseSceneYAML(data []byte, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	var file SceneFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.NewConfigurationError("scene", "file is empty")
		}
		return nil, &core.ConfigurationError{Field: "scene", Reason: "invalid YAML", Err: err}
	}
	return file.Build(cameraOverrides...)
}

// Build converts the description into a validated scene. Every invalid
// entry is reported, joined into one error.
func (f *SceneFile) Build(cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	cameraConfig, err := f.Camera.config()
	if err != nil {
		return nil, err
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = scene.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := scene.New(cameraConfig)
	if err != nil {
		return nil, err
	}

	var errs []error
	if f.Background != nil {
		background, err := parseColor("background", f.Background)
		if err != nil {
			errs = append(errs, err)
		}
		s.Background = background
	}

	for i, spec := range f.Primitives {
		primitive, err := spec.build(fmt.Sprintf("primitives[%d]", i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.Add(primitive)
	}

	for i, spec := range f.Lights {
		light, err := spec.build(fmt.Sprintf("lights[%d]", i))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.AddLight(light)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (c CameraSpec) config() (geometry.CameraConfig, error) {
	config := geometry.DefaultCameraConfig()

	if c.Position != nil {
		position, err := parseVec3("camera.position", c.Position)
		if err != nil {
			return config, err
		}
		config.Position = position
	}

	switch {
	case c.Direction != nil && c.LookAt != nil:
		return config, core.NewConfigurationError("camera", "set either direction or look_at, not both")
	case c.Direction != nil:
		direction, err := parseVec3("camera.direction", c.Direction)
		if err != nil {
			return config, err
		}
		config.Direction = direction
	case c.LookAt != nil:
		target, err := parseVec3("camera.look_at", c.LookAt)
		if err != nil {
			return config, err
		}
		config.Direction = target.Subtract(config.Position)
	}

	if c.Up != nil {
		up, err := parseVec3("camera.up", c.Up)
		if err != nil {
			return config, err
		}
		config.Up = up
	}

	switch {
	case c.FOVDegrees != 0 && c.FOVRadians != 0:
		return config, core.NewConfigurationError("camera", "set either fov_degrees or fov_radians, not both")
	case c.FOVDegrees != 0:
		config.FOV = c.FOVDegrees * math.Pi / 180
	case c.FOVRadians != 0:
		config.FOV = c.FOVRadians
	}

	if c.Width != 0 {
		config.Width = c.Width
	}
	if c.Height != 0 {
		config.Height = c.Height
	}
	return config, nil
}

func (p PrimitiveSpec) build(field string) (geometry.Primitive, error) {
	albedo := core.White
	if p.Color != nil {
		var err error
		if albedo, err = parseColor(field+".color", p.Color); err != nil {
			return nil, err
		}
	}

	switch p.Type {
	case "sphere":
		center, err := parseVec3(field+".center", p.Center)
		if err != nil {
			return nil, err
		}
		sphere, err := geometry.NewColoredSphere(center, p.Radius, albedo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return sphere, nil

	case "plane":
		position, err := parseVec3(field+".position", p.Position)
		if err != nil {
			return nil, err
		}
		u, err := parseVec3(field+".u", p.U)
		if err != nil {
			return nil, err
		}
		v, err := parseVec3(field+".v", p.V)
		if err != nil {
			return nil, err
		}
		plane, err := geometry.NewColoredFinitePlane(position, u, v, albedo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return plane, nil

	case "triangle":
		if len(p.Vertices) != 3 {
			return nil, core.NewConfigurationError(field+".vertices", fmt.Sprintf("expected 3 points, got %d", len(p.Vertices)))
		}
		var vertices [3]core.Vec3
		for i, raw := range p.Vertices {
			vertex, err := parseVec3(fmt.Sprintf("%s.vertices[%d]", field, i), raw)
			if err != nil {
				return nil, err
			}
			vertices[i] = vertex
		}
		triangle, err := geometry.NewColoredTriangle(vertices[0], vertices[1], vertices[2], albedo)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return triangle, nil

	default:
		return nil, core.NewConfigurationError(field+".type", fmt.Sprintf("unknown primitive type %q", p.Type))
	}
}

func (l LightSpec) build(field string) (lights.Light, error) {
	color := core.White
	if l.Color != nil {
		var err error
		if color, err = parseColor(field+".color", l.Color); err != nil {
			return nil, err
		}
	}
	intensity := 1.0
	if l.Intensity != nil {
		intensity = *l.Intensity
	}

	switch l.Type {
	case "ambient":
		return lights.NewAmbient(color, intensity), nil
	case "point":
		position, err := parseVec3(field+".position", l.Position)
		if err != nil {
			return nil, err
		}
		return lights.NewPoint(position, color, intensity), nil
	default:
		return nil, core.NewConfigurationError(field+".type", fmt.Sprintf("unknown light type %q", l.Type))
	}
}

func parseVec3(field string, values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, core.NewConfigurationError(field, fmt.Sprintf("expected 3 components, got %d", len(values)))
	}
	v := core.NewVec3(values[0], values[1], values[2])
	if !v.IsFinite() {
		return core.Vec3{}, core.NewConfigurationError(field, "must be finite")
	}
	return v, nil
}

func parseColor(field string, values []int) (core.Color, error) {
	if len(values) != 3 {
		return core.Color{}, core.NewConfigurationError(field, fmt.Sprintf("expected 3 channels, got %d", len(values)))
	}
	var channels [3]uint8
	for i, value := range values {
		if value < 0 || value > 255 {
			return core.Color{}, core.NewConfigurationError(field, fmt.Sprintf("channel %d out of range [0, 255]: %d", i, value))
		}
		channels[i] = uint8(value)
	}
	return core.NewColor(channels[0], channels[1], channels[2]), nil
}
