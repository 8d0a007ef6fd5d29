package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
	"github.com/df07/go-raykernel/pkg/scene"
)

const testSceneYAML = `
camera:
  position: [0, 0, 5]
  direction: [0, 0, -1]
  fov_degrees: 90
  width: 8
  height: 6
background: [1, 2, 3]
primitives:
  - type: sphere
    center: [0, 0, 0]
    radius: 1.5
    color: [255, 0, 0]
  - type: plane
    position: [-1, -1, -2]
    u: [2, 0, 0]
    v: [0, 2, 0]
  - type: triangle
    vertices: [[0, 0, -3], [1, 0, -3], [0, 1, -3]]
    color: [0, 0, 255]
lights:
  - type: ambient
    intensity: 0.25
  - type: point
    position: [2, 2, 2]
    color: [255, 255, 0]
`

func TestParseSceneYAML(t *testing.T) {
	s, err := ParseSceneYAML([]byte(testSceneYAML))
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}

	if s.Camera.Width() != 8 || s.Camera.Height() != 6 {
		t.Errorf("Expected 8x6 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
	}
	if math.Abs(s.Camera.Config().FOV-math.Pi/2) > 1e-9 {
		t.Errorf("Expected FOV π/2, got %v", s.Camera.Config().FOV)
	}
	if s.Background != core.NewColor(1, 2, 3) {
		t.Errorf("Expected background (1, 2, 3), got %v", s.Background)
	}

	if len(s.Primitives) != 3 {
		t.Fatalf("Expected 3 primitives, got %d", len(s.Primitives))
	}
	sphere, ok := s.Primitives[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first primitive to be a sphere, got %T", s.Primitives[0])
	}
	if sphere.Radius != 1.5 || sphere.Albedo != core.NewColor(255, 0, 0) {
		t.Errorf("Unexpected sphere: %+v", sphere)
	}
	plane, ok := s.Primitives[1].(*geometry.FinitePlane)
	if !ok {
		t.Fatalf("Expected second primitive to be a plane, got %T", s.Primitives[1])
	}
	if plane.Albedo != core.White {
		t.Errorf("Expected default white albedo, got %v", plane.Albedo)
	}
	if _, ok := s.Primitives[2].(*geometry.Triangle); !ok {
		t.Errorf("Expected third primitive to be a triangle, got %T", s.Primitives[2])
	}

	if len(s.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(s.Lights))
	}
	ambient, ok := s.Lights[0].(*lights.Ambient)
	if !ok || ambient.Intensity != 0.25 || ambient.Color != core.White {
		t.Errorf("Unexpected ambient light: %+v", s.Lights[0])
	}
	point, ok := s.Lights[1].(*lights.Point)
	if !ok || point.Intensity != 1 || point.Origin != core.NewVec3(2, 2, 2) {
		t.Errorf("Unexpected point light: %+v", s.Lights[1])
	}
}

func TestParseSceneYAML_FOVUnits(t *testing.T) {
	degrees, err := ParseSceneYAML([]byte("camera:\n  fov_degrees: 60\n"))
	if err != nil {
		t.Fatal(err)
	}
	radians, err := ParseSceneYAML([]byte("camera:\n  fov_radians: 1.0471975511965976\n"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(degrees.Camera.Config().FOV-radians.Camera.Config().FOV) > 1e-9 {
		t.Errorf("Expected equal FOV, got %v and %v", degrees.Camera.Config().FOV, radians.Camera.Config().FOV)
	}
}

func TestParseSceneYAML_LookAt(t *testing.T) {
	s, err := ParseSceneYAML([]byte("camera:\n  position: [0, 0, 0]\n  look_at: [10, 0, 0]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Camera.Forward().NearlyEqual(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected camera facing +X, got %v", s.Camera.Forward())
	}
}

func TestParseSceneYAML_CameraDefaultsAndOverrides(t *testing.T) {
	s, err := ParseSceneYAML([]byte("primitives: []\n"), geometry.CameraConfig{Width: 16, Height: 4})
	if err != nil {
		t.Fatal(err)
	}
	defaults := geometry.DefaultCameraConfig()
	if s.Camera.Config().FOV != defaults.FOV {
		t.Errorf("Expected default FOV %v, got %v", defaults.FOV, s.Camera.Config().FOV)
	}
	if s.Camera.Width() != 16 || s.Camera.Height() != 4 {
		t.Errorf("Expected overridden 16x4, got %dx%d", s.Camera.Width(), s.Camera.Height())
	}
	if s.Background != scene.DefaultBackground {
		t.Errorf("Expected default background, got %v", s.Background)
	}
}

func TestParseSceneYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"empty document", "", "empty"},
		{"malformed", "camera: [", "invalid YAML"},
		{"unknown key", "camera:\n  zoom: 2\n", "invalid YAML"},
		{"both fov units", "camera:\n  fov_degrees: 60\n  fov_radians: 1\n", "fov_degrees"},
		{"both direction and look_at", "camera:\n  direction: [0, 0, -1]\n  look_at: [0, 0, -1]\n", "look_at"},
		{"fov out of range", "camera:\n  fov_degrees: 180\n", "camera.fov"},
		{"short vector", "primitives:\n  - type: sphere\n    center: [0, 0]\n    radius: 1\n", "primitives[0].center"},
		{"zero radius", "primitives:\n  - type: sphere\n    center: [0, 0, 0]\n    radius: 0\n", "primitives[0]"},
		{"degenerate plane", "primitives:\n  - type: plane\n    position: [0, 0, 0]\n    u: [1, 0, 0]\n    v: [2, 0, 0]\n", "primitives[0]"},
		{"triangle with two vertices", "primitives:\n  - type: triangle\n    vertices: [[0, 0, 0], [1, 0, 0]]\n", "vertices"},
		{"unknown primitive", "primitives:\n  - type: torus\n", "torus"},
		{"color out of range", "primitives:\n  - type: sphere\n    center: [0, 0, 0]\n    radius: 1\n    color: [0, 300, 0]\n", "out of range"},
		{"unknown light", "lights:\n  - type: spot\n", "spot"},
		{"point light without position", "lights:\n  - type: point\n", "lights[0].position"},
		{"negative intensity", "lights:\n  - type: ambient\n    intensity: -1\n", "intensity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseSceneYAML([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error, got scene %+v", s)
			}
			if !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error mentioning %q, got %v", tt.message, err)
			}
		})
	}
}

func TestParseSceneYAML_ReportsEveryInvalidEntry(t *testing.T) {
	yaml := "primitives:\n  - type: cube\n  - type: cone\nlights:\n  - type: area\n"
	_, err := ParseSceneYAML([]byte(yaml))
	if err == nil {
		t.Fatal("Expected error")
	}
	for _, want := range []string{"cube", "cone", "area"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %q, got %v", want, err)
		}
	}
}

func TestLoadSceneYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSceneYAML(path)
	if err != nil {
		t.Fatalf("Failed to load scene: %v", err)
	}
	if s.GetPrimitiveCount() != 3 {
		t.Errorf("Expected 3 primitives, got %d", s.GetPrimitiveCount())
	}
}

func TestLoadSceneYAML_MissingFile(t *testing.T) {
	_, err := LoadSceneYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadSceneYAML_BundledScene(t *testing.T) {
	s, err := LoadSceneYAML("../../scenes/spheres.yaml")
	if err != nil {
		t.Fatalf("Failed to load bundled scene: %v", err)
	}
	if s.GetPrimitiveCount() != 5 || len(s.Lights) != 3 {
		t.Errorf("Expected 5 primitives and 3 lights, got %d and %d", s.GetPrimitiveCount(), len(s.Lights))
	}
}
