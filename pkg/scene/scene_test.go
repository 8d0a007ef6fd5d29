package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/lights"
)

func TestCreateBuiltin(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"empty scene", "empty", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateBuiltin(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera == nil {
				t.Error("Expected scene camera")
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Built-in scene failed validation: %v", err)
			}
		})
	}
}

func TestListBuiltinScenes(t *testing.T) {
	scenes := ListBuiltinScenes()
	if len(scenes) != 3 {
		t.Fatalf("Expected 3 built-in scenes, got %d", len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].ID >= scenes[i].ID {
			t.Errorf("Scenes not sorted: %s before %s", scenes[i-1].ID, scenes[i].ID)
		}
	}
	for _, info := range scenes {
		if !IsBuiltin(info.ID) {
			t.Errorf("Listed scene %s is not reported as built-in", info.ID)
		}
	}
}

func TestCreateBuiltin_CameraOverrides(t *testing.T) {
	s, err := CreateBuiltin("cornell", geometry.CameraConfig{Width: 64, Height: 32})
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Width() != 64 || s.Camera.Height() != 32 {
		t.Errorf("Expected 64x32 camera, got %dx%d", s.Camera.Width(), s.Camera.Height())
	}
	// Fields left zero keep the scene's defaults
	if s.Camera.Config().Position != core.NewVec3(278, 278, -800) {
		t.Errorf("Expected default Cornell camera position, got %v", s.Camera.Config().Position)
	}
}

func TestNew_InvalidCamera(t *testing.T) {
	config := geometry.DefaultCameraConfig()
	config.Height = 0

	_, err := New(config)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestScene_Validate(t *testing.T) {
	s, err := New(geometry.DefaultCameraConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Expected empty scene to be valid, got %v", err)
	}

	s.AddLight(lights.NewAmbient(core.White, -0.5))
	s.Add(nil)
	err = s.Validate()
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}

	var nilScene *Scene
	if !errors.Is(nilScene.Validate(), core.ErrConfiguration) {
		t.Error("Expected nil scene to fail validation")
	}

	missingCamera := &Scene{}
	if !errors.Is(missingCamera.Validate(), core.ErrConfiguration) {
		t.Error("Expected scene without camera to fail validation")
	}
}

func TestNewGroundQuad_FacesUp(t *testing.T) {
	ground, err := NewGroundQuad(core.NewVec3(0, -1, 0), 10, core.White)
	if err != nil {
		t.Fatal(err)
	}
	if n := ground.NormalAt(core.NewVec3(0, -1, 0)); !n.NearlyEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected up normal, got %v", n)
	}

	ray, err := core.NewRay(core.NewVec3(4.9, 5, -4.9), core.NewVec3(0, -1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if hits := ground.Intersect(ray); len(hits) != 1 {
		t.Errorf("Expected ray near the quad edge to hit, got %v", hits)
	}
}

func TestScene_ValidateChecksPrimitives(t *testing.T) {
	s, err := New(geometry.DefaultCameraConfig())
	if err != nil {
		t.Fatal(err)
	}
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -3), 1)
	if err != nil {
		t.Fatal(err)
	}
	s.Add(sphere, &geometry.Sphere{Radius: 0}, &geometry.Triangle{})

	err = s.Validate()
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got %v", err)
	}
	for _, want := range []string{"scene.primitives[1]", "scene.primitives[2]"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
	if strings.Contains(err.Error(), "scene.primitives[0]") {
		t.Errorf("Constructed sphere should be valid, got %v", err)
	}
}
