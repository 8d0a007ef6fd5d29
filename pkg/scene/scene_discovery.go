package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-raykernel/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description" yaml:"description"`
}

type sceneFactory func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)

type builtinScene struct {
	info    SceneInfo
	factory sceneFactory
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:    SceneInfo{ID: "default", DisplayName: "Default", Description: "Spheres on a ground quad under a sky background"},
		factory: NewDefaultScene,
	},
	"cornell": {
		info:    SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Cornell box with quad walls, two spheres and a point light"},
		factory: NewCornellScene,
	},
	"empty": {
		info:    SceneInfo{ID: "empty", DisplayName: "Empty", Description: "No primitives, every pixel shows the background"},
		factory: NewEmptyScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// IsBuiltin reports whether name refers to a built-in scene
func IsBuiltin(name string) bool {
	_, ok := builtinScenes[name]
	return ok
}

// CreateBuiltin creates the named built-in scene with optional camera overrides
func CreateBuiltin(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	created, err := s.factory(cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("create scene %q: %w", name, err)
	}
	return created, nil
}
