package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/loaders"
	"github.com/df07/go-raykernel/pkg/renderer"
	"github.com/df07/go-raykernel/pkg/scene"
)

// scenesDir holds YAML scenes that can be referenced by name
const scenesDir = "scenes"

func renderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		Long: `Render a built-in scene or a YAML scene file.

The scene may be a built-in name (see "raykernel scenes"), the name of a
file in ./scenes without its .yaml extension, or a path to a YAML file.
Output defaults to output/<scene>/render_<timestamp>.png.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), config, cmd.OutOrStdout())
		},
	}

	defaults := renderer.DefaultRenderConfig()
	flags := cmd.Flags()
	flags.StringP("scene", "s", "default", "built-in scene name, scene name in ./scenes, or YAML file path")
	flags.StringP("out", "o", "", "output PNG path")
	flags.Int("width", 0, "image width in pixels (0 keeps the scene's width)")
	flags.Int("height", 0, "image height in pixels (0 keeps the scene's height)")
	flags.IntP("workers", "w", defaults.NumWorkers, "number of parallel workers (0 = CPU count)")
	flags.Int("tile-size", defaults.TileSize, "tile size in pixels")
	flags.Bool("shadows", defaults.Shadows, "cast shadow rays toward point lights")
	flags.Bool("falloff", defaults.InverseSquareFalloff, "divide point light contributions by distance squared")
	flags.BoolP("quiet", "q", false, "suppress render progress output")

	setDefaults(v)
	bindings := map[string]string{
		"scene":                         "scene",
		"output":                        "out",
		"width":                         "width",
		"height":                        "height",
		"quiet":                         "quiet",
		"render.workers":                "workers",
		"render.tile_size":              "tile-size",
		"render.shadows":                "shadows",
		"render.inverse_square_falloff": "falloff",
	}
	for key, flag := range bindings {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(flag)))
	}

	return cmd
}

// runRender builds the scene, renders it and writes the PNG
func runRender(ctx context.Context, config *Config, out io.Writer) error {
	s, err := createScene(config.Scene, config.CameraOverrides())
	if err != nil {
		return err
	}

	var logger core.Logger = renderer.NewDefaultLogger()
	if config.Quiet {
		logger = core.NopLogger{}
	}

	raytracer, err := renderer.NewRaytracer(s, config.Render.RenderConfig(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	filename := config.Output
	if filename == "" {
		filename = defaultOutputPath(config.Scene, time.Now())
	}
	if err := savePNG(filename, fb); err != nil {
		return err
	}

	fmt.Fprintf(out, "Render saved as %s\n", filename)
	fmt.Fprintf(out, "%dx%d in %v on %d workers, %.1f%% of pixels hit, luminance %.3f ± %.3f\n",
		fb.Width, fb.Height, stats.Duration.Round(time.Millisecond), stats.Workers,
		100*stats.HitRatio(), stats.MeanLuminance, stats.StdDevLuminance)
	return nil
}

// createScene resolves a scene by built-in name, by name in ./scenes, or by YAML path
func createScene(name string, cameraOverrides geometry.CameraConfig) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is required")
	}

	if scene.IsBuiltin(name) {
		return scene.CreateBuiltin(name, cameraOverrides)
	}

	if isYAMLPath(name) {
		return loaders.LoadSceneYAML(name, cameraOverrides)
	}

	candidate := filepath.Join(scenesDir, name+".yaml")
	if _, err := os.Stat(candidate); err == nil {
		return loaders.LoadSceneYAML(candidate, cameraOverrides)
	}

	return nil, fmt.Errorf("unknown scene %q: not a built-in scene or YAML file", name)
}

func isYAMLPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png, naming
// file scenes by their base name
func defaultOutputPath(sceneName string, now time.Time) string {
	base := sceneName
	if isYAMLPath(sceneName) {
		base = strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	}
	return filepath.Join("output", base, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// savePNG writes the framebuffer as a PNG, creating parent directories
func savePNG(filename string, fb *renderer.Framebuffer) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
