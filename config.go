package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/df07/go-raykernel/pkg/core"
	"github.com/df07/go-raykernel/pkg/geometry"
	"github.com/df07/go-raykernel/pkg/renderer"
)

// Config holds the render command settings after merging flags, environment
// and config file
type Config struct {
	Scene  string         `mapstructure:"scene"`
	Output string         `mapstructure:"output"`
	Width  int            `mapstructure:"width"`  // 0 keeps the scene's width
	Height int            `mapstructure:"height"` // 0 keeps the scene's height
	Quiet  bool           `mapstructure:"quiet"`
	Render RenderSettings `mapstructure:"render"`
}

// RenderSettings mirrors renderer.RenderConfig for config files
type RenderSettings struct {
	TileSize             int  `mapstructure:"tile_size"`
	Workers              int  `mapstructure:"workers"`
	Shadows              bool `mapstructure:"shadows"`
	InverseSquareFalloff bool `mapstructure:"inverse_square_falloff"`
}

// RenderConfig converts the settings for the renderer
func (rs RenderSettings) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		TileSize:             rs.TileSize,
		NumWorkers:           rs.Workers,
		Shadows:              rs.Shadows,
		InverseSquareFalloff: rs.InverseSquareFalloff,
	}
}

// CameraOverrides returns the camera fields the user asked to replace
func (c *Config) CameraOverrides() geometry.CameraConfig {
	return geometry.CameraConfig{Width: c.Width, Height: c.Height}
}

// setDefaults registers every key so environment variables can reach it
func setDefaults(v *viper.Viper) {
	defaults := renderer.DefaultRenderConfig()
	v.SetDefault("scene", "default")
	v.SetDefault("output", "")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("quiet", false)
	v.SetDefault("render.tile_size", defaults.TileSize)
	v.SetDefault("render.workers", defaults.NumWorkers)
	v.SetDefault("render.shadows", defaults.Shadows)
	v.SetDefault("render.inverse_square_falloff", defaults.InverseSquareFalloff)
}

// loadConfig unmarshals and validates the merged configuration
func loadConfig(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Scene == "" {
		return core.NewConfigurationError("scene", "is required")
	}
	if config.Width < 0 {
		return core.NewConfigurationError("width", "must not be negative")
	}
	if config.Height < 0 {
		return core.NewConfigurationError("height", "must not be negative")
	}
	if config.Render.TileSize <= 0 {
		return core.NewConfigurationError("render.tile_size", "must be positive")
	}
	if config.Render.Workers < 0 {
		return core.NewConfigurationError("render.workers", "must not be negative")
	}
	return nil
}
