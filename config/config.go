package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the demo reads at startup.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Assets AssetsConfig `yaml:"assets"`
	Debug  bool         `yaml:"debug"`
}

// WindowConfig configures the window and its GL context.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// SceneConfig holds the constants of the hardcoded scene.
type SceneConfig struct {
	Instances        int     `yaml:"instances"`
	SpecularPower    float32 `yaml:"specular_power"`
	PointLights      int     `yaml:"point_lights"`
	LightIntensity   float32 `yaml:"light_intensity"`
	LightAttenuation float32 `yaml:"light_attenuation"`
	// LightHeight is the Y coordinate of the point light rings.
	LightHeight float32 `yaml:"light_height"`
	AutoMotion  bool    `yaml:"auto_motion"`
}

// AssetsConfig points at the two cube textures.
type AssetsConfig struct {
	Diffuse  string `yaml:"diffuse"`
	Specular string `yaml:"specular"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1800,
			Height: 900,
			Title:  "aogl",
			VSync:  true,
		},
		Scene: SceneConfig{
			Instances:        25000,
			SpecularPower:    20,
			PointLights:      30,
			LightIntensity:   4,
			LightAttenuation: 4,
			LightHeight:      -24.6,
			AutoMotion:       true,
		},
		Assets: AssetsConfig{
			Diffuse:  "assets/bricks_diffuse.png",
			Specular: "assets/bricks_specular.png",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Scene.Instances < 0 || c.Scene.Instances > math.MaxInt32:
		return fmt.Errorf("%w: instances %d", ErrInvalid, c.Scene.Instances)
	case c.Scene.PointLights < 0 || c.Scene.PointLights > math.MaxInt32:
		return fmt.Errorf("%w: point_lights %d", ErrInvalid, c.Scene.PointLights)
	case c.Scene.SpecularPower < 0:
		return fmt.Errorf("%w: specular_power %g", ErrInvalid, c.Scene.SpecularPower)
	}
	return nil
}
