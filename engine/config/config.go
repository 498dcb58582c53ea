// Package config loads the YAML file that configures the viewer: window size, camera
// tuning, renderer limits, resource roots and any extra lights to place in the scene.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML document.
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Renderer Renderer `yaml:"renderer"`
	Paths    Paths    `yaml:"paths"`
	Lights   []Light  `yaml:"lights"`
}

// Window configures the native window.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Camera configures the perspective projection and the fly controller.
type Camera struct {
	// Fov is the vertical field of view in degrees.
	Fov           float32    `yaml:"fov"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Speed         float32    `yaml:"speed"`
	RotationSpeed float32    `yaml:"rotation_speed"`
	Position      [3]float32 `yaml:"position"`
}

// Renderer configures the frame renderer.
type Renderer struct {
	MaxLights  int        `yaml:"max_lights"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// Paths holds the resource roots. Each entry may be a directory or an http(s) URL.
type Paths struct {
	Textures string `yaml:"textures"`
	Models   string `yaml:"models"`
	Shaders  string `yaml:"shaders"`
	// Sky lists the six cube map faces in +X, -X, +Y, -Y, +Z, -Z order, relative to Textures.
	Sky []string `yaml:"sky"`
}

// Light places a point light in the scene after load.
type Light struct {
	Name string `yaml:"name"`
	// Parent names the node the light is attached to. Empty attaches it to the root.
	Parent   string     `yaml:"parent"`
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - *Config: a fully populated configuration
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "oxyview",
			Width:  1280,
			Height: 720,
		},
		Camera: Camera{
			Fov:           80,
			Near:          0.1,
			Far:           100,
			Speed:         0.05,
			RotationSpeed: 0.01,
		},
		Renderer: Renderer{
			MaxLights:  4,
			ClearColor: [4]float32{0.9, 0.9, 0.9, 1},
		},
		Paths: Paths{
			Textures: "res/textures",
			Models:   "res/models",
			Shaders:  "res/shaders",
			Sky: []string{
				"sky_map_px.png",
				"sky_map_nx.png",
				"sky_map_py.png",
				"sky_map_ny.png",
				"sky_map_pz.png",
				"sky_map_nz.png",
			},
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not an error.
//
// Parameters:
//   - path: the config file path, or empty for defaults only
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the file cannot be read, is malformed or fails validation
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later in GL calls.
//
// Returns:
//   - error: the first invalid field found
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("camera fov must be in (0, 180) degrees, got %v", c.Camera.Fov)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	case c.Renderer.MaxLights <= 0:
		return fmt.Errorf("renderer max_lights must be positive, got %d", c.Renderer.MaxLights)
	case len(c.Paths.Sky) != 0 && len(c.Paths.Sky) != 6:
		return fmt.Errorf("paths.sky needs 6 faces, got %d", len(c.Paths.Sky))
	}
	return nil
}
