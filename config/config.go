package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type CameraConfig struct {
	FovDegrees  float32 `toml:"fov_degrees"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	MoveSpeed   float32 `toml:"move_speed"`
	RotateSpeed float32 `toml:"rotate_speed"`
}

type LightConfig struct {
	Direction  [3]float32 `toml:"direction"`
	Distance   float32    `toml:"distance"`
	HalfExtent float32    `toml:"half_extent"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	Ambient    float32    `toml:"ambient"`
}

type ShadowConfig struct {
	MapSize int32 `toml:"map_size"`
}

type Config struct {
	Window   WindowConfig `toml:"window"`
	Camera   CameraConfig `toml:"camera"`
	Light    LightConfig  `toml:"light"`
	Shadow   ShadowConfig `toml:"shadow"`
	LogLevel string       `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Shadowbox",
			VSync:  true,
		},
		Camera: CameraConfig{
			FovDegrees:  90,
			Near:        0.1,
			Far:         100,
			MoveSpeed:   3,
			RotateSpeed: 120,
		},
		Light: LightConfig{
			Direction:  [3]float32{-0.45, 0.82, -0.4},
			Distance:   15,
			HalfExtent: 15,
			Near:       0.1,
			Far:        50,
			Ambient:    0.3,
		},
		Shadow: ShadowConfig{
			MapSize: 2048,
		},
		LogLevel: "info",
	}
}

// Load reads a TOML config file, layering it over the defaults. A
// missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera far plane (%v) must exceed near plane (%v)", c.Camera.Far, c.Camera.Near)
	}
	if c.Light.Far <= c.Light.Near {
		return fmt.Errorf("light far plane (%v) must exceed near plane (%v)", c.Light.Far, c.Light.Near)
	}
	if c.Light.Ambient < 0 || c.Light.Ambient > 1 {
		return fmt.Errorf("ambient must be in [0,1], got %v", c.Light.Ambient)
	}
	if c.Shadow.MapSize <= 0 {
		return fmt.Errorf("shadow map size must be positive, got %d", c.Shadow.MapSize)
	}
	return nil
}
