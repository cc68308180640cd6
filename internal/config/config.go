// Package config holds the showroom settings. Values start from the
// built-in defaults, are overlaid by an optional TOML file and finally by
// SHOWROOM_* environment variables (optionally sourced from a .env file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const envPrefix = "SHOWROOM_"

type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Render RenderConfig `toml:"render"`
	Assets AssetsConfig `toml:"assets"`
	Patch  PatchConfig  `toml:"patch"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	TargetFPS int    `toml:"target_fps"`
	// MaxPixelRatio caps the device pixel ratio used for the render target.
	MaxPixelRatio float32 `toml:"max_pixel_ratio"`
}

type CameraConfig struct {
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Position [3]float32 `toml:"position"`
}

type RenderConfig struct {
	VertexShader   string  `toml:"vertex_shader"`
	FragmentShader string  `toml:"fragment_shader"`
	SkyboxVertex   string  `toml:"skybox_vertex_shader"`
	SkyboxFragment string  `toml:"skybox_fragment_shader"`
	Exposure       float32 `toml:"exposure"`
	Background     string  `toml:"background"` // "none" or "cubemap"
}

type AssetsConfig struct {
	Root         string            `toml:"root"`
	Model        string            `toml:"model"`
	Metalness    string            `toml:"metalness"`
	Normal       string            `toml:"normal"`
	Roughness    string            `toml:"roughness"`
	Bump         string            `toml:"bump"`
	NormalRepeat float32           `toml:"normal_repeat"`
	Cubemap      [6]string         `toml:"cubemap"`
	Panoramas    map[string]string `toml:"panoramas"`
	Panorama     string            `toml:"panorama"`
	WatchModel   bool              `toml:"watch_model"`
}

type PatchConfig struct {
	Metalness float32 `toml:"metalness"`
	Roughness float32 `toml:"roughness"`
	Color     string  `toml:"color"`
	BumpNode  string  `toml:"bump_node"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Showroom",
			Width:         1280,
			Height:        720,
			TargetFPS:     60,
			MaxPixelRatio: 2,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{0, 2, 0},
		},
		Render: RenderConfig{
			VertexShader:   "assets/shaders/lighting.vs",
			FragmentShader: "assets/shaders/lighting.fs",
			SkyboxVertex:   "assets/shaders/skybox.vs",
			SkyboxFragment: "assets/shaders/skybox.fs",
			Exposure:       2.5,
			Background:     "none",
		},
		Assets: AssetsConfig{
			Root:         "static",
			Model:        "models/Car/body-test.glb",
			Metalness:    "textures/metal.png",
			Normal:       "textures/normal.png",
			Roughness:    "textures/roughness.png",
			Bump:         "textures/headlamp_bump_map.jpg",
			NormalRepeat: 10,
			Cubemap: [6]string{
				"textures/environmentMaps/0/px.jpg",
				"textures/environmentMaps/0/nx.jpg",
				"textures/environmentMaps/0/py.jpg",
				"textures/environmentMaps/0/ny.jpg",
				"textures/environmentMaps/0/pz.jpg",
				"textures/environmentMaps/0/nz.jpg",
			},
			Panoramas: map[string]string{
				"building": "textures/environmentMaps/building.hdr",
				"lake":     "textures/environmentMaps/lake.hdr",
				"overpass": "textures/environmentMaps/overpass.hdr",
			},
			Panorama: "building",
		},
		Patch: PatchConfig{
			Metalness: 0,
			Roughness: 0.1,
			Color:     "pink",
			BumpNode:  "headlight",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment. envFile, when it exists, is loaded
// into the process environment first without overriding variables that are
// already set.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load env file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat env file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"ASSETS_ROOT": &c.Assets.Root,
		"MODEL":       &c.Assets.Model,
		"PANORAMA":    &c.Assets.Panorama,
		"LOG_LEVEL":   &c.Log.Level,
		"LOG_FORMAT":  &c.Log.Format,
		"BACKGROUND":  &c.Render.Background,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(envPrefix + "EXPOSURE"); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%sEXPOSURE: %w", envPrefix, err)
		}
		c.Render.Exposure = float32(f)
	}
	if v, ok := os.LookupEnv(envPrefix + "WATCH_MODEL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sWATCH_MODEL: %w", envPrefix, err)
		}
		c.Assets.WatchModel = b
	}
	return nil
}

// Validate reports the first setting that cannot produce a working scene.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.MaxPixelRatio < 1 {
		return fmt.Errorf("max_pixel_ratio %.2f must be at least 1", c.Window.MaxPixelRatio)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera planes near=%.3f far=%.3f are invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %.1f out of range", c.Camera.FOV)
	}
	if c.Assets.Model == "" {
		return errors.New("assets.model is required")
	}
	if _, ok := c.Assets.Panoramas[c.Assets.Panorama]; !ok {
		return fmt.Errorf("unknown panorama %q", c.Assets.Panorama)
	}
	switch c.Render.Background {
	case "none", "cubemap":
	default:
		return fmt.Errorf("unknown background %q", c.Render.Background)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// PanoramaPath returns the file of the selected environment panorama.
func (a AssetsConfig) PanoramaPath() string {
	return a.Panoramas[a.Panorama]
}
