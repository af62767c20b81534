// Package config loads the riot application configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// the .env files it lists, then the process environment. Environment keys
// use the RIOT_ prefix, e.g. RIOT_DEVICE=opengl.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/andewx/riot/device"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RIOT_"

// Config describes a riot run.
type Config struct {
	// Title is the window title.
	Title string `yaml:"title" env:"TITLE"`
	// Width and Height size the window in screen coordinates.
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
	// Windowed selects a window over a fullscreen surface.
	Windowed bool `yaml:"windowed" env:"WINDOWED"`
	// Device names the graphics backend: null or opengl.
	Device string `yaml:"device" env:"DEVICE"`
	// FallbackToNull keeps the game loop running on the Null device when the
	// requested backend cannot be created.
	FallbackToNull bool `yaml:"fallbackToNull" env:"FALLBACK_TO_NULL"`
	// ClearColor is RGBA in [0, 1].
	ClearColor []float32 `yaml:"clearColor,flow" env:"CLEAR_COLOR" envSeparator:","`
	ClearDepth float32   `yaml:"clearDepth" env:"CLEAR_DEPTH"`
	// Frames bounds the game loop. Zero runs until the window closes.
	Frames int `yaml:"frames" env:"FRAMES"`
	// VertexShader and PixelShader are optional GLSL source files compiled
	// at startup.
	VertexShader string `yaml:"vertexShader,omitempty" env:"VERTEX_SHADER"`
	PixelShader  string `yaml:"pixelShader,omitempty" env:"PIXEL_SHADER"`
	LogLevel     string `yaml:"logLevel" env:"LOG_LEVEL"`
	// EnvFiles lists .env files, relative to the config file, loaded before
	// the process environment is applied.
	EnvFiles []string `yaml:"envFiles,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:          "riot",
		Width:          1280,
		Height:         720,
		Windowed:       true,
		Device:         device.TypeOpenGL.String(),
		FallbackToNull: true,
		ClearColor:     []float32{0, 0.3, 0.4, 1},
		ClearDepth:     1,
		LogLevel:       "info",
	}
}

// Load builds a Config from path (skipped when empty), the env files it
// names and the process environment, then validates it.
func Load(path string) (*Config, error) {
	return load(path, environ())
}

func load(path string, osEnv map[string]string) (*Config, error) {
	cfg := Default()
	baseDir := "."

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
		baseDir = filepath.Dir(path)
	}

	vars, err := loadEnvFiles(baseDir, cfg.EnvFiles)
	if err != nil {
		return nil, err
	}
	for k, v := range osEnv {
		vars[k] = v
	}

	if err := envparse.ParseWithOptions(cfg, envparse.Options{
		Environment: vars,
		Prefix:      EnvPrefix,
	}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles reads .env-style files in order, later files overriding
// earlier keys.
func loadEnvFiles(baseDir string, files []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range files {
		if name == "" {
			continue
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, name)
		}
		m, err := readEnvFile(path)
		if err != nil {
			return nil, fmt.Errorf("load env file %q: %w", path, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	return vars, nil
}

func readEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return godotenv.Parse(f)
}

func environ() map[string]string {
	return envparse.ToMap(os.Environ())
}

// DeviceType returns the parsed Device field.
func (c *Config) DeviceType() (device.Type, error) {
	return device.ParseType(c.Device)
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if t, err := c.DeviceType(); err != nil {
		errs = append(errs, err)
	} else if t == device.TypeDirect3D {
		errs = append(errs, fmt.Errorf("%w: %s", device.ErrUnsupportedBackend, t))
	}
	if len(c.ClearColor) != 4 {
		errs = append(errs, fmt.Errorf("clearColor needs 4 components, got %d", len(c.ClearColor)))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clearColor[%d] = %g out of range [0, 1]", i, v))
		}
	}
	if c.ClearDepth < 0 || c.ClearDepth > 1 {
		errs = append(errs, fmt.Errorf("clearDepth %g out of range [0, 1]", c.ClearDepth))
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames %d must not be negative", c.Frames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
