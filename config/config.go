package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/gesture"
	"github.com/soocke/gripframe/domain/resize"
)

// Config holds runtime configuration for the region engine and the demo hosts.
// Fields may be loaded from a JSON or YAML file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug" yaml:"debug"`

	// Constraint policy
	MinWidth   float64 `json:"min_width" yaml:"min-width"`
	MinHeight  float64 `json:"min_height" yaml:"min-height"`
	HitMargin  float64 `json:"hit_margin" yaml:"hit-margin"`
	AspectLock bool    `json:"aspect_lock" yaml:"aspect-lock"`

	// Initial placement (not written back after gestures)
	RegionX float64 `json:"region_x" yaml:"region-x"`
	RegionY float64 `json:"region_y" yaml:"region-y"`
	RegionW float64 `json:"region_w" yaml:"region-w"`
	RegionH float64 `json:"region_h" yaml:"region-h"`

	// Grip drawing
	GripSize           float64 `json:"grip_size" yaml:"grip-size"`
	StrokeColor        string  `json:"stroke_color" yaml:"stroke-color"`
	GripStrokeColor    string  `json:"grip_stroke_color" yaml:"grip-stroke-color"`
	GripFillColor      string  `json:"grip_fill_color" yaml:"grip-fill-color"`
	InteractionEnabled bool    `json:"interaction_enabled" yaml:"interaction-enabled"`

	// Gesture recognizer
	TapSlop     float64 `json:"tap_slop" yaml:"tap-slop"`
	TapMaxMilli int     `json:"tap_max_ms" yaml:"tap-max-ms"`

	// Hosts
	Sound      bool   `json:"sound" yaml:"sound"`
	PreviewW   int    `json:"preview_w" yaml:"preview-w"`
	PreviewH   int    `json:"preview_h" yaml:"preview-h"`
	CaptureDir string `json:"capture_dir" yaml:"capture-dir"`
}

// ConfigError reports a field that cannot be normalised.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		MinWidth:        100,
		MinHeight:       100,
		HitMargin:       40,
		AspectLock:      false,
		RegionX:         40,
		RegionY:         40,
		RegionW:         220,
		RegionH:         320,
		GripSize:        10,
		StrokeColor:     "#ff0000",
		GripStrokeColor: "#ffffff",
		GripFillColor:   "#0000ff",
		TapSlop:         4,
		TapMaxMilli:     300,
		Sound:           true,
		PreviewW:        640,
		PreviewH:        400,
		CaptureDir:      ".",
	}
}

// Validate clamps/normalizes values to safe ranges. It only fails when a value
// has no sensible replacement.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.MinWidth <= 0 {
		c.MinWidth = def.MinWidth
	}
	if c.MinHeight <= 0 {
		c.MinHeight = def.MinHeight
	}
	if c.HitMargin < 0 {
		c.HitMargin = def.HitMargin
	}
	if c.GripSize <= 0 {
		c.GripSize = def.GripSize
	}
	if c.RegionW < c.MinWidth {
		c.RegionW = c.MinWidth
	}
	if c.RegionH < c.MinHeight {
		c.RegionH = c.MinHeight
	}
	if c.TapSlop < 0 {
		c.TapSlop = def.TapSlop
	}
	if c.TapMaxMilli <= 0 {
		c.TapMaxMilli = def.TapMaxMilli
	}
	if c.PreviewW < 100 {
		c.PreviewW = def.PreviewW
	}
	if c.PreviewH < 100 {
		c.PreviewH = def.PreviewH
	}
	if strings.TrimSpace(c.CaptureDir) == "" {
		c.CaptureDir = def.CaptureDir
	}
	for field, v := range map[string]*string{
		"stroke_color":      &c.StrokeColor,
		"grip_stroke_color": &c.GripStrokeColor,
		"grip_fill_color":   &c.GripFillColor,
	} {
		s := strings.TrimSpace(*v)
		if s == "" {
			continue
		}
		if _, err := colorful.Hex(s); err != nil {
			return &ConfigError{Field: field, Message: fmt.Sprintf("%q is not a #rgb or #rrggbb color", s)}
		}
		*v = strings.ToLower(s)
	}
	if c.StrokeColor == "" {
		c.StrokeColor = def.StrokeColor
	}
	if c.GripStrokeColor == "" {
		c.GripStrokeColor = def.GripStrokeColor
	}
	if c.GripFillColor == "" {
		c.GripFillColor = def.GripFillColor
	}
	return nil
}

// Region returns the initial frame in parent space.
func (c *Config) Region() geometry.Rect {
	return geometry.R(c.RegionX, c.RegionY, c.RegionW, c.RegionH)
}

// EngineOptions maps the constraint fields onto engine options.
func (c *Config) EngineOptions() resize.Options {
	return resize.Options{
		MinWidth:           c.MinWidth,
		MinHeight:          c.MinHeight,
		HitMargin:          c.HitMargin,
		AspectLock:         c.AspectLock,
		InteractionEnabled: c.InteractionEnabled,
	}
}

// GestureOptions maps the tap fields onto recognizer options.
func (c *Config) GestureOptions() gesture.Options {
	return gesture.Options{Slop: c.TapSlop, MaxTap: time.Duration(c.TapMaxMilli) * time.Millisecond}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("gripframe", "config.json"))
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load attempts to read configuration from the given JSON or YAML file path. If
// the file does not exist it returns DefaultConfig(). On decode or validation
// error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path, YAML for .yaml/.yml and JSON otherwise.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
