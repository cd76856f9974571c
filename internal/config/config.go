package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/sadie/internal/config/loader"
)

// ErrFileNotFound indicates a required configuration file doesn't exist.
var ErrFileNotFound = errors.New("config file not found")

// Config is the complete sadie configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Canvas  CanvasConfig  `toml:"canvas"`
	Charset CharsetConfig `toml:"charset"`
	Palette PaletteConfig `toml:"palette"`
	Surface SurfaceConfig `toml:"surface"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is a zerolog level name ("trace" through "disabled").
	Level string `toml:"level"`

	// Format is "console" or "json".
	Format string `toml:"format"`

	// File receives log output. Empty discards logs, since the terminal
	// belongs to the editor.
	File string `toml:"file"`
}

// CanvasConfig describes the drawing canvas.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Seed picks the initial cell contents: "blank", "cascade", "random"
	// or "script".
	Seed string `toml:"seed"`

	// Script is a Lua file defining cell(index, x, y, count). Required
	// when Seed is "script".
	Script string `toml:"script"`

	// RandomSeed seeds the "random" fill. Zero picks a seed at startup.
	RandomSeed uint64 `toml:"random_seed"`
}

// CharsetConfig selects the glyph set.
type CharsetConfig struct {
	// Preset names a built-in glyph set.
	Preset string `toml:"preset"`

	// Glyphs, when set, replaces the preset with these characters.
	Glyphs string `toml:"glyphs"`
}

// PaletteConfig selects the colour palette.
type PaletteConfig struct {
	Preset string `toml:"preset"`

	// Colors, when set, replaces the preset. Entries are hex colours.
	Colors []string `toml:"colors"`

	SquareWidth  int `toml:"square_width"`
	SquareHeight int `toml:"square_height"`
}

// SurfaceConfig bounds per-canvas surfaces.
type SurfaceConfig struct {
	// MaxCells caps the cells of one surface. Zero uses the renderer default.
	MaxCells int `toml:"max_cells"`
}

// Seed modes.
const (
	SeedBlank   = "blank"
	SeedCascade = "cascade"
	SeedRandom  = "random"
	SeedScript  = "script"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Canvas: CanvasConfig{
			Width:  16,
			Height: 14,
			Seed:   SeedBlank,
		},
		Charset: CharsetConfig{
			Preset: "blocks",
		},
		Palette: PaletteConfig{
			Preset:       "pico8",
			SquareWidth:  2,
			SquareHeight: 1,
		},
		Surface: SurfaceConfig{
			MaxCells: 1 << 16,
		},
	}
}

// DefaultPath returns the user config file location, or "" if the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sadie", "config.toml")
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs        loader.FileSystem
	env       loader.Loader
	overrides map[string]any
	required  bool
	maxDepth  int
}

// WithFS reads config files from fsys instead of the OS.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv replaces the environment layer. A nil loader disables it.
func WithEnv(env loader.Loader) Option {
	return func(o *loadOptions) {
		o.env = env
	}
}

// WithOverrides sets the top layer, keyed by dot-separated path
// ("canvas.width").
func WithOverrides(overrides map[string]any) Option {
	return func(o *loadOptions) {
		o.overrides = overrides
	}
}

// RequireFile makes a missing config file an error.
func RequireFile() Option {
	return func(o *loadOptions) {
		o.required = true
	}
}

// Load builds a Config from defaults, the file at path (TOML or YAML by
// extension, skipped when path is empty), SADIE_* environment variables and
// overrides. It does not validate.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:       loader.DefaultFS(),
		env:      loader.NewEnvLoader(loader.DefaultEnvPrefix),
		maxDepth: 8,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := loader.ForPath(o.fs, path).LoadWithIncludes(path, o.maxDepth)
		if err != nil {
			return nil, err
		}
		if file == nil && o.required {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		merged = loader.DeepMerge(merged, file)
	}

	if o.env != nil {
		env, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, env)
	}

	if len(o.overrides) > 0 {
		layer := map[string]any{}
		for key, value := range o.overrides {
			setPath(layer, key, value)
		}
		merged = loader.DeepMerge(merged, layer)
	}

	return fromMap(merged)
}

// toMap converts a Config into the generic map form used for merging.
func toMap(c *Config) (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return m, nil
}

// fromMap decodes a merged map into a Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding merged config: %w", err)
	}
	if len(c.Palette.Colors) == 0 {
		c.Palette.Colors = nil
	}
	return &c, nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}

func setPath(data map[string]any, path string, value any) {
	current := data
	for {
		head, rest, nested := strings.Cut(path, ".")
		if !nested {
			current[head] = value
			return
		}
		next, ok := current[head].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[head] = next
		}
		current, path = next, rest
	}
}
