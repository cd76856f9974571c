package config

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the problem.
	Message string
	// Value is the invalid value.
	Value any
	// Code categorizes the validation error.
	Code ValidationErrorCode
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode uint8

const (
	// ErrCodeOutOfRange indicates a numeric value is out of range.
	ErrCodeOutOfRange ValidationErrorCode = iota
	// ErrCodeInvalidEnum indicates the value is not in the allowed set.
	ErrCodeInvalidEnum
	// ErrCodeRequiredMissing indicates a required setting is missing.
	ErrCodeRequiredMissing
	// ErrCodeInvalidValue indicates a value that failed to parse.
	ErrCodeInvalidValue
)

// String returns a human-readable name for the error code.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidEnum:
		return "invalid_enum"
	case ErrCodeRequiredMissing:
		return "required_missing"
	case ErrCodeInvalidValue:
		return "invalid_value"
	default:
		return "unknown"
	}
}

var (
	logFormats = []string{"console", "json"}
	seedModes  = []string{SeedBlank, SeedCascade, SeedRandom, SeedScript}
)

// Validate checks every setting and returns all problems joined, each a
// *ValidationError. It returns nil for a usable configuration.
func (c *Config) Validate() error {
	var v validator

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		v.add("log.level", c.Log.Level, ErrCodeInvalidEnum, "unknown log level")
	}
	v.oneOf("log.format", c.Log.Format, logFormats)

	v.between("canvas.width", c.Canvas.Width, 1, math.MaxUint16)
	v.between("canvas.height", c.Canvas.Height, 1, math.MaxUint16)
	v.oneOf("canvas.seed", c.Canvas.Seed, seedModes)
	if c.Canvas.Seed == SeedScript && c.Canvas.Script == "" {
		v.add("canvas.script", "", ErrCodeRequiredMissing, `required when seed is "script"`)
	}

	if _, err := c.Charset.GlyphSet(); err != nil {
		if c.Charset.Glyphs != "" {
			v.add("charset.glyphs", c.Charset.Glyphs, ErrCodeInvalidValue, err.Error())
		} else {
			v.add("charset.preset", c.Charset.Preset, ErrCodeInvalidValue, err.Error())
		}
	}

	v.between("palette.square_width", c.Palette.SquareWidth, 1, math.MaxUint8)
	v.between("palette.square_height", c.Palette.SquareHeight, 1, math.MaxUint8)
	if _, err := c.Palette.Palette(); err != nil {
		if len(c.Palette.Colors) > 0 {
			v.add("palette.colors", c.Palette.Colors, ErrCodeInvalidValue, err.Error())
		} else {
			v.add("palette.preset", c.Palette.Preset, ErrCodeInvalidValue, err.Error())
		}
	}

	v.between("surface.max_cells", c.Surface.MaxCells, 0, math.MaxInt32)

	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) add(path string, value any, code ValidationErrorCode, msg string) {
	v.errs = append(v.errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
}

func (v *validator) oneOf(path, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		v.add(path, value, ErrCodeInvalidEnum, fmt.Sprintf("must be one of %v", allowed))
	}
}

func (v *validator) between(path string, value, lo, hi int) {
	if value < lo || value > hi {
		v.add(path, value, ErrCodeOutOfRange, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
}
