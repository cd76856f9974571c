package charset

import (
	"errors"
	"fmt"
)

// Errors returned when building charsets from user input.
var (
	// ErrEmptyCharset is returned when a glyph string or palette has no entries.
	ErrEmptyCharset = errors.New("charset has no entries")

	// ErrTooManyEntries is returned when a charset would exceed the CharID range.
	ErrTooManyEntries = errors.New("charset exceeds 65535 entries")

	// ErrUnknownPreset is returned when a named preset does not exist.
	ErrUnknownPreset = errors.New("unknown charset preset")
)

// GlyphError describes a glyph that cannot occupy exactly one terminal cell.
type GlyphError struct {
	Index  int    // Position of the glyph in the source string
	Glyph  string // The offending grapheme cluster
	Reason string
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("glyph %d (%q): %s", e.Index, e.Glyph, e.Reason)
}

// ColorError describes a palette entry that could not be parsed.
type ColorError struct {
	Index int
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("palette entry %d (%q): %v", e.Index, e.Value, e.Err)
}

func (e *ColorError) Unwrap() error {
	return e.Err
}
