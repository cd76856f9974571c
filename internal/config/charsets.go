package config

import "github.com/dshills/sadie/internal/canvas/charset"

// GlyphSet resolves the configured glyph set. Explicit glyphs win over the
// preset.
func (c CharsetConfig) GlyphSet() (charset.Glyphs, error) {
	if c.Glyphs != "" {
		return charset.NewGlyphs("custom", c.Glyphs)
	}
	return charset.GlyphPreset(c.Preset)
}

// Palette resolves the configured palette at the configured square size.
// Explicit colours win over the preset.
func (c PaletteConfig) Palette() (charset.Palette, error) {
	size := charset.WithSquareSize(c.SquareWidth, c.SquareHeight)
	if len(c.Colors) > 0 {
		return charset.ParsePalette("custom", c.Colors, size)
	}
	p, err := charset.PalettePreset(c.Preset)
	if err != nil {
		return charset.Palette{}, err
	}
	return p.WithSquareSize(c.SquareWidth, c.SquareHeight), nil
}
