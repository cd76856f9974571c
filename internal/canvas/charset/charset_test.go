package charset

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sadie/internal/renderer/core"
)

func TestGlyphPresets_Sizes(t *testing.T) {
	tests := []struct {
		glyphs Glyphs
		want   uint16
	}{
		{CP437, 256},
		{Blocks, 33},
		{Quadrants, 16},
		{Shades, 5},
		{ASCII, 95},
	}

	for _, tt := range tests {
		t.Run(tt.glyphs.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.glyphs.Len())
			assert.Equal(t, ' ', tt.glyphs.Char(0))
		})
	}
}

func TestGlyphPresets_SingleWidth(t *testing.T) {
	for _, name := range GlyphPresetNames() {
		g, err := GlyphPreset(name)
		require.NoError(t, err)
		for i := range g.Len() {
			r := g.Char(CharID(i))
			assert.Equal(t, 1, core.RuneWidth(r), "%s[%d] = %q", name, i, r)
		}
	}
}

func TestQuadrants_Bitmap(t *testing.T) {
	assert.Equal(t, '▘', Quadrants.Char(0b0001))
	assert.Equal(t, '▝', Quadrants.Char(0b0010))
	assert.Equal(t, '▀', Quadrants.Char(0b0011))
	assert.Equal(t, '▖', Quadrants.Char(0b0100))
	assert.Equal(t, '▗', Quadrants.Char(0b1000))
	assert.Equal(t, '█', Quadrants.Char(0b1111))
}

func TestGlyphs_CharOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Shades.Char(5) })
	assert.NotPanics(t, func() { Shades.Char(4) })
}

func TestGlyphs_CopiesShareTable(t *testing.T) {
	a := Blocks
	b := a
	assert.Same(t, a.table, b.table)
}

func TestNewGlyphs(t *testing.T) {
	g, err := NewGlyphs("mine", "ab▚c")
	require.NoError(t, err)
	assert.Equal(t, uint16(4), g.Len())
	assert.Equal(t, '▚', g.Char(2))
	assert.Equal(t, "mine", g.Name())
	assert.Equal(t, "ab▚c", g.String())

	id, ok := g.Index('c')
	assert.True(t, ok)
	assert.Equal(t, CharID(3), id)
	_, ok = g.Index('z')
	assert.False(t, ok)
}

func TestNewGlyphs_Errors(t *testing.T) {
	_, err := NewGlyphs("empty", "")
	assert.ErrorIs(t, err, ErrEmptyCharset)

	_, err = NewGlyphs("wide", "a日b")
	var ge *GlyphError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, 1, ge.Index)
	assert.Equal(t, "日", ge.Glyph)

	_, err = NewGlyphs("combining", "ae\u0301")
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, 1, ge.Index)
	assert.Equal(t, 2, utf8.RuneCountInString(ge.Glyph))
}

func TestGlyphPreset_Lookup(t *testing.T) {
	g, err := GlyphPreset("QUADRANTS")
	require.NoError(t, err)
	assert.Equal(t, Quadrants.Name(), g.Name())

	_, err = GlyphPreset("wingdings")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	assert.Equal(t, []string{"ascii", "blocks", "cp437", "quadrants", "shades"}, GlyphPresetNames())
}

func TestGlyphSize(t *testing.T) {
	w, h := GlyphSize(Blocks)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	w, h = GlyphSize(PICO8)
	assert.Equal(t, DefaultSquareWidth, w)
	assert.Equal(t, DefaultSquareHeight, h)

	w, h = GlyphSize(struct{}{})
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	w, h = GlyphSize(degenerate{})
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

type degenerate struct{}

func (degenerate) GlyphSize() (int, int) { return 0, -2 }

func TestPICO8(t *testing.T) {
	require.Equal(t, uint16(16), PICO8.Len())
	assert.Equal(t, core.ColorFromRGB(0, 0, 0), PICO8.Char(0))
	assert.Equal(t, core.ColorFromRGB(255, 0, 77), PICO8.Char(8))
	assert.Equal(t, core.ColorFromRGB(255, 204, 170), PICO8.Char(15))
	assert.Panics(t, func() { PICO8.Char(16) })
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("custom", []string{"#000000", "ff0000", "#0F0"}, WithSquareSize(3, 2))
	require.NoError(t, err)
	assert.Equal(t, uint16(3), p.Len())
	assert.Equal(t, core.ColorRed, p.Char(1))
	assert.Equal(t, core.ColorGreen, p.Char(2))

	w, h := p.GlyphSize()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestParsePalette_Errors(t *testing.T) {
	_, err := ParsePalette("none", nil)
	assert.ErrorIs(t, err, ErrEmptyCharset)

	_, err = ParsePalette("bad", []string{"#000000", "not-a-color"})
	var ce *ColorError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Index)
	assert.Equal(t, "not-a-color", ce.Value)
	assert.Error(t, errors.Unwrap(ce))
}

func TestNewPalette_CopiesInput(t *testing.T) {
	colors := []core.Color{core.ColorBlack, core.ColorWhite}
	p, err := NewPalette("bw", colors)
	require.NoError(t, err)

	colors[0] = core.ColorRed
	assert.Equal(t, core.ColorBlack, p.Char(0))
}

func TestPalette_WithSquareSizeSharesTable(t *testing.T) {
	big := PICO8.WithSquareSize(4, 2)
	assert.Same(t, PICO8.table, big.table)

	w, _ := big.GlyphSize()
	assert.Equal(t, 4, w)
	w, _ = PICO8.GlyphSize()
	assert.Equal(t, DefaultSquareWidth, w)
}

func TestGradient(t *testing.T) {
	p, err := Gradient("gray", core.ColorBlack, core.ColorWhite, 5)
	require.NoError(t, err)
	require.Equal(t, uint16(5), p.Len())
	assert.Equal(t, core.ColorBlack, p.Char(0))
	assert.Equal(t, core.ColorWhite, p.Char(4))

	prev := -1
	for i := range p.Len() {
		c := p.Char(CharID(i))
		assert.Greater(t, int(c.R), prev)
		prev = int(c.R)
	}

	_, err = Gradient("short", core.ColorBlack, core.ColorWhite, 1)
	assert.Error(t, err)
}

func TestPalette_Nearest(t *testing.T) {
	assert.Equal(t, CharID(8), PICO8.Nearest(core.ColorFromRGB(250, 5, 70)))
	assert.Equal(t, CharID(0), PICO8.Nearest(core.ColorBlack))
}

func TestPalettePreset_Lookup(t *testing.T) {
	p, err := PalettePreset("Pico8")
	require.NoError(t, err)
	assert.Equal(t, uint16(16), p.Len())

	p, err = PalettePreset("ansi16")
	require.NoError(t, err)
	assert.True(t, p.Char(3).Indexed)

	_, err = PalettePreset("gameboy")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, []string{"ansi16", "pico8"}, PalettePresetNames())
}
