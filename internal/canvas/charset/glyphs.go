package charset

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/sadie/internal/renderer/core"
)

// glyphTable is the shared, read-only storage behind Glyphs values.
type glyphTable struct {
	name  string
	runes []rune
}

// Glyphs is a terminal "font": each CharID resolves to a single-cell rune.
// Copies share one table.
type Glyphs struct {
	table *glyphTable
}

var _ Charset[rune] = Glyphs{}

// NewGlyphs builds a glyph set from s, one grapheme cluster per CharID.
// Every cluster must be a single rune of display width 1.
func NewGlyphs(name, s string) (Glyphs, error) {
	var runes []rune

	g := uniseg.NewGraphemes(s)
	for i := 0; g.Next(); i++ {
		cluster := g.Runes()
		if len(cluster) != 1 {
			return Glyphs{}, &GlyphError{Index: i, Glyph: g.Str(), Reason: "combining sequences are not supported"}
		}
		if w := core.RuneWidth(cluster[0]); w != 1 {
			return Glyphs{}, &GlyphError{Index: i, Glyph: g.Str(), Reason: fmt.Sprintf("display width %d, want 1", w)}
		}
		runes = append(runes, cluster[0])
	}

	if len(runes) == 0 {
		return Glyphs{}, ErrEmptyCharset
	}
	if len(runes) > math.MaxUint16 {
		return Glyphs{}, ErrTooManyEntries
	}

	return Glyphs{table: &glyphTable{name: name, runes: runes}}, nil
}

// glyphsFromRows builds a preset from trusted rows without validation.
func glyphsFromRows(name string, rows ...string) Glyphs {
	return Glyphs{table: &glyphTable{name: name, runes: []rune(strings.Join(rows, ""))}}
}

// Char returns the rune for id.
func (g Glyphs) Char(id CharID) rune {
	if int(id) >= len(g.table.runes) {
		panic(fmt.Sprintf("charset: glyph id %d out of range for %q (%d glyphs)", id, g.table.name, len(g.table.runes)))
	}
	return g.table.runes[id]
}

// Len returns the number of glyphs.
func (g Glyphs) Len() uint16 {
	if g.table == nil {
		return 0
	}
	return uint16(len(g.table.runes))
}

// GlyphSize implements Sized. Terminal glyphs occupy one cell.
func (g Glyphs) GlyphSize() (width, height int) {
	return 1, 1
}

// Name returns the glyph set's name.
func (g Glyphs) Name() string {
	if g.table == nil {
		return ""
	}
	return g.table.name
}

// Index returns the first CharID that resolves to r.
func (g Glyphs) Index(r rune) (CharID, bool) {
	if g.table == nil {
		return 0, false
	}
	i := slices.Index(g.table.runes, r)
	if i < 0 {
		return 0, false
	}
	return CharID(i), true
}

// String returns the glyphs in id order.
func (g Glyphs) String() string {
	if g.table == nil {
		return ""
	}
	return string(g.table.runes)
}

// Glyph presets.
var (
	// CP437 is the IBM PC code page, 16x16 glyphs in the classic layout.
	CP437 = glyphsFromRows("cp437",
		" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼",
		"►◄↕‼¶§▬↨↑↓→←∟↔▲▼",
		" !\"#$%&'()*+,-./",
		"0123456789:;<=>?",
		"@ABCDEFGHIJKLMNO",
		"PQRSTUVWXYZ[\\]^_",
		"`abcdefghijklmno",
		"pqrstuvwxyz{|}~⌂",
		"ÇüéâäàåçêëèïîìÄÅ",
		"ÉæÆôöòûùÿÖÜ¢£¥₧ƒ",
		"áíóúñÑªº¿⌐¬½¼¡«»",
		"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐",
		"└┴┬├─┼╞╟╚╔╩╦╠═╬╧",
		"╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀",
		"αßΓπΣσµτΦΘΩδ∞φε∩",
		"≡±≥≤⌠⌡÷≈°∙·√ⁿ²■ ",
	)

	// Blocks holds the Unicode block elements, led by an empty cell.
	Blocks = glyphsFromRows("blocks",
		" ▀▁▂▃▄▅▆▇█▉▊▋▌▍▎▏",
		"▐░▒▓▔▕▖▗▘▙▚▛▜▝▞▟",
	)

	// Quadrants gives 2x2 sub-cell resolution. The id is a bitmap:
	// bit0 upper-left, bit1 upper-right, bit2 lower-left, bit3 lower-right.
	Quadrants = glyphsFromRows("quadrants", " ▘▝▀▖▌▞▛▗▚▐▜▄▙▟█")

	// Shades orders glyphs from empty to full density.
	Shades = glyphsFromRows("shades", " ░▒▓█")

	// ASCII holds the printable ASCII range.
	ASCII = glyphsFromRows("ascii",
		" !\"#$%&'()*+,-./0123456789:;<=>?",
		"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_",
		"`abcdefghijklmnopqrstuvwxyz{|}~",
	)
)

var glyphPresets = map[string]Glyphs{
	CP437.Name():     CP437,
	Blocks.Name():    Blocks,
	Quadrants.Name(): Quadrants,
	Shades.Name():    Shades,
	ASCII.Name():     ASCII,
}

// GlyphPreset returns the named glyph preset.
func GlyphPreset(name string) (Glyphs, error) {
	g, ok := glyphPresets[strings.ToLower(name)]
	if !ok {
		return Glyphs{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return g, nil
}

// GlyphPresetNames returns the preset names in sorted order.
func GlyphPresetNames() []string {
	names := make([]string, 0, len(glyphPresets))
	for name := range glyphPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
