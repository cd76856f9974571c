package charset

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dshills/sadie/internal/renderer/core"
)

// Default palette square size in terminal cells. Two columns per row keeps
// a square roughly square in most terminal fonts.
const (
	DefaultSquareWidth  = 2
	DefaultSquareHeight = 1
)

type paletteTable struct {
	name   string
	colors []core.Color
}

// Palette is a colour-backed Charset. Each CharID resolves to one colour,
// drawn as a solid square of GlyphSize terminal cells.
type Palette struct {
	table  *paletteTable
	width  int
	height int
}

var _ Charset[core.Color] = Palette{}

// PaletteOption configures a Palette.
type PaletteOption func(*Palette)

// WithSquareSize sets the number of terminal cells one palette entry covers.
// Non-positive values are ignored.
func WithSquareSize(width, height int) PaletteOption {
	return func(p *Palette) {
		if width > 0 {
			p.width = width
		}
		if height > 0 {
			p.height = height
		}
	}
}

// NewPalette creates a palette from colors. The slice is copied.
func NewPalette(name string, colors []core.Color, opts ...PaletteOption) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyCharset
	}
	if len(colors) > math.MaxUint16 {
		return Palette{}, ErrTooManyEntries
	}
	return newPalette(name, slices.Clone(colors), opts...), nil
}

func newPalette(name string, colors []core.Color, opts ...PaletteOption) Palette {
	p := Palette{
		table:  &paletteTable{name: name, colors: colors},
		width:  DefaultSquareWidth,
		height: DefaultSquareHeight,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// ParsePalette parses hex colour strings ("#RRGGBB", "#RGB", with or without
// the leading '#') into a palette.
func ParsePalette(name string, values []string, opts ...PaletteOption) (Palette, error) {
	if len(values) == 0 {
		return Palette{}, ErrEmptyCharset
	}
	colors := make([]core.Color, 0, len(values))
	for i, v := range values {
		c, err := core.ColorFromHex(v)
		if err != nil {
			return Palette{}, &ColorError{Index: i, Value: v, Err: err}
		}
		colors = append(colors, c)
	}
	return NewPalette(name, colors, opts...)
}

// Gradient builds a palette of steps colours blended in Lab space from
// "from" to "to". steps must be at least 2.
func Gradient(name string, from, to core.Color, steps int, opts ...PaletteOption) (Palette, error) {
	if steps < 2 {
		return Palette{}, fmt.Errorf("gradient needs at least 2 steps, got %d", steps)
	}
	if steps > math.MaxUint16 {
		return Palette{}, ErrTooManyEntries
	}

	a, b := from.Colorful(), to.Colorful()
	colors := make([]core.Color, steps)
	for i := range colors {
		t := float64(i) / float64(steps-1)
		colors[i] = core.ColorFromColorful(a.BlendLab(b, t))
	}
	// Pin the endpoints so rounding never drifts them.
	colors[0], colors[steps-1] = from, to
	return newPalette(name, colors, opts...), nil
}

// Char returns the colour for id.
func (p Palette) Char(id CharID) core.Color {
	if int(id) >= len(p.table.colors) {
		panic(fmt.Sprintf("charset: palette id %d out of range for %q (%d colors)", id, p.table.name, len(p.table.colors)))
	}
	return p.table.colors[id]
}

// Len returns the number of colours.
func (p Palette) Len() uint16 {
	if p.table == nil {
		return 0
	}
	return uint16(len(p.table.colors))
}

// GlyphSize implements Sized.
func (p Palette) GlyphSize() (width, height int) {
	return p.width, p.height
}

// Name returns the palette's name.
func (p Palette) Name() string {
	if p.table == nil {
		return ""
	}
	return p.table.name
}

// WithSquareSize returns a copy of p drawn at a different square size.
// The colour table stays shared.
func (p Palette) WithSquareSize(width, height int) Palette {
	WithSquareSize(width, height)(&p)
	return p
}

// Nearest returns the id whose colour is closest to c in Lab space.
func (p Palette) Nearest(c core.Color) CharID {
	target := c.Colorful()
	best, bestDist := 0, math.Inf(1)
	for i, pc := range p.table.colors {
		if d := target.DistanceLab(pc.Colorful()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return CharID(best)
}

// PICO8 is the 16 colour PICO-8 fantasy console palette.
var PICO8 = newPalette("pico8", []core.Color{
	core.ColorFromRGB(0, 0, 0),       // black
	core.ColorFromRGB(29, 43, 83),    // dark blue
	core.ColorFromRGB(126, 37, 83),   // dark purple
	core.ColorFromRGB(0, 135, 81),    // dark green
	core.ColorFromRGB(171, 82, 54),   // brown
	core.ColorFromRGB(95, 87, 79),    // dark gray
	core.ColorFromRGB(194, 195, 199), // light gray
	core.ColorFromRGB(255, 241, 232), // white
	core.ColorFromRGB(255, 0, 77),    // red
	core.ColorFromRGB(255, 163, 0),   // orange
	core.ColorFromRGB(255, 236, 39),  // yellow
	core.ColorFromRGB(0, 228, 54),    // green
	core.ColorFromRGB(41, 173, 255),  // blue
	core.ColorFromRGB(131, 118, 156), // indigo
	core.ColorFromRGB(255, 119, 168), // pink
	core.ColorFromRGB(255, 204, 170), // peach
})

// ANSI16 is the basic terminal palette in indexed form, so it follows the
// user's terminal theme.
var ANSI16 = func() Palette {
	colors := make([]core.Color, 16)
	for i := range colors {
		colors[i] = core.ColorFromIndex(uint8(i))
	}
	return newPalette("ansi16", colors)
}()

var palettePresets = map[string]Palette{
	PICO8.Name():  PICO8,
	ANSI16.Name(): ANSI16,
}

// PalettePreset returns the named palette preset.
func PalettePreset(name string) (Palette, error) {
	p, ok := palettePresets[strings.ToLower(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PalettePresetNames returns the palette preset names in sorted order.
func PalettePresetNames() []string {
	names := make([]string, 0, len(palettePresets))
	for name := range palettePresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
