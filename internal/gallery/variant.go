package gallery

import (
	"fmt"
	"iter"

	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/renderer/core"
)

// Kind names a Variant case.
type Kind int

const (
	KindColoredFont Kind = iota
	KindFontOnly
	KindColorSquares
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindColoredFont:
		return "colored-font"
	case KindFontOnly:
		return "font-only"
	case KindColorSquares:
		return "color-squares"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CellColors are per-cell foreground and background colours.
type CellColors struct {
	FG core.Color
	BG core.Color
}

// Default returns white on black.
func (CellColors) Default() CellColors {
	return CellColors{FG: core.ColorWhite, BG: core.ColorBlack}
}

// NoAttr is the attribute type of canvases without per-cell attributes.
type NoAttr = struct{}

// Variant is a canvas together with how it is drawn. The set of variants
// is closed: ColoredFont, FontOnly and ColorSquares.
type Variant interface {
	Kind() Kind

	// Size returns the canvas size in cells.
	Size() canvas.Size

	// GlyphSize returns how many terminal cells one canvas cell covers.
	GlyphSize() (width, height int)

	// Cursors yields the canvas cursors in insertion order.
	Cursors() iter.Seq[canvas.Cursor]

	// SetCursorPosition moves the i-th cursor, clamped into the canvas.
	SetCursorPosition(i int, p canvas.Position)

	paint(dst Surface)
}

// ColoredFont is a glyph canvas where each cell carries its own colours.
type ColoredFont struct {
	Canvas *canvas.Canvas[rune, CellColors]
}

// FontOnly is a glyph canvas drawn white on black.
type FontOnly struct {
	Canvas *canvas.Canvas[rune, NoAttr]
}

// ColorSquares is a palette canvas drawn as solid squares.
type ColorSquares struct {
	Canvas *canvas.Canvas[core.Color, NoAttr]
}

func (ColoredFont) Kind() Kind  { return KindColoredFont }
func (FontOnly) Kind() Kind     { return KindFontOnly }
func (ColorSquares) Kind() Kind { return KindColorSquares }

func (v ColoredFont) Size() canvas.Size  { return v.Canvas.Size() }
func (v FontOnly) Size() canvas.Size     { return v.Canvas.Size() }
func (v ColorSquares) Size() canvas.Size { return v.Canvas.Size() }

func (v ColoredFont) GlyphSize() (int, int)  { return charset.GlyphSize(v.Canvas.Charset()) }
func (v FontOnly) GlyphSize() (int, int)     { return charset.GlyphSize(v.Canvas.Charset()) }
func (v ColorSquares) GlyphSize() (int, int) { return charset.GlyphSize(v.Canvas.Charset()) }

func (v ColoredFont) Cursors() iter.Seq[canvas.Cursor]  { return v.Canvas.Cursors() }
func (v FontOnly) Cursors() iter.Seq[canvas.Cursor]     { return v.Canvas.Cursors() }
func (v ColorSquares) Cursors() iter.Seq[canvas.Cursor] { return v.Canvas.Cursors() }

func (v ColoredFont) SetCursorPosition(i int, p canvas.Position) {
	v.Canvas.SetCursorPosition(i, p)
}

func (v FontOnly) SetCursorPosition(i int, p canvas.Position) {
	v.Canvas.SetCursorPosition(i, p)
}

func (v ColorSquares) SetCursorPosition(i int, p canvas.Position) {
	v.Canvas.SetCursorPosition(i, p)
}

func (v ColoredFont) paint(dst Surface) {
	gw, gh := v.GlyphSize()
	for c := range v.Canvas.Cells() {
		style := core.NewStyle(c.Attr.FG, c.Attr.BG)
		paintGlyph(dst, int(c.X)*gw, int(c.Y)*gh, gw, gh, c.Glyph, style)
	}
	paintCursors(dst, v)
}

func (v FontOnly) paint(dst Surface) {
	gw, gh := v.GlyphSize()
	style := core.NewStyle(core.ColorWhite, core.ColorBlack)
	for c := range v.Canvas.Cells() {
		paintGlyph(dst, int(c.X)*gw, int(c.Y)*gh, gw, gh, c.Glyph, style)
	}
	paintCursors(dst, v)
}

func (v ColorSquares) paint(dst Surface) {
	gw, gh := v.GlyphSize()
	for c := range v.Canvas.Cells() {
		square := core.NewStyledCell(' ', core.NewStyle(c.Glyph.Contrast(), c.Glyph))
		dst.Fill(core.RectAt(int(c.X)*gw, int(c.Y)*gh, gw, gh), square)
	}
	paintCursors(dst, v)
}
