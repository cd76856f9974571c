package gallery

import (
	"github.com/dshills/sadie/internal/renderer/core"
)

// CursorRune marks the cells under a canvas cursor.
const CursorRune = '╳'

// CursorColor is the colour cursor marks are drawn in.
var CursorColor = core.ColorRed

// paintGlyph draws r in the top-left cell of a gw x gh box and pads the rest
// of the box with blanks in the same style.
func paintGlyph(dst Surface, x, y, gw, gh int, r rune, style core.Style) {
	dst.Fill(core.RectAt(x, y, gw, gh), core.NewStyledCell(' ', style))
	dst.SetCell(x, y, core.NewStyledCell(r, style))
}

// paintCursors overlays CursorRune on every cell covered by each cursor,
// keeping the background underneath. Cursors outside the canvas are skipped.
func paintCursors(dst Surface, v Variant) {
	gw, gh := v.GlyphSize()
	for cur := range v.Cursors() {
		if !cur.InBounds() {
			continue
		}
		p := cur.Position()
		for dy := range gh {
			for dx := range gw {
				x, y := int(p.X)*gw+dx, int(p.Y)*gh+dy
				under := dst.GetCell(x, y)
				style := core.NewStyle(CursorColor, under.Style.Background).Bold()
				dst.SetCell(x, y, core.NewStyledCell(CursorRune, style))
			}
		}
	}
}
