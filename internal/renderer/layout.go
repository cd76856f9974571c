package renderer

import (
	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer/core"
)

// Arrange places frames left to right in ID order, starting a new row when
// the next frame would cross width. gap cells separate neighbours in both
// directions. It returns the rectangle covering every placed frame.
//
// A frame wider than width gets a row of its own.
func Arrange(g *gallery.Gallery, width, gap int) core.ScreenRect {
	var (
		x, y      int
		rowHeight int
		extent    core.ScreenRect
	)

	for _, id := range g.AllIDs() {
		f, _ := g.Frame(id)
		b := f.Bounds()
		w, h := b.Width(), b.Height()

		if x > 0 && x+w > width {
			x = 0
			y += rowHeight + gap
			rowHeight = 0
		}

		f.SetOffset(x, y)
		extent.Right = max(extent.Right, x+w)
		extent.Bottom = max(extent.Bottom, y+h)

		x += w + gap
		rowHeight = max(rowHeight, h)
	}

	return extent
}
