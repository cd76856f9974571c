package backend

import (
	"strings"

	"github.com/dshills/sadie/internal/renderer/core"
)

// Surface is an off-screen grid of terminal cells. Frames are composed on
// a Surface and then blitted onto a Backend.
type Surface struct {
	width, height int
	cells         []core.Cell
}

// NewSurface creates a surface filled with empty cells.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	s := &Surface{width: max(width, 0), height: max(height, 0)}
	s.allocate()
	return s
}

func (s *Surface) allocate() {
	s.cells = make([]core.Cell, s.width*s.height)
	s.Clear()
}

func (s *Surface) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize resizes the surface, preserving content where possible.
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldWidth := s.width
	copyHeight := min(s.height, height)
	copyWidth := min(s.width, width)

	s.width, s.height = width, height
	s.allocate()

	for y := 0; y < copyHeight; y++ {
		copy(s.cells[y*width:y*width+copyWidth], old[y*oldWidth:y*oldWidth+copyWidth])
	}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// SetCell sets a cell. Out-of-range positions are ignored.
func (s *Surface) SetCell(x, y int, cell core.Cell) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = cell
}

// GetCell returns a cell, or an empty cell for out-of-range positions.
func (s *Surface) GetCell(x, y int) core.Cell {
	if !s.inside(x, y) {
		return core.EmptyCell()
	}
	return s.cells[y*s.width+x]
}

// Fill fills the part of rect that overlaps the surface.
func (s *Surface) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < s.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < s.width; x++ {
			s.cells[y*s.width+x] = cell
		}
	}
}

// Clear resets every cell to empty.
func (s *Surface) Clear() {
	empty := core.EmptyCell()
	for i := range s.cells {
		s.cells[i] = empty
	}
}

// SetString writes s with the given style starting at (x, y), one rune per
// column. Text running off the surface is clipped.
func (s *Surface) SetString(x, y int, text string, style core.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, core.NewStyledCell(r, style))
		col++
	}
}

// BlitTo copies the whole surface onto dst with its top-left corner at
// (x, y). Cells falling outside dst are dropped by dst.
func (s *Surface) BlitTo(dst Target, x, y int) {
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			dst.SetCell(x+col, y+row, s.cells[row*s.width+col])
		}
	}
}

// Line returns row y as a string of runes, for tests and debugging.
func (s *Surface) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}
