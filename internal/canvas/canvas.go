package canvas

import (
	"fmt"
	"iter"

	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/canvas/grid"
)

// Canvas is a grid of cells interpreted through a Charset, plus the
// cursors that point into it.
type Canvas[T, A any] struct {
	data    *grid.Grid[Cell[A]]
	charset charset.Charset[T]
	cursors []Cursor
}

// Len returns the number of cells.
func (c *Canvas[T, A]) Len() int {
	return c.data.Len()
}

// Size returns the canvas dimensions.
func (c *Canvas[T, A]) Size() Size {
	w, h := c.data.Sides()
	return Size{Width: w, Height: h}
}

// Charset returns the charset the canvas resolves CharIDs with.
func (c *Canvas[T, A]) Charset() charset.Charset[T] {
	return c.charset
}

// Get returns the cell at (x, y). It panics if (x, y) is outside the canvas.
func (c *Canvas[T, A]) Get(x, y uint16) Cell[A] {
	return c.data.At(x, y)
}

// GetMut returns a pointer to the cell at (x, y) for in-place edits.
// It panics if (x, y) is outside the canvas.
func (c *Canvas[T, A]) GetMut(x, y uint16) *Cell[A] {
	return c.data.Ptr(x, y)
}

// Set replaces the cell at (x, y).
func (c *Canvas[T, A]) Set(x, y uint16, cell Cell[A]) {
	c.data.Set(x, y, cell)
}

// Iter yields every cell in row-major order.
func (c *Canvas[T, A]) Iter() iter.Seq[Cell[A]] {
	return func(yield func(Cell[A]) bool) {
		for _, cell := range c.data.Slice() {
			if !yield(cell) {
				return
			}
		}
	}
}

// IterMut yields a pointer to every cell in row-major order.
func (c *Canvas[T, A]) IterMut() iter.Seq[*Cell[A]] {
	return func(yield func(*Cell[A]) bool) {
		cells := c.data.Slice()
		for i := range cells {
			if !yield(&cells[i]) {
				return
			}
		}
	}
}

// Cells yields every cell in row-major order with its coordinates, the
// item its CharID resolves to and a pointer to its attributes.
//
// Resolving a CharID outside the charset panics. A canvas resized to zero
// width yields nothing.
func (c *Canvas[T, A]) Cells() iter.Seq[CellView[T, A]] {
	return func(yield func(CellView[T, A]) bool) {
		if c.data.Width() == 0 {
			return
		}
		cells := c.data.Slice()
		for i := range cells {
			x, y := c.data.IndexToCoord(i)
			view := CellView[T, A]{
				X:     x,
				Y:     y,
				Glyph: c.charset.Char(cells[i].ID),
				Attr:  &cells[i].Attr,
			}
			if !yield(view) {
				return
			}
		}
	}
}

// Cursors yields the cursors in the order they were added.
func (c *Canvas[T, A]) Cursors() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for _, cur := range c.cursors {
			if !yield(cur) {
				return
			}
		}
	}
}

// CursorCount returns the number of cursors.
func (c *Canvas[T, A]) CursorCount() int {
	return len(c.cursors)
}

// Cursor returns the i-th cursor.
func (c *Canvas[T, A]) Cursor(i int) Cursor {
	return c.cursors[c.cursorIndex(i)]
}

// SetSize reinterprets the cell storage at new.Width and tells every cursor
// about the new bounds. Cursor positions are left untouched and may end up
// outside the canvas; see Cursor.InBounds.
func (c *Canvas[T, A]) SetSize(size Size) {
	c.data.SetWidth(size.Width)
	for i := range c.cursors {
		c.cursors[i] = c.cursors[i].WithBounds(size)
	}
}

// SetCursorPosition moves the i-th cursor to p, clamped into its bounds.
func (c *Canvas[T, A]) SetCursorPosition(i int, p Position) {
	i = c.cursorIndex(i)
	c.cursors[i] = c.cursors[i].MoveTo(p)
}

// MoveCursor shifts the i-th cursor by (dx, dy), clamped into its bounds.
func (c *Canvas[T, A]) MoveCursor(i, dx, dy int) {
	i = c.cursorIndex(i)
	c.cursors[i] = c.cursors[i].MoveBy(dx, dy)
}

// SetCursorOrigin anchors a selection for the i-th cursor at p.
func (c *Canvas[T, A]) SetCursorOrigin(i int, p Position) {
	i = c.cursorIndex(i)
	c.cursors[i] = c.cursors[i].WithOrigin(p)
}

// ClearCursorOrigin drops the i-th cursor's selection anchor.
func (c *Canvas[T, A]) ClearCursorOrigin(i int) {
	i = c.cursorIndex(i)
	c.cursors[i] = c.cursors[i].WithoutOrigin()
}

// CursorCell returns the cell under the i-th cursor. ok is false when the
// cursor lies outside the canvas.
func (c *Canvas[T, A]) CursorCell(i int) (cell Cell[A], ok bool) {
	p := c.Cursor(i).Position()
	if !c.Size().Contains(p) {
		return Cell[A]{}, false
	}
	return c.data.At(p.X, p.Y), true
}

func (c *Canvas[T, A]) cursorIndex(i int) int {
	if i < 0 || i >= len(c.cursors) {
		panic(fmt.Sprintf("canvas: cursor %d out of range (%d cursors)", i, len(c.cursors)))
	}
	return i
}
