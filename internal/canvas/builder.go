package canvas

import (
	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/canvas/grid"
)

// CellFunc produces the initial cell for a flat index.
type CellFunc[T, A any] func(index int, cs charset.Charset[T]) Cell[A]

// Builder assembles a Canvas. The zero value is not usable; start with
// NewBuilder.
type Builder[T, A any] struct {
	size     Size
	charset  charset.Charset[T]
	cursors  []Position
	defaults CellFunc[T, A]
}

// NewBuilder starts a canvas over cs. The default size is one row holding
// every id of cs.
func NewBuilder[T, A any](cs charset.Charset[T]) *Builder[T, A] {
	return &Builder[T, A]{
		size:    Size{Width: cs.Len(), Height: 1},
		charset: cs,
	}
}

// Size sets the canvas dimensions.
func (b *Builder[T, A]) Size(width, height uint16) *Builder[T, A] {
	b.size = Size{Width: width, Height: height}
	return b
}

// Width sets the canvas width.
func (b *Builder[T, A]) Width(width uint16) *Builder[T, A] {
	b.size.Width = width
	return b
}

// Height sets the canvas height.
func (b *Builder[T, A]) Height(height uint16) *Builder[T, A] {
	b.size.Height = height
	return b
}

// CursorPosition adds a cursor. Call it once per cursor.
func (b *Builder[T, A]) CursorPosition(x, y uint16) *Builder[T, A] {
	b.cursors = append(b.cursors, Position{X: x, Y: y})
	return b
}

// DefaultCells seeds the canvas with fn, called once per flat index when
// Build runs. A later call replaces an earlier one.
func (b *Builder[T, A]) DefaultCells(fn CellFunc[T, A]) *Builder[T, A] {
	b.defaults = fn
	return b
}

// CharCascade gives each cell its own flat index as CharID, so the canvas
// shows every glyph of the charset once. Indexes past the end of the
// charset get CharID 0.
func (b *Builder[T, A]) CharCascade() *Builder[T, A] {
	return b.DefaultCells(CascadeCells[T, A]())
}

// RandomCells gives each cell a CharID drawn from src.
func (b *Builder[T, A]) RandomCells(src RandomSource) *Builder[T, A] {
	return b.DefaultCells(RandomCells[T, A](src))
}

// Build creates the canvas. A builder without cursors yields a canvas with
// a single cursor at (0, 0). Zero sizes are allowed and produce a canvas
// without cells.
func (b *Builder[T, A]) Build() *Canvas[T, A] {
	positions := b.cursors
	if len(positions) == 0 {
		positions = []Position{{}}
	}
	cursors := make([]Cursor, len(positions))
	for i, p := range positions {
		cursors[i] = NewCursor(p, b.size)
	}

	var data *grid.Grid[Cell[A]]
	if b.defaults != nil {
		cells := make([]Cell[A], b.size.Area())
		for i := range cells {
			cells[i] = b.defaults(i, b.charset)
		}
		data = grid.FromSlice(cells, b.size.Width)
	} else {
		data = grid.NewFilled(b.size.Width, b.size.Height, Cell[A]{Attr: DefaultAttr[A]()})
	}

	return &Canvas[T, A]{
		data:    data,
		charset: b.charset,
		cursors: cursors,
	}
}

// CascadeCells is the CellFunc behind Builder.CharCascade.
func CascadeCells[T, A any]() CellFunc[T, A] {
	attr := DefaultAttr[A]()
	return func(index int, cs charset.Charset[T]) Cell[A] {
		var id charset.CharID
		if index < int(cs.Len()) {
			id = charset.CharID(index)
		}
		return Cell[A]{ID: id, Attr: attr}
	}
}
