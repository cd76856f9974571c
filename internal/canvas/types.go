package canvas

import (
	"fmt"

	"github.com/dshills/sadie/internal/canvas/charset"
)

// Position is a cell coordinate on a canvas. (0, 0) is the top-left cell.
type Position struct {
	X, Y uint16
}

// Pos creates a position.
func Pos(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a canvas extent in cells.
type Size struct {
	Width, Height uint16
}

// Area returns Width*Height.
func (s Size) Area() int {
	return int(s.Width) * int(s.Height)
}

// IsEmpty returns true if the size has no cells.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Contains returns true if p addresses a cell inside s.
func (s Size) Contains(p Position) bool {
	return p.X < s.Width && p.Y < s.Height
}

// Clamp returns p moved onto the nearest cell inside s.
// An empty size clamps everything to the origin.
func (s Size) Clamp(p Position) Position {
	return Position{X: clampAxis(int(p.X), s.Width), Y: clampAxis(int(p.Y), s.Height)}
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func clampAxis(v int, extent uint16) uint16 {
	if v < 0 || extent == 0 {
		return 0
	}
	if v >= int(extent) {
		return extent - 1
	}
	return uint16(v)
}

// Cell is one canvas slot: a CharID plus per-cell attributes.
type Cell[A any] struct {
	ID   charset.CharID
	Attr A
}

// CellView is one cell as seen by a renderer: its coordinates, the item its
// CharID resolves to, and a pointer to its attributes inside the canvas.
type CellView[T, A any] struct {
	X, Y  uint16
	Glyph T
	Attr  *A
}

// Defaulter is implemented by attribute types whose default differs from
// their zero value.
type Defaulter[A any] interface {
	Default() A
}

// DefaultAttr returns A's Default() when A implements Defaulter, otherwise
// the zero value.
func DefaultAttr[A any]() A {
	var zero A
	if d, ok := any(zero).(Defaulter[A]); ok {
		return d.Default()
	}
	return zero
}
