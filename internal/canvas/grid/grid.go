// Package grid provides fixed-capacity flat storage for 2D cell arrays.
//
// A Grid keeps all cells in one contiguous slice in row-major order and only
// remembers its width. Height is always derived as Len()/width, so the same
// storage can be reinterpreted at a new width with SetWidth.
//
// Addressing is index = y*width + x. Out-of-range coordinates panic; callers
// are expected to stay inside the grid.
package grid

import "fmt"

// Grid is a 2D array of T stored as a single row-major slice.
type Grid[T any] struct {
	cells []T
	width uint16
}

// New creates a width*height grid of zero-valued cells.
func New[T any](width, height uint16) *Grid[T] {
	return &Grid[T]{
		cells: make([]T, int(width)*int(height)),
		width: width,
	}
}

// NewFilled creates a width*height grid with every cell set to v.
func NewFilled[T any](width, height uint16, v T) *Grid[T] {
	g := New[T](width, height)
	for i := range g.cells {
		g.cells[i] = v
	}
	return g
}

// FromSlice adopts cells as the grid's storage without copying.
func FromSlice[T any](cells []T, width uint16) *Grid[T] {
	return &Grid[T]{cells: cells, width: width}
}

// Len returns the total number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Width returns the current row width.
func (g *Grid[T]) Width() uint16 {
	return g.width
}

// Sides returns (width, Len()/width). A zero-width grid reports (0, 0).
func (g *Grid[T]) Sides() (width, height uint16) {
	if g.width == 0 {
		return 0, 0
	}
	return g.width, uint16(len(g.cells) / int(g.width))
}

// IndexToCoord converts a flat index into (x, y).
// Only meaningful for i < Len().
func (g *Grid[T]) IndexToCoord(i int) (x, y uint16) {
	w := int(g.width)
	return uint16(i % w), uint16(i / w)
}

// CoordToIndex converts (x, y) into a flat index without bounds checks.
func (g *Grid[T]) CoordToIndex(x, y uint16) int {
	return int(y)*int(g.width) + int(x)
}

// index validates (x, y) and returns its flat index.
func (g *Grid[T]) index(x, y uint16) int {
	i := g.CoordToIndex(x, y)
	if x >= g.width || i >= len(g.cells) {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for %d cells of width %d", x, y, len(g.cells), g.width))
	}
	return i
}

// At returns the cell at (x, y).
func (g *Grid[T]) At(x, y uint16) T {
	return g.cells[g.index(x, y)]
}

// Ptr returns a pointer to the cell at (x, y) for in-place mutation.
func (g *Grid[T]) Ptr(x, y uint16) *T {
	return &g.cells[g.index(x, y)]
}

// Set writes v at (x, y).
func (g *Grid[T]) Set(x, y uint16, v T) {
	g.cells[g.index(x, y)] = v
}

// Slice returns the backing storage in flat order. The slice aliases the grid.
func (g *Grid[T]) Slice() []T {
	return g.cells
}

// SetWidth reinterprets the storage at a new width without moving data.
// The caller must keep Len() a multiple of width; nothing is validated.
func (g *Grid[T]) SetWidth(width uint16) {
	g.width = width
}
