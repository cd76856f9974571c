package core

// ScreenRect is a half-open rectangle of screen cells: Left and Top are
// inside, Right and Bottom are not.
type ScreenRect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// RectAt returns the width x height rectangle whose top-left cell is (x, y).
func RectAt(x, y, width, height int) ScreenRect {
	return ScreenRect{Top: y, Left: x, Bottom: y + height, Right: x + width}
}

// Width returns the number of columns, never negative.
func (r ScreenRect) Width() int {
	return max(r.Right-r.Left, 0)
}

// Height returns the number of rows, never negative.
func (r ScreenRect) Height() int {
	return max(r.Bottom-r.Top, 0)
}

// IsEmpty reports whether the rectangle covers no cell.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
