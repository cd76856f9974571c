package canvas

import "fmt"

// Cursor marks a cell on a canvas. An optional origin anchors a
// rectangular selection that ends at the cursor's position.
//
// Cursor is an immutable value type; a Canvas replaces its cursors
// wholesale when they move.
type Cursor struct {
	origin   *Position
	position Position
	bounds   Size
}

// NewCursor creates a cursor at position with the given bounds.
// The position is not clamped and no origin is set.
func NewCursor(position Position, bounds Size) Cursor {
	return Cursor{position: position, bounds: bounds}
}

// Position returns the cursor's cell.
func (c Cursor) Position() Position {
	return c.position
}

// Origin returns the selection anchor, if one is set.
func (c Cursor) Origin() (Position, bool) {
	if c.origin == nil {
		return Position{}, false
	}
	return *c.origin, true
}

// Bounds returns the canvas size the cursor was last told about.
func (c Cursor) Bounds() Size {
	return c.bounds
}

// InBounds returns true if the position lies inside the bounds.
// A canvas shrink can leave a cursor out of bounds.
func (c Cursor) InBounds() bool {
	return c.bounds.Contains(c.position)
}

// MoveTo returns a cursor at p, clamped into bounds.
func (c Cursor) MoveTo(p Position) Cursor {
	c.position = c.bounds.Clamp(p)
	return c
}

// MoveBy returns a cursor shifted by (dx, dy), clamped into bounds.
func (c Cursor) MoveBy(dx, dy int) Cursor {
	c.position = Position{
		X: clampAxis(int(c.position.X)+dx, c.bounds.Width),
		Y: clampAxis(int(c.position.Y)+dy, c.bounds.Height),
	}
	return c
}

// WithOrigin returns a cursor anchored at p.
func (c Cursor) WithOrigin(p Position) Cursor {
	c.origin = &p
	return c
}

// WithoutOrigin returns a cursor with no anchor.
func (c Cursor) WithoutOrigin() Cursor {
	c.origin = nil
	return c
}

// WithBounds returns a cursor with new bounds. The position is kept as is.
func (c Cursor) WithBounds(bounds Size) Cursor {
	c.bounds = bounds
	return c
}

// Selection returns the normalized rectangle spanned by origin and
// position, inclusive on both corners. Without an origin the selection is
// the single cell under the cursor.
func (c Cursor) Selection() (topLeft, bottomRight Position) {
	o, ok := c.Origin()
	if !ok {
		return c.position, c.position
	}
	topLeft = Position{X: min(o.X, c.position.X), Y: min(o.Y, c.position.Y)}
	bottomRight = Position{X: max(o.X, c.position.X), Y: max(o.Y, c.position.Y)}
	return topLeft, bottomRight
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if o, ok := c.Origin(); ok {
		return fmt.Sprintf("Cursor(%s..%s in %s)", o, c.position, c.bounds)
	}
	return fmt.Sprintf("Cursor(%s in %s)", c.position, c.bounds)
}
