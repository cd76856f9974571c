package gallery

import (
	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/renderer/core"
)

// Frame is a registered canvas, its surface and where it is drawn.
type Frame struct {
	id       ID
	x, y     int
	contents Variant
	surface  Surface
}

// ID returns the frame's identifier.
func (f *Frame) ID() ID {
	return f.id
}

// Contents returns the framed canvas.
func (f *Frame) Contents() Variant {
	return f.contents
}

// Offset returns the destination coordinate of the frame's top-left cell.
func (f *Frame) Offset() (x, y int) {
	return f.x, f.y
}

// SetOffset moves the frame.
func (f *Frame) SetOffset(x, y int) {
	f.x, f.y = x, y
}

// Bounds returns the destination rectangle the frame covers.
func (f *Frame) Bounds() core.ScreenRect {
	w, h := f.surface.Size()
	return core.RectAt(f.x, f.y, w, h)
}

// Draw repaints the surface from the canvas and blits it at the offset.
// A canvas resized since the last draw resizes the surface with it.
func (f *Frame) Draw(dst Painter) {
	if w, h := surfaceSize(f.contents); !f.surfaceIs(w, h) {
		f.surface.Resize(w, h)
	}
	f.surface.Clear()
	f.contents.paint(f.surface)
	f.surface.BlitTo(dst, f.x, f.y)
}

func (f *Frame) surfaceIs(width, height int) bool {
	w, h := f.surface.Size()
	return w == width && h == height
}

// CellAt maps a destination coordinate to a canvas cell of this frame.
func (f *Frame) CellAt(x, y int) (canvas.Position, bool) {
	if !f.Bounds().Contains(x, y) {
		return canvas.Position{}, false
	}
	gw, gh := f.contents.GlyphSize()
	p := canvas.Pos(uint16((x-f.x)/gw), uint16((y-f.y)/gh))
	if !f.contents.Size().Contains(p) {
		return canvas.Position{}, false
	}
	return p, true
}
