// Package gallery keeps the set of canvases on screen.
//
// Each registered canvas is wrapped in a Frame that owns an off-screen
// Surface and a placement offset. Drawing repaints every frame's surface
// from its canvas and blits it onto the destination.
package gallery

import (
	"iter"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/renderer/backend"
	"github.com/dshills/sadie/internal/renderer/core"
)

// ID identifies a frame. IDs start at 1, increase monotonically and are
// never reused.
type ID uint32

// Painter is the destination frames are blitted onto.
type Painter = backend.Target

// Surface is the off-screen buffer a frame paints its canvas into.
type Surface interface {
	backend.Target
	GetCell(x, y int) core.Cell
	Fill(rect core.ScreenRect, cell core.Cell)
	Clear()
	Resize(width, height int)
	BlitTo(dst backend.Target, x, y int)
}

// SurfaceAllocator creates surfaces for new frames.
type SurfaceAllocator interface {
	Allocate(width, height int) (Surface, error)
}

// Registry is read access to a set of canvases.
type Registry interface {
	AllIDs() []ID
	Canvas(id ID) (Variant, bool)
}

// AllCanvases yields every (id, canvas) pair that r can resolve, in the
// order r lists its IDs.
func AllCanvases(r Registry) iter.Seq2[ID, Variant] {
	return func(yield func(ID, Variant) bool) {
		for _, id := range r.AllIDs() {
			v, ok := r.Canvas(id)
			if !ok {
				continue
			}
			if !yield(id, v) {
				return
			}
		}
	}
}

// Gallery owns the frames on screen.
type Gallery struct {
	alloc  SurfaceAllocator
	log    zerolog.Logger
	nextID ID
	frames map[ID]*Frame
}

var _ Registry = (*Gallery)(nil)

// New creates an empty gallery.
func New(alloc SurfaceAllocator, log zerolog.Logger) *Gallery {
	return &Gallery{
		alloc:  alloc,
		log:    log.With().Str("component", "gallery").Logger(),
		nextID: 1,
		frames: make(map[ID]*Frame),
	}
}

// AddColoredFont registers a glyph canvas with per-cell colours.
func (g *Gallery) AddColoredFont(c *canvas.Canvas[rune, CellColors]) (*Frame, error) {
	return g.add(ColoredFont{Canvas: c})
}

// AddFontOnly registers a glyph canvas without per-cell colours.
func (g *Gallery) AddFontOnly(c *canvas.Canvas[rune, NoAttr]) (*Frame, error) {
	return g.add(FontOnly{Canvas: c})
}

// AddColorSquares registers a palette canvas.
func (g *Gallery) AddColorSquares(c *canvas.Canvas[core.Color, NoAttr]) (*Frame, error) {
	return g.add(ColorSquares{Canvas: c})
}

func (g *Gallery) add(v Variant) (*Frame, error) {
	id := g.nextID
	g.nextID++

	w, h := surfaceSize(v)
	surface, err := g.alloc.Allocate(w, h)
	if err != nil {
		return nil, &AddError{ID: id, Kind: v.Kind(), Err: err}
	}

	f := &Frame{id: id, contents: v, surface: surface}
	g.frames[id] = f

	g.log.Debug().
		Uint32("id", uint32(id)).
		Stringer("kind", v.Kind()).
		Stringer("size", v.Size()).
		Int("surface_width", w).
		Int("surface_height", h).
		Msg("frame added")
	return f, nil
}

// AllIDs returns the registered IDs in ascending order.
func (g *Gallery) AllIDs() []ID {
	return slices.Sorted(maps.Keys(g.frames))
}

// Canvas returns the canvas registered under id.
func (g *Gallery) Canvas(id ID) (Variant, bool) {
	f, ok := g.frames[id]
	if !ok {
		return nil, false
	}
	return f.contents, true
}

// Frame returns the frame registered under id.
func (g *Gallery) Frame(id ID) (*Frame, bool) {
	f, ok := g.frames[id]
	return f, ok
}

// Len returns the number of frames.
func (g *Gallery) Len() int {
	return len(g.frames)
}

// Draw repaints every frame and blits it onto dst, in ascending ID order.
func (g *Gallery) Draw(dst Painter) {
	for _, id := range g.AllIDs() {
		g.frames[id].Draw(dst)
	}
}

// CellAt maps a destination coordinate to the canvas cell drawn there.
// When frames overlap the one drawn last wins.
func (g *Gallery) CellAt(x, y int) (ID, canvas.Position, bool) {
	ids := g.AllIDs()
	for _, id := range slices.Backward(ids) {
		if p, ok := g.frames[id].CellAt(x, y); ok {
			return id, p, true
		}
	}
	return 0, canvas.Position{}, false
}

func surfaceSize(v Variant) (width, height int) {
	gw, gh := v.GlyphSize()
	size := v.Size()
	return int(size.Width) * gw, int(size.Height) * gh
}
