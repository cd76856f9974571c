package renderer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/canvas/charset"
	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer/backend"
	"github.com/dshills/sadie/internal/renderer/core"
	"github.com/dshills/sadie/internal/renderer/statusline"
)

func shadesCanvas() *canvas.Canvas[rune, gallery.NoAttr] {
	return canvas.NewBuilder[rune, gallery.NoAttr](charset.Shades).CharCascade().Build()
}

func TestAllocator(t *testing.T) {
	a := NewAllocator(100)

	s, err := a.Allocate(10, 10)
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	_, err = a.Allocate(10, 11)
	assert.ErrorIs(t, err, ErrSurfaceTooLarge)

	_, err = a.Allocate(-1, 2)
	assert.Error(t, err)

	_, err = a.Allocate(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, a.Allocated())
}

func TestAllocator_Fits(t *testing.T) {
	a := NewAllocator(0)
	assert.NoError(t, a.Fits(256, 256))
	assert.ErrorIs(t, a.Fits(65535, 65535), ErrSurfaceTooLarge)
	assert.Error(t, a.Fits(-1, 1))
	assert.Zero(t, a.Allocated(), "checking does not allocate")
}

func TestAllocator_Default(t *testing.T) {
	assert.Equal(t, DefaultMaxCells, NewAllocator(0).MaxCells())
}

func TestAllocator_GalleryAddError(t *testing.T) {
	g := gallery.New(NewAllocator(4), zerolog.Nop())

	_, err := g.AddFontOnly(shadesCanvas())
	var addErr *gallery.AddError
	require.ErrorAs(t, err, &addErr)
	assert.ErrorIs(t, err, ErrSurfaceTooLarge)
	assert.Zero(t, g.Len())
}

func TestArrange_Flow(t *testing.T) {
	g := gallery.New(NewAllocator(0), zerolog.Nop())
	a, _ := g.AddFontOnly(shadesCanvas()) // 5x1
	b, _ := g.AddFontOnly(shadesCanvas()) // 5x1
	c, _ := g.AddFontOnly(shadesCanvas()) // 5x1
	squares := canvas.NewBuilder[core.Color, gallery.NoAttr](charset.PICO8).Size(4, 2).Build()
	d, _ := g.AddColorSquares(squares) // 8x2

	extent := Arrange(g, 14, 1)

	ax, ay := a.Offset()
	bx, by := b.Offset()
	cx, cy := c.Offset()
	dx, dy := d.Offset()
	assert.Equal(t, [2]int{0, 0}, [2]int{ax, ay})
	assert.Equal(t, [2]int{6, 0}, [2]int{bx, by})
	assert.Equal(t, [2]int{0, 2}, [2]int{cx, cy})
	assert.Equal(t, [2]int{6, 2}, [2]int{dx, dy})
	assert.Equal(t, 14, extent.Right)
	assert.Equal(t, 4, extent.Bottom)
}

func TestArrange_OversizedFrameOwnRow(t *testing.T) {
	g := gallery.New(NewAllocator(0), zerolog.Nop())
	a, _ := g.AddFontOnly(shadesCanvas())
	a2, _ := g.AddFontOnly(shadesCanvas())

	extent := Arrange(g, 3, 0)
	ax, ay := a.Offset()
	bx, by := a2.Offset()
	assert.Equal(t, [2]int{0, 0}, [2]int{ax, ay})
	assert.Equal(t, [2]int{0, 1}, [2]int{bx, by})
	assert.Equal(t, 5, extent.Right)
}

func newRenderer(t *testing.T, w, h int) (*Renderer, *backend.NullBackend, *gallery.Gallery) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	require.NoError(t, b.Init())
	g := gallery.New(NewAllocator(0), zerolog.Nop())
	_, err := g.AddFontOnly(shadesCanvas())
	require.NoError(t, err)
	return New(b, g, DefaultOptions(), zerolog.Nop()), b, g
}

func TestRender(t *testing.T) {
	r, b, _ := newRenderer(t, 20, 4)

	assert.True(t, r.NeedsRedraw())
	assert.True(t, r.Render())
	assert.Equal(t, 1, b.ShowCount())
	assert.Equal(t, uint64(1), r.FrameCount())
	assert.True(t, strings.HasPrefix(b.Line(0), "╳░▒▓█"), "got %q", b.Line(0))

	// Nothing changed, nothing drawn.
	assert.False(t, r.Render())
	assert.Equal(t, 1, b.ShowCount())

	r.MarkDirty()
	assert.True(t, r.Render())
	assert.Equal(t, 2, b.ShowCount())
}

func TestRender_StatusLine(t *testing.T) {
	r, b, _ := newRenderer(t, 12, 3)
	r.SetStatus("hello")
	r.Render()

	assert.Equal(t, " hello      ", b.Line(2))
	assert.True(t, b.GetCell(0, 2).Style.Background.Equals(core.ColorGray))

	r.SetStatus("a status line longer than the screen")
	r.Render()
	assert.Equal(t, " a status li", b.Line(2))
	assert.Equal(t, "a status line longer than the screen", r.Status())
}

func TestRender_FullRedrawClears(t *testing.T) {
	r, b, _ := newRenderer(t, 20, 4)
	r.Render()

	b.SetCell(19, 1, core.NewStyledCell('!', core.DefaultStyle()))
	r.MarkDirty()
	r.Render()
	assert.Equal(t, '!', b.GetCell(19, 1).Rune, "partial redraw keeps stray cells")

	r.Resize(20, 4)
	r.Render()
	assert.Equal(t, ' ', b.GetCell(19, 1).Rune)
}

func TestResize_Relayout(t *testing.T) {
	r, _, g := newRenderer(t, 20, 4)
	_, err := g.AddFontOnly(shadesCanvas())
	require.NoError(t, err)

	r.Resize(20, 4)
	f, _ := g.Frame(2)
	x, y := f.Offset()
	assert.Equal(t, 7, x)
	assert.Equal(t, 0, y)

	r.Resize(8, 10)
	x, y = f.Offset()
	assert.Equal(t, 0, x)
	assert.Equal(t, 3, y)
}

func TestRender_StatusRightAndMessage(t *testing.T) {
	r, b, _ := newRenderer(t, 20, 3)
	r.SetStatus("left")
	r.SetStatusRight("1,2")
	r.Render()
	assert.Equal(t, " left           1,2 ", b.Line(2))
	assert.Equal(t, "1,2", r.StatusRight())

	r.SetMessage("careful", statusline.MessageWarning)
	assert.True(t, r.Render())
	assert.Equal(t, " careful            ", b.Line(2))

	r.ClearMessage()
	assert.True(t, r.NeedsRedraw())
	r.Render()
	r.ClearMessage()
	assert.False(t, r.NeedsRedraw(), "clearing nothing is not a change")
}
