package canvas

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/sadie/internal/canvas/charset"
)

type flower int

const (
	dandelion flower = iota
	rose
	peony
	mums
)

type mockCharset[T any] struct {
	items map[charset.CharID]T
}

func (m mockCharset[T]) Char(id charset.CharID) T {
	v, ok := m.items[id]
	if !ok {
		panic("mock charset: unknown id")
	}
	return v
}

func (m mockCharset[T]) Len() uint16 {
	return uint16(len(m.items))
}

func flowers() mockCharset[flower] {
	return mockCharset[flower]{items: map[charset.CharID]flower{
		0: dandelion,
		1: rose,
		2: peony,
		3: mums,
	}}
}

type soil int

const (
	soilUnknown soil = iota
	brown
	green
)

func (soil) Default() soil { return brown }

type sequenceSource struct {
	values []int
	calls  []int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = append(s.values[1:], v)
	return v % n
}

func TestPuttingInAttributes(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(8, 8).Build()

	got := slices.Collect(c.Iter())
	require.Len(t, got, 64)
	for _, cell := range got {
		assert.Equal(t, Cell[soil]{ID: 0, Attr: brown}, cell)
	}

	c.GetMut(4, 4).Attr = green
	assert.Equal(t, Cell[soil]{ID: 0, Attr: green}, c.Get(4, 4))

	changed := 0
	for view := range c.Cells() {
		if *view.Attr != brown {
			changed++
			assert.Equal(t, uint16(4), view.X)
			assert.Equal(t, uint16(4), view.Y)
		}
	}
	assert.Equal(t, 1, changed)
}

func TestDefaultAttr(t *testing.T) {
	assert.Equal(t, brown, DefaultAttr[soil]())
	assert.Equal(t, 0, DefaultAttr[int]())
	assert.Equal(t, struct{}{}, DefaultAttr[struct{}]())
}

func TestBuilder_Defaults(t *testing.T) {
	cs := flowers()
	c := NewBuilder[flower, struct{}](cs).Build()

	assert.Equal(t, Size{Width: 4, Height: 1}, c.Size())
	assert.Equal(t, 4, c.Len())
	require.Equal(t, 1, c.CursorCount())
	assert.Equal(t, Position{}, c.Cursor(0).Position())
	assert.Equal(t, Size{Width: 4, Height: 1}, c.Cursor(0).Bounds())
	_, hasOrigin := c.Cursor(0).Origin()
	assert.False(t, hasOrigin)
}

func TestBuilder_WidthHeight(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Width(3).Height(5).Build()
	assert.Equal(t, Size{Width: 3, Height: 5}, c.Size())
	assert.Equal(t, 15, c.Len())
}

func TestBuilder_Cursors(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).
		Size(4, 4).
		CursorPosition(1, 0).
		CursorPosition(2, 3).
		Build()

	got := slices.Collect(c.Cursors())
	require.Len(t, got, 2)
	assert.Equal(t, Pos(1, 0), got[0].Position())
	assert.Equal(t, Pos(2, 3), got[1].Position())
}

func TestCharCascade(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).CharCascade().Build()

	i := 0
	for cell := range c.Iter() {
		assert.Equal(t, charset.CharID(i), cell.ID)
		assert.Equal(t, brown, cell.Attr)
		i++
	}
	assert.Equal(t, 4, i)

	var glyphs []flower
	for view := range c.Cells() {
		glyphs = append(glyphs, view.Glyph)
	}
	assert.Equal(t, []flower{dandelion, rose, peony, mums}, glyphs)
}

func TestCharCascade_ClampsPastCharset(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(3, 3).CharCascade().Build()

	var ids []charset.CharID
	for cell := range c.Iter() {
		ids = append(ids, cell.ID)
	}
	assert.Equal(t, []charset.CharID{0, 1, 2, 3, 0, 0, 0, 0, 0}, ids)
}

func TestDefaultCells_UsesFinalSize(t *testing.T) {
	var seen []int
	c := NewBuilder[flower, soil](flowers()).
		DefaultCells(func(index int, cs charset.Charset[flower]) Cell[soil] {
			seen = append(seen, index)
			return Cell[soil]{ID: charset.CharID(index % int(cs.Len())), Attr: green}
		}).
		Size(2, 3).
		Build()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, seen)
	assert.Equal(t, Cell[soil]{ID: 1, Attr: green}, c.Get(1, 0))
	assert.Equal(t, Cell[soil]{ID: 1, Attr: green}, c.Get(1, 2))
}

func TestRandomCells(t *testing.T) {
	src := &sequenceSource{values: []int{3, 1, 2}}
	c := NewBuilder[flower, soil](flowers()).Size(3, 2).RandomCells(src).Build()

	var ids []charset.CharID
	for cell := range c.Iter() {
		ids = append(ids, cell.ID)
		assert.Equal(t, brown, cell.Attr)
	}
	assert.Equal(t, []charset.CharID{3, 1, 2, 3, 1, 2}, ids)
	for _, n := range src.calls {
		assert.Equal(t, 4, n)
	}
}

func TestRandomCells_Deterministic(t *testing.T) {
	build := func() []Cell[soil] {
		c := NewBuilder[flower, soil](flowers()).Size(8, 8).RandomCells(NewRandomSource(42)).Build()
		return slices.Collect(c.Iter())
	}
	assert.Equal(t, build(), build())
}

func TestRandomCells_EmptyCharset(t *testing.T) {
	empty := mockCharset[flower]{items: map[charset.CharID]flower{}}
	c := NewBuilder[flower, soil](empty).Size(2, 2).RandomCells(NewRandomSource(1)).Build()
	for cell := range c.Iter() {
		assert.Equal(t, charset.CharID(0), cell.ID)
	}
}

func TestCells_RowMajor(t *testing.T) {
	const w, h = 5, 3
	c := NewBuilder[flower, soil](flowers()).Size(w, h).Build()

	views := slices.Collect(c.Cells())
	require.Len(t, views, w*h)
	for k, v := range views {
		assert.Equal(t, uint16(k%w), v.X, "item %d", k)
		assert.Equal(t, uint16(k/w), v.Y, "item %d", k)
	}
}

func TestCells_AttrAliasesCanvas(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(2, 2).Build()
	for v := range c.Cells() {
		if v.X == 1 && v.Y == 0 {
			*v.Attr = green
		}
	}
	assert.Equal(t, green, c.Get(1, 0).Attr)
	assert.Equal(t, brown, c.Get(0, 1).Attr)
}

func TestIterMut(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(2, 2).Build()
	for cell := range c.IterMut() {
		cell.ID = 2
	}
	for cell := range c.Iter() {
		assert.Equal(t, charset.CharID(2), cell.ID)
	}
}

func TestIter_EarlyBreak(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(4, 4).Build()
	n := 0
	for range c.Cells() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestZeroSizedCanvas(t *testing.T) {
	sizes := []Size{{0, 0}, {0, 4}, {4, 0}}
	for _, s := range sizes {
		t.Run(s.String(), func(t *testing.T) {
			c := NewBuilder[flower, soil](flowers()).Size(s.Width, s.Height).CharCascade().Build()
			assert.Zero(t, c.Len())
			assert.Empty(t, slices.Collect(c.Cells()))
			assert.Empty(t, slices.Collect(c.Iter()))
			assert.Equal(t, 1, c.CursorCount())
		})
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(4, 2).Build()
	assert.Panics(t, func() { c.Get(4, 0) })
	assert.Panics(t, func() { c.GetMut(0, 2) })
}

func TestSetSize_UpdatesBoundsOnly(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).
		Size(8, 8).
		CursorPosition(7, 7).
		CursorPosition(1, 1).
		Build()

	c.SetSize(Size{Width: 4, Height: 16})

	assert.Equal(t, Size{Width: 4, Height: 16}, c.Size())
	for cur := range c.Cursors() {
		assert.Equal(t, Size{Width: 4, Height: 16}, cur.Bounds())
	}

	// Positions are not clamped: (7, 7) is now outside a 4-wide canvas.
	assert.Equal(t, Pos(7, 7), c.Cursor(0).Position())
	assert.False(t, c.Cursor(0).InBounds())
	assert.True(t, c.Cursor(1).InBounds())

	_, ok := c.CursorCell(0)
	assert.False(t, ok)
	_, ok = c.CursorCell(1)
	assert.True(t, ok)
}

func TestSetSize_ZeroWidthYieldsNoCells(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(4, 1).CharCascade().Build()
	c.SetSize(Size{})

	assert.Equal(t, 4, c.Len(), "storage is kept")
	assert.Equal(t, Size{}, c.Size())
	assert.NotPanics(t, func() {
		assert.Empty(t, slices.Collect(c.Cells()))
	})
	assert.Len(t, slices.Collect(c.Iter()), 4)
}

func TestSetSize_ReinterpretsStorage(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(4, 1).CharCascade().Build()
	c.SetSize(Size{Width: 2, Height: 2})

	assert.Equal(t, charset.CharID(2), c.Get(0, 1).ID)
	assert.Equal(t, charset.CharID(3), c.Get(1, 1).ID)
}

func TestCursorMutation(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).Size(4, 3).Build()

	c.SetCursorPosition(0, Pos(9, 9))
	assert.Equal(t, Pos(3, 2), c.Cursor(0).Position())

	c.MoveCursor(0, -10, 0)
	assert.Equal(t, Pos(0, 2), c.Cursor(0).Position())

	c.MoveCursor(0, 2, -1)
	assert.Equal(t, Pos(2, 1), c.Cursor(0).Position())

	c.SetCursorOrigin(0, Pos(0, 0))
	o, ok := c.Cursor(0).Origin()
	require.True(t, ok)
	assert.Equal(t, Pos(0, 0), o)

	c.ClearCursorOrigin(0)
	_, ok = c.Cursor(0).Origin()
	assert.False(t, ok)

	assert.Panics(t, func() { c.MoveCursor(1, 0, 0) })
	assert.Panics(t, func() { c.Cursor(-1) })
}

func TestCursorCell(t *testing.T) {
	c := NewBuilder[flower, soil](flowers()).CharCascade().CursorPosition(2, 0).Build()
	cell, ok := c.CursorCell(0)
	require.True(t, ok)
	assert.Equal(t, charset.CharID(2), cell.ID)
}
