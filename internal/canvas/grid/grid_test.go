package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockType int

const (
	mockA mockType = iota
	mockB
)

func TestManipulation(t *testing.T) {
	g := New[mockType](2, 2)
	require.Equal(t, 4, g.Len())
	assert.Equal(t, mockA, g.At(0, 0))

	g.Set(0, 0, mockB)
	assert.Equal(t, mockB, g.At(0, 0))
}

func TestNew_AllDefault(t *testing.T) {
	sizes := [][2]uint16{{0, 0}, {1, 1}, {3, 5}, {16, 14}, {255, 3}}
	for _, s := range sizes {
		g := New[mockType](s[0], s[1])
		assert.Equal(t, int(s[0])*int(s[1]), g.Len(), "size %v", s)
		for _, c := range g.Slice() {
			assert.Equal(t, mockA, c)
		}
	}
}

func TestNewFilled(t *testing.T) {
	g := NewFilled(3, 2, "x")
	require.Equal(t, 6, g.Len())
	for _, c := range g.Slice() {
		assert.Equal(t, "x", c)
	}
}

func TestSides(t *testing.T) {
	g := New[int](4, 3)
	w, h := g.Sides()
	assert.Equal(t, uint16(4), w)
	assert.Equal(t, uint16(3), h)

	empty := New[int](0, 5)
	w, h = empty.Sides()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestIndexToCoord_RoundTrip(t *testing.T) {
	g := New[int](7, 5)
	for i := 0; i < g.Len(); i++ {
		x, y := g.IndexToCoord(i)
		require.Less(t, x, uint16(7))
		require.Less(t, y, uint16(5))
		assert.Equal(t, i, int(y)*7+int(x))
		assert.Equal(t, i, g.CoordToIndex(x, y))
	}
}

func TestIndexToCoord_LargeGrid(t *testing.T) {
	g := New[byte](300, 300)
	x, y := g.IndexToCoord(g.Len() - 1)
	assert.Equal(t, uint16(299), x)
	assert.Equal(t, uint16(299), y)
}

func TestSet_Locality(t *testing.T) {
	g := New[int](5, 4)
	g.Set(3, 2, 42)

	for i, v := range g.Slice() {
		x, y := g.IndexToCoord(i)
		if x == 3 && y == 2 {
			assert.Equal(t, 42, v)
			continue
		}
		assert.Zero(t, v, "cell (%d, %d) changed", x, y)
	}
}

func TestPtr_MutatesInPlace(t *testing.T) {
	g := New[int](2, 2)
	*g.Ptr(1, 1) = 9
	assert.Equal(t, 9, g.At(1, 1))
	assert.Equal(t, 9, g.Slice()[3])
}

func TestOutOfRangePanics(t *testing.T) {
	g := New[int](3, 2)

	assert.Panics(t, func() { g.At(3, 0) }, "x == width")
	assert.Panics(t, func() { g.At(0, 2) }, "y == height")
	assert.Panics(t, func() { g.Set(5, 5, 1) })
	assert.Panics(t, func() { _ = g.Ptr(0, 9) })
	assert.NotPanics(t, func() { g.At(2, 1) })
}

func TestSetWidth_Reinterprets(t *testing.T) {
	g := FromSlice([]int{0, 1, 2, 3, 4, 5}, 3)
	assert.Equal(t, 4, g.At(1, 1))

	g.SetWidth(2)
	w, h := g.Sides()
	assert.Equal(t, uint16(2), w)
	assert.Equal(t, uint16(3), h)
	assert.Equal(t, 3, g.At(1, 1))
	assert.Equal(t, 6, g.Len())
}
