package renderer

import (
	"errors"
	"fmt"

	"github.com/dshills/sadie/internal/gallery"
	"github.com/dshills/sadie/internal/renderer/backend"
)

// ErrSurfaceTooLarge is returned when a surface would exceed the cell budget.
var ErrSurfaceTooLarge = errors.New("surface exceeds cell budget")

// DefaultMaxCells is the default per-surface cell budget.
const DefaultMaxCells = 1 << 16

// Allocator hands out backend surfaces up to a per-surface cell budget.
type Allocator struct {
	maxCells int
	live     int
}

var _ gallery.SurfaceAllocator = (*Allocator)(nil)

// NewAllocator creates an allocator. A non-positive maxCells uses
// DefaultMaxCells.
func NewAllocator(maxCells int) *Allocator {
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &Allocator{maxCells: maxCells}
}

// Allocate creates a width x height surface. Zero-sized surfaces are valid.
func (a *Allocator) Allocate(width, height int) (gallery.Surface, error) {
	if err := a.Fits(width, height); err != nil {
		return nil, err
	}
	a.live++
	return backend.NewSurface(width, height), nil
}

// Fits reports whether a width x height surface could be allocated, so
// callers can reject a canvas before building it.
func (a *Allocator) Fits(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	if cells := int64(width) * int64(height); cells > int64(a.maxCells) {
		return fmt.Errorf("%w: %dx%d is %d cells, limit %d", ErrSurfaceTooLarge, width, height, cells, a.maxCells)
	}
	return nil
}

// Allocated returns how many surfaces have been handed out.
func (a *Allocator) Allocated() int {
	return a.live
}

// MaxCells returns the per-surface cell budget.
func (a *Allocator) MaxCells() int {
	return a.maxCells
}
