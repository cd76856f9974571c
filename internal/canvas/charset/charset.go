// Package charset decouples the identifiers stored in a canvas from what
// they render as.
//
// A Charset resolves a small integer CharID into a domain value: a rune for
// terminal glyph sets, a colour for palettes. Charsets are values; copying
// one is cheap because the underlying tables are shared, immutable and
// referenced by pointer.
package charset

// CharID identifies a glyph within a Charset. It is meaningless without the
// Charset that defines it.
type CharID uint16

// Charset resolves CharIDs into items of type T.
//
// Char must be total over 0..Len()-1. Resolving an id >= Len() is a
// programmer error and panics.
type Charset[T any] interface {
	// Char returns the item for id.
	Char(id CharID) T

	// Len returns the number of resolvable ids.
	Len() uint16
}

// Sized is implemented by charsets that know how many terminal cells one
// glyph occupies when drawn.
type Sized interface {
	GlyphSize() (width, height int)
}

// GlyphSize reports the glyph size of cs, defaulting to a single cell.
// Non-positive sides count as one cell.
func GlyphSize(cs any) (width, height int) {
	width, height = 1, 1
	if s, ok := cs.(Sized); ok {
		width, height = s.GlyphSize()
	}
	return max(width, 1), max(height, 1)
}
