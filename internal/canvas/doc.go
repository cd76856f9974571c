// Package canvas provides the editable textmode canvas model.
//
// A Canvas couples a grid of cells with the Charset that gives those cells
// meaning and the cursors that point into it. Each Cell stores a CharID and
// a caller-defined attribute value A; the Charset resolves the CharID into
// a domain item T (a rune, a colour, ...) only when the canvas is read.
//
// Canvases are assembled with a Builder:
//
//	c := canvas.NewBuilder[rune, Colors](charset.Blocks).
//		Size(16, 14).
//		CharCascade().
//		Build()
//
// Reads go through Cells, which yields every cell in row-major order
// together with its coordinates and resolved glyph. Renderers rely on that
// ordering.
//
// A Canvas is not safe for concurrent use.
package canvas
