// Package core provides the terminal rendering vocabulary shared by the
// renderer, its backends and the palette charsets: colours, styles, screen
// cells and screen rectangles.
//
// This package has no dependencies on the canvas model so that both sides
// can import it without cycles.
package core
