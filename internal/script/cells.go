package script

import (
	"github.com/dshills/sadie/internal/canvas"
	"github.com/dshills/sadie/internal/canvas/charset"
)

// AttrFunc derives a cell attribute from a script result.
type AttrFunc[A any] func(Result) A

// Cells adapts generated results to Builder.DefaultCells. Indexes beyond
// results, and ids beyond the charset, yield CharID 0. A nil attr uses
// the attribute type's default.
func Cells[T, A any](results []Result, attr AttrFunc[A]) canvas.CellFunc[T, A] {
	def := canvas.DefaultAttr[A]()
	return func(index int, cs charset.Charset[T]) canvas.Cell[A] {
		if index >= len(results) {
			return canvas.Cell[A]{Attr: def}
		}
		r := results[index]
		cell := canvas.Cell[A]{ID: r.ID, Attr: def}
		if cell.ID >= charset.CharID(cs.Len()) {
			cell.ID = 0
		}
		if attr != nil {
			cell.Attr = attr(r)
		}
		return cell
	}
}
