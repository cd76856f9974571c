package canvas

import (
	"math/rand/v2"

	"github.com/dshills/sadie/internal/canvas/charset"
)

// RandomSource supplies random integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a PCG-backed source. The same seed always yields
// the same sequence.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomCells is the CellFunc behind Builder.RandomCells. An empty charset
// yields CharID 0 everywhere.
func RandomCells[T, A any](src RandomSource) CellFunc[T, A] {
	attr := DefaultAttr[A]()
	return func(_ int, cs charset.Charset[T]) Cell[A] {
		n := int(cs.Len())
		if n == 0 {
			return Cell[A]{Attr: attr}
		}
		return Cell[A]{ID: charset.CharID(src.IntN(n)), Attr: attr}
	}
}
