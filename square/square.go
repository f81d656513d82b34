// Package square implements the 0..63 board index and its rank/file and
// algebraic projections.
package square

import "fmt"

// Square is a board index in 0..63. Rank = index/8 (0 = rank 1, 7 = rank 8).
// File = index%8 (0 = file a, 7 = file h).
type Square int

// None is the sentinel "no square" value, used for an absent en-passant
// target. It is deliberately outside 0..63 so it can never collide with a1.
const None Square = -1

// New returns the Square for the given index. It panics if index is outside
// 0..63 — an out-of-range square is a programming error, never a runtime
// input error (see spec §7, OutOfRange).
func New(index int) Square {
	if index < 0 || index > 63 {
		panic(fmt.Sprintf("square: index %d out of range 0..63", index))
	}
	return Square(index)
}

// FromRankFile builds a Square from a 0-based rank and file.
func FromRankFile(rank, file int) Square {
	return New(rank*8 + file)
}

// Rank returns 0..7, 0 = rank 1.
func (s Square) Rank() int { return int(s) / 8 }

// File returns 0..7, 0 = file a.
func (s Square) File() int { return int(s) % 8 }

// Index returns the raw 0..63 board index.
func (s Square) Index() int { return int(s) }

// Bit returns the 64-bit mask with only this square's bit set.
func (s Square) Bit() uint64 { return uint64(1) << uint(s) }

// FromAlgebraic parses a two-character algebraic square such as "e4".
// Returns false if str is not a well-formed algebraic square.
func FromAlgebraic(str string) (Square, bool) {
	if len(str) != 2 {
		return 0, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return FromRankFile(int(rank-'1'), int(file-'a')), true
}

// String returns the algebraic representation, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Strings is the full board of precomputed algebraic names, indexed by Square.
var Strings = func() (out [64]string) {
	for i := range out {
		out[i] = Square(i).String()
	}
	return out
}()
