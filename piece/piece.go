// Package piece implements the twelve colored piece kinds and the Scope
// filter used to restrict iteration and occupancy over a Position's
// bitboards.
package piece

import "github.com/tinbergen/chesscore/side"

// Kind is an uncolored piece kind.
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// ColoredPieceType enumerates the twelve colored piece kinds. This order is
// load-bearing: bitboard array indexing, Scope-range slicing, the FEN
// character table, and the Zobrist piece mapping all share it.
//
//	WP, WR, WN, WB, WQ, WK, BP, BR, BN, BB, BQ, BK
type ColoredPieceType int

const (
	WP ColoredPieceType = iota
	WR
	WN
	WB
	WQ
	WK
	BP
	BR
	BN
	BB
	BQ
	BK

	// None is a sentinel meaning "no piece on this square". It is not one of
	// the twelve bitboard indices.
	None ColoredPieceType = -1
)

// Count is the number of colored piece types (12).
const Count = 12

// Symbols maps each ColoredPieceType to its FEN character, in enum order.
var Symbols = [Count]byte{
	'P', 'R', 'N', 'B', 'Q', 'K',
	'p', 'r', 'n', 'b', 'q', 'k',
}

// Make builds a ColoredPieceType from a Kind and a Side.
func Make(k Kind, s side.Side) ColoredPieceType {
	if s == side.White {
		return ColoredPieceType(k)
	}
	return ColoredPieceType(k) + 6
}

// Kind returns the uncolored piece kind.
func (p ColoredPieceType) Kind() Kind { return Kind(int(p) % 6) }

// Side returns the piece's color.
func (p ColoredPieceType) Side() side.Side {
	if p < 6 {
		return side.White
	}
	return side.Black
}

// Negate flips the color while keeping the kind.
func (p ColoredPieceType) Negate() ColoredPieceType {
	return (p + 6) % 12
}

func (p ColoredPieceType) String() string {
	if p == None {
		return "-"
	}
	return string(Symbols[p])
}

// Scope is a contiguous range [Lo, Hi) over the twelve bitboards, used to
// restrict iteration and occupancy queries.
type Scope struct {
	Lo, Hi int
}

var (
	// AllScope selects every piece (0..12).
	AllScope = Scope{0, Count}
	// WhiteScope selects only white pieces (0..6).
	WhiteScope = Scope{0, 6}
	// BlackScope selects only black pieces (6..12).
	BlackScope = Scope{6, Count}
	// EmptyScope selects no pieces.
	EmptyScope = Scope{0, 0}
)

// OfSide returns the WhiteScope or BlackScope scope for s.
func OfSide(s side.Side) Scope {
	if s == side.White {
		return WhiteScope
	}
	return BlackScope
}

// Single returns a Scope selecting exactly one ColoredPieceType.
func Single(p ColoredPieceType) Scope {
	return Scope{int(p), int(p) + 1}
}

// Contains reports whether p falls within the scope.
func (sc Scope) Contains(p ColoredPieceType) bool {
	return int(p) >= sc.Lo && int(p) < sc.Hi
}
