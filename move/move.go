// Package move implements the Move and MoveSet value types shared by the
// generator, move application, and the notation packages.
package move

import (
	"math/bits"

	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/square"
)

// Type distinguishes a promotion from every other move. Castling and
// en-passant captures are not separate Types: Apply recognizes both
// structurally (a king stepping two files, a pawn landing on the prior
// en-passant target) from From/To/Kind alone, the same way the generator
// produces them, so Normal covers quiet moves, plain captures, castling, and
// en-passant captures alike.
type Type int

const (
	Normal Type = iota
	Promotion
)

// PromoKind is the piece a pawn promotes to. Zero value (Knight) is only
// meaningful when the Move's Type is Promotion.
type PromoKind int

const (
	Knight PromoKind = iota
	Bishop
	Rook
	Queen
)

// Kind converts a PromoKind to the corresponding uncolored piece.Kind.
func (p PromoKind) Kind() piece.Kind {
	switch p {
	case Bishop:
		return piece.Bishop
	case Rook:
		return piece.Rook
	case Queen:
		return piece.Queen
	default:
		return piece.Knight
	}
}

// Move is a chess move encoded as a 16 bit unsigned integer:
//
//	0-5:   To (destination) square index
//	6-11:  From (origin) square index
//	12-13: Promotion piece (see PromoKind)
//	14-15: Move type (see Type)
type Move uint16

// New builds a non-promotion move of the given type.
func New(from, to square.Square, t Type) Move {
	return Move(int(to) | int(from)<<6 | int(t)<<14)
}

// NewPromotion builds a promotion move.
func NewPromotion(from, to square.Square, promo PromoKind) Move {
	return Move(int(to) | int(from)<<6 | int(promo)<<12 | int(Promotion)<<14)
}

func (m Move) To() square.Square      { return square.Square(m & 0x3F) }
func (m Move) From() square.Square    { return square.Square((m >> 6) & 0x3F) }
func (m Move) Promo() PromoKind       { return PromoKind((m >> 12) & 0x3) }
func (m Move) Type() Type             { return Type((m >> 14) & 0x3) }
func (m Move) IsPromotion() bool      { return m.Type() == Promotion }

// MoveSet is every destination of one piece: its source square, its kind,
// and a 64-bit mask of destination squares. Iterating a MoveSet yields
// individual Moves, expanding a pawn reaching the last rank into four
// promotion moves.
type MoveSet struct {
	From square.Square
	Kind piece.Kind
	Dest uint64
}

// Moves expands the MoveSet's destination mask into individual Moves. A pawn
// move landing on rank 1 or rank 8 is expanded into the four promotion
// moves instead of one normal move.
func (ms MoveSet) Moves() []Move {
	dest := ms.Dest
	out := make([]Move, 0, piece.Count)
	for dest != 0 {
		idx := bits.TrailingZeros64(dest)
		to := square.Square(idx)
		dest &= dest - 1

		if ms.Kind == piece.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
			out = append(out,
				NewPromotion(ms.From, to, Knight),
				NewPromotion(ms.From, to, Bishop),
				NewPromotion(ms.From, to, Rook),
				NewPromotion(ms.From, to, Queen),
			)
			continue
		}
		out = append(out, New(ms.From, to, Normal))
	}
	return out
}
