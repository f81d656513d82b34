// Package position implements the bitboard Position aggregate: twelve
// per-piece bitboards, turn, castling rights, en-passant target, and move
// clocks, together with the pure functional Apply that advances a Position
// by one move.
package position

import (
	"fmt"
	"math/bits"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

// Castling rights bitmask, packed into a 4-bit field.
const (
	WhiteShort = 1 << iota
	WhiteLong
	BlackShort
	BlackLong
)

// Home squares used by castling-rights bookkeeping and castle detection.
const (
	A1 = square.Square(0)
	E1 = square.Square(4)
	H1 = square.Square(7)
	A8 = square.Square(56)
	E8 = square.Square(60)
	H8 = square.Square(63)

	B1 = square.Square(1)
	C1 = square.Square(2)
	D1 = square.Square(3)
	F1 = square.Square(5)
	G1 = square.Square(6)
	B8 = square.Square(57)
	C8 = square.Square(58)
	D8 = square.Square(59)
	F8 = square.Square(61)
	G8 = square.Square(62)
)

// Position is the core bitboard aggregate. It is immutable from the
// caller's perspective: Apply returns a new value rather than mutating the
// receiver.
type Position struct {
	Bitboards      [piece.Count]uint64
	Turn           side.Side
	CastlingRights int
	// EnPassant is square.None when no en-passant capture is available.
	EnPassant      square.Square
	HalfmoveClock  int
	FullmoveNumber int
}

// Empty returns a Position with no pieces, White to move, move 1.
func Empty() Position {
	return Position{
		Turn:           side.White,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
}

// PieceAt returns the piece occupying sq, or piece.None if empty.
func (p *Position) PieceAt(sq square.Square) piece.ColoredPieceType {
	bit := sq.Bit()
	for i := 0; i < piece.Count; i++ {
		if p.Bitboards[i]&bit != 0 {
			return piece.ColoredPieceType(i)
		}
	}
	return piece.None
}

// Occupancy returns the union of the bitboards selected by sc.
func (p *Position) Occupancy(sc piece.Scope) uint64 {
	var bb uint64
	for i := sc.Lo; i < sc.Hi; i++ {
		bb |= p.Bitboards[i]
	}
	return bb
}

// OccupancyAll returns every occupied square.
func (p *Position) OccupancyAll() uint64 {
	return p.Occupancy(piece.AllScope)
}

// KingSquare returns the square of s's king. Panics if s has no king — a
// kingless side reaching here is a programming error upstream.
func (p *Position) KingSquare(s side.Side) square.Square {
	bb := p.Bitboards[piece.Make(piece.King, s)]
	if bb == 0 {
		panic("position: side has no king")
	}
	return square.Square(bits.TrailingZeros64(bb))
}

func (p *Position) placePiece(pt piece.ColoredPieceType, sq square.Square) {
	p.Bitboards[pt] |= sq.Bit()
}

func (p *Position) removePiece(pt piece.ColoredPieceType, sq square.Square) {
	p.Bitboards[pt] &^= sq.Bit()
}

// clearSquare removes any piece occupying sq, from whichever bitboard holds
// it. Used to apply captures uniformly without knowing the captured kind in
// advance.
func (p *Position) clearSquare(sq square.Square) {
	bit := sq.Bit()
	for i := 0; i < piece.Count; i++ {
		p.Bitboards[i] &^= bit
	}
}

// Apply advances the position by one move and returns the resulting
// Position. It does not itself verify legality — the caller (search, a SAN
// parser, a test harness) must have produced m through the generator. If a
// generator-produced move is applied, every invariant in spec §3 is
// preserved.
//
// The ordering constraints of spec §4.4 hold below: castling-rights update
// happens after the rook has moved; the en-passant target is cleared before
// being re-set on a double push.
func (p Position) Apply(m move.Move) Position {
	np := p
	from, to := m.From(), m.To()
	mover := p.PieceAt(from)
	if mover == piece.None {
		panic(fmt.Sprintf("position: apply: no piece on source square %s", from))
	}

	isCastle := mover.Kind() == piece.King && abs(to.File()-from.File()) == 2

	if isCastle {
		// Step 1: translate the king's two-file step into a king move plus
		// a paired rook move.
		np.clearSquare(to)
		np.removePiece(mover, from)
		np.placePiece(mover, to)

		rookPiece := piece.Make(piece.Rook, mover.Side())
		var rookFrom, rookTo square.Square
		switch to {
		case G1:
			rookFrom, rookTo = H1, F1
		case C1:
			rookFrom, rookTo = A1, D1
		case G8:
			rookFrom, rookTo = H8, F8
		case C8:
			rookFrom, rookTo = A8, D8
		}
		np.removePiece(rookPiece, rookFrom)
		np.placePiece(rookPiece, rookTo)

		// Castling is neither a pawn move nor a capture.
		np.HalfmoveClock++
	} else {
		captured := p.PieceAt(to)
		np.clearSquare(to)
		np.removePiece(mover, from)
		if m.IsPromotion() {
			np.placePiece(piece.Make(m.Promo().Kind(), mover.Side()), to)
		} else {
			np.placePiece(mover, to)
		}

		// En-passant capture: destination equals the prior en-passant
		// target and the mover is a pawn.
		if mover.Kind() == piece.Pawn && to == p.EnPassant && p.EnPassant != square.None {
			var behind square.Square
			if mover.Side() == side.White {
				behind = square.Square(int(to) - 8)
			} else {
				behind = square.Square(int(to) + 8)
			}
			np.removePiece(piece.Make(piece.Pawn, mover.Side().Opposite()), behind)
			captured = piece.Make(piece.Pawn, mover.Side().Opposite())
		}

		// Halfmove clock: reset on pawn move or capture.
		if mover.Kind() == piece.Pawn || captured != piece.None {
			np.HalfmoveClock = 0
		} else {
			np.HalfmoveClock++
		}
	}

	// Step 4: castling-rights update. Any move from or to a home square
	// clears the corresponding right(s).
	np.CastlingRights &^= rightsClearedBy(from)
	np.CastlingRights &^= rightsClearedBy(to)

	// Step 5: en-passant target update. Clear the prior target first, then
	// set a new one only for a double pawn push.
	np.EnPassant = square.None
	if mover.Kind() == piece.Pawn {
		delta := int(to) - int(from)
		if delta == 16 {
			np.EnPassant = square.Square(int(from) + 8)
		} else if delta == -16 {
			np.EnPassant = square.Square(int(from) - 8)
		}
	}

	// Step 7: turn flip and fullmove increment.
	np.Turn = p.Turn.Opposite()
	if np.Turn == side.White {
		np.FullmoveNumber++
	}

	return np
}

// rightsClearedBy returns the castling-rights bits that become dead once a
// piece leaves or a capture lands on sq (a king or rook home square).
func rightsClearedBy(sq square.Square) int {
	switch sq {
	case E1:
		return WhiteShort | WhiteLong
	case A1:
		return WhiteLong
	case H1:
		return WhiteShort
	case E8:
		return BlackShort | BlackLong
	case A8:
		return BlackLong
	case H8:
		return BlackShort
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
