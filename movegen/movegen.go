// Package movegen implements pseudo-legal and legal move generation, check
// detection, and checkmate/stalemate classification over a position.Position.
package movegen

import (
	"github.com/tinbergen/chesscore/attacks"
	"github.com/tinbergen/chesscore/bitboard"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

// Generate returns every pseudo-legal MoveSet for the side to move. A
// MoveSet with an empty destination mask is never emitted.
func Generate(p *position.Position) []move.MoveSet {
	own := p.Occupancy(piece.OfSide(p.Turn))
	enemy := p.Occupancy(piece.OfSide(p.Turn.Opposite()))
	free := ^(own | enemy)

	scope := piece.OfSide(p.Turn)
	out := make([]move.MoveSet, 0, 16)
	for pt := scope.Lo; pt < scope.Hi; pt++ {
		bb := p.Bitboards[pt]
		kind := piece.ColoredPieceType(pt).Kind()
		for bb != 0 {
			sq := square.Square(bitboard.PopLSB(&bb))
			dest := destinationsFor(p, sq, kind, own, enemy, free)
			if dest != 0 {
				out = append(out, move.MoveSet{From: sq, Kind: kind, Dest: dest})
			}
		}
	}
	return out
}

// GenerateFor restricts generation to the piece on sq. Reports false if sq
// is empty, holds the opponent's piece, or the piece has no destinations.
func GenerateFor(p *position.Position, sq square.Square) (move.MoveSet, bool) {
	pt := p.PieceAt(sq)
	if pt == piece.None || pt.Side() != p.Turn {
		return move.MoveSet{}, false
	}
	own := p.Occupancy(piece.OfSide(p.Turn))
	enemy := p.Occupancy(piece.OfSide(p.Turn.Opposite()))
	free := ^(own | enemy)

	dest := destinationsFor(p, sq, pt.Kind(), own, enemy, free)
	if dest == 0 {
		return move.MoveSet{}, false
	}
	return move.MoveSet{From: sq, Kind: pt.Kind(), Dest: dest}, true
}

func destinationsFor(p *position.Position, sq square.Square, kind piece.Kind, own, enemy, free uint64) uint64 {
	switch kind {
	case piece.Knight:
		return attacks.Knight[sq] &^ own
	case piece.King:
		dest := attacks.King[sq] &^ own
		dest |= castlingDestinations(p, sq)
		return dest
	case piece.Bishop:
		return attacks.Bishop(sq, free) &^ own
	case piece.Rook:
		return attacks.Rook(sq, free) &^ own
	case piece.Queen:
		return attacks.Queen(sq, free) &^ own
	case piece.Pawn:
		return pawnDestinations(p, sq, enemy, free)
	}
	return 0
}

func pawnDestinations(p *position.Position, sq square.Square, enemy, free uint64) uint64 {
	var dest uint64
	bb := sq.Bit()

	dir := bitboard.North
	startRank := 1
	if p.Turn == side.Black {
		dir = bitboard.South
		startRank = 6
	}

	one := bitboard.Shift(bb, dir)
	if one&free != 0 {
		dest |= one
		if sq.Rank() == startRank {
			two := bitboard.Shift(one, dir)
			if two&free != 0 {
				dest |= two
			}
		}
	}

	captures := attacks.Pawn[p.Turn][sq]
	dest |= captures & enemy
	if p.EnPassant != square.None && captures&p.EnPassant.Bit() != 0 {
		dest |= p.EnPassant.Bit()
	}
	return dest
}

// castlingDestinations returns the king's castling destination squares (g1,
// c1, g8, or c8) that are currently legal, for a king standing on sq.
func castlingDestinations(p *position.Position, sq square.Square) uint64 {
	occ := p.OccupancyAll()
	var dest uint64

	switch {
	case p.Turn == side.White && sq == position.E1:
		if p.CastlingRights&position.WhiteShort != 0 &&
			occ&(position.F1.Bit()|position.G1.Bit()) == 0 &&
			!attackedIgnoringKing(p, position.E1) &&
			!attackedIgnoringKing(p, position.F1) &&
			!attackedIgnoringKing(p, position.G1) {
			dest |= position.G1.Bit()
		}
		if p.CastlingRights&position.WhiteLong != 0 &&
			occ&(position.B1.Bit()|position.C1.Bit()|position.D1.Bit()) == 0 &&
			!attackedIgnoringKing(p, position.E1) &&
			!attackedIgnoringKing(p, position.D1) &&
			!attackedIgnoringKing(p, position.C1) {
			dest |= position.C1.Bit()
		}
	case p.Turn == side.Black && sq == position.E8:
		if p.CastlingRights&position.BlackShort != 0 &&
			occ&(position.F8.Bit()|position.G8.Bit()) == 0 &&
			!attackedIgnoringKing(p, position.E8) &&
			!attackedIgnoringKing(p, position.F8) &&
			!attackedIgnoringKing(p, position.G8) {
			dest |= position.G8.Bit()
		}
		if p.CastlingRights&position.BlackLong != 0 &&
			occ&(position.B8.Bit()|position.C8.Bit()|position.D8.Bit()) == 0 &&
			!attackedIgnoringKing(p, position.E8) &&
			!attackedIgnoringKing(p, position.D8) &&
			!attackedIgnoringKing(p, position.C8) {
			dest |= position.C8.Bit()
		}
	}
	return dest
}

// Attacked reports whether the side opposite position.Turn attacks sq.
func Attacked(p *position.Position, sq square.Square) bool {
	return attackedBySide(p, sq, p.Turn.Opposite(), p.OccupancyAll())
}

// attackedIgnoringKing is the ghost-king variant of Attacked used while
// validating castling-transit squares: the moving side's own king is
// removed from the occupancy first, so a slider whose ray would pass
// through the king's current square is not incorrectly blocked by it.
func attackedIgnoringKing(p *position.Position, sq square.Square) bool {
	king := p.Bitboards[piece.Make(piece.King, p.Turn)]
	occ := p.OccupancyAll() &^ king
	return attackedBySide(p, sq, p.Turn.Opposite(), occ)
}

func attackedBySide(p *position.Position, sq square.Square, by side.Side, occ uint64) bool {
	free := ^occ
	defender := by.Opposite()

	if attacks.Knight[sq]&p.Bitboards[piece.Make(piece.Knight, by)] != 0 {
		return true
	}
	if attacks.King[sq]&p.Bitboards[piece.Make(piece.King, by)] != 0 {
		return true
	}
	if attacks.Pawn[defender][sq]&p.Bitboards[piece.Make(piece.Pawn, by)] != 0 {
		return true
	}
	rookQueen := p.Bitboards[piece.Make(piece.Rook, by)] | p.Bitboards[piece.Make(piece.Queen, by)]
	if attacks.Rook(sq, free)&rookQueen != 0 {
		return true
	}
	bishopQueen := p.Bitboards[piece.Make(piece.Bishop, by)] | p.Bitboards[piece.Make(piece.Queen, by)]
	if attacks.Bishop(sq, free)&bishopQueen != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move is in check.
func InCheck(p *position.Position) bool {
	return Attacked(p, p.KingSquare(p.Turn))
}

// LegalMoves expands Generate's pseudo-legal MoveSets into individual
// Moves and discards any that would leave the mover's own king in check.
func LegalMoves(p *position.Position) []move.Move {
	mover := p.Turn
	var out []move.Move
	for _, ms := range Generate(p) {
		for _, m := range ms.Moves() {
			next := p.Apply(m)
			if !attackedBySide(&next, next.KingSquare(mover), mover.Opposite(), next.OccupancyAll()) {
				out = append(out, m)
			}
		}
	}
	return out
}

// Checkmate reports whether the side to move is in check with no legal move.
func Checkmate(p *position.Position) bool {
	return InCheck(p) && len(LegalMoves(p)) == 0
}

// Stalemate reports whether the side to move has no legal move but is not
// in check.
func Stalemate(p *position.Position) bool {
	return !InCheck(p) && len(LegalMoves(p)) == 0
}
