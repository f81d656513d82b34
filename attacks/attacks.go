// Package attacks implements the precomputed knight/king/pawn step tables
// and the dumb7fill-based sliding attack sets used by move generation.
package attacks

import (
	"github.com/tinbergen/chesscore/bitboard"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

var (
	Knight [64]uint64
	King   [64]uint64
	// Pawn[side][square] is the set of squares that pawn attacks (captures
	// into), not its pushes.
	Pawn [2][64]uint64
	// push/doublePush are computed on the fly in movegen (they depend on
	// occupancy), so only the step tables live here.
)

func init() {
	for i := 0; i < 64; i++ {
		sq := square.Square(i)
		bb := sq.Bit()

		Knight[i] = knightAttacksFrom(bb)
		King[i] = kingAttacksFrom(bb)
		Pawn[side.White][i] = pawnAttacksFrom(bb, side.White)
		Pawn[side.Black][i] = pawnAttacksFrom(bb, side.Black)
	}
}

func knightAttacksFrom(knight uint64) uint64 {
	notA := uint64(0xFEFEFEFEFEFEFEFE)
	notH := uint64(0x7F7F7F7F7F7F7F7F)
	notAB := uint64(0xFCFCFCFCFCFCFCFC)
	notGH := uint64(0x3F3F3F3F3F3F3F3F)

	return (knight & notA >> 17) |
		(knight & notH >> 15) |
		(knight & notAB >> 10) |
		(knight & notGH >> 6) |
		(knight & notAB << 6) |
		(knight & notGH << 10) |
		(knight & notA << 15) |
		(knight & notH << 17)
}

func kingAttacksFrom(king uint64) uint64 {
	var flood uint64
	flood |= bitboard.Shift(king, bitboard.North)
	flood |= bitboard.Shift(king, bitboard.South)
	flood |= bitboard.Shift(king, bitboard.East)
	flood |= bitboard.Shift(king, bitboard.West)
	flood |= bitboard.Shift(king, bitboard.NE)
	flood |= bitboard.Shift(king, bitboard.NW)
	flood |= bitboard.Shift(king, bitboard.SE)
	flood |= bitboard.Shift(king, bitboard.SW)
	return flood
}

func pawnAttacksFrom(pawn uint64, s side.Side) uint64 {
	if s == side.White {
		return bitboard.Shift(pawn, bitboard.NE) | bitboard.Shift(pawn, bitboard.NW)
	}
	return bitboard.Shift(pawn, bitboard.SE) | bitboard.Shift(pawn, bitboard.SW)
}

// Bishop returns the bishop's attack set from sq given the free-square set,
// via dumb7fill over the four diagonal directions.
func Bishop(sq square.Square, free uint64) uint64 {
	from := sq.Bit()
	var attacks uint64
	attacks |= bitboard.SlideAttacks(from, free, bitboard.NE)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.NW)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.SE)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.SW)
	return attacks
}

// Rook returns the rook's attack set from sq given the free-square set, via
// dumb7fill over the four orthogonal directions.
func Rook(sq square.Square, free uint64) uint64 {
	from := sq.Bit()
	var attacks uint64
	attacks |= bitboard.SlideAttacks(from, free, bitboard.North)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.South)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.East)
	attacks |= bitboard.SlideAttacks(from, free, bitboard.West)
	return attacks
}

// Queen returns the union of Bishop and Rook attacks from sq.
func Queen(sq square.Square, free uint64) uint64 {
	return Bishop(sq, free) | Rook(sq, free)
}
