package polyglot_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/polyglot"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
	"github.com/tinbergen/chesscore/zobrist"
)

func writeRecord(buf []byte, key uint64, packed, weight uint16) []byte {
	rec := make([]byte, 16)
	binary.BigEndian.PutUint64(rec[0:8], key)
	binary.BigEndian.PutUint16(rec[8:10], packed)
	binary.BigEndian.PutUint16(rec[10:12], weight)
	return append(buf, rec...)
}

func packMove(fromRank, fromFile, toRank, toFile, promo int) uint16 {
	return uint16(toFile) | uint16(toRank)<<3 | uint16(fromFile)<<6 | uint16(fromRank)<<9 | uint16(promo)<<12
}

func startPosition() position.Position {
	return position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WP: 0x000000000000FF00,
			piece.WR: 0x0000000000000081,
			piece.WN: 0x0000000000000042,
			piece.WB: 0x0000000000000024,
			piece.WQ: 0x0000000000000008,
			piece.WK: 0x0000000000000010,
			piece.BP: 0x00FF000000000000,
			piece.BR: 0x8100000000000000,
			piece.BN: 0x4200000000000000,
			piece.BB: 0x2400000000000000,
			piece.BQ: 0x0800000000000000,
			piece.BK: 0x1000000000000000,
		},
		Turn:           side.White,
		CastlingRights: position.WhiteShort | position.WhiteLong | position.BlackShort | position.BlackLong,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
}

func TestLoadAndChooseHighestWeight(t *testing.T) {
	p := startPosition()
	hash := zobrist.Hash(&p)

	e2e4 := packMove(1, 4, 3, 4, 0) // e2-e4
	d2d4 := packMove(1, 3, 3, 3, 0) // d2-d4

	var buf []byte
	buf = writeRecord(buf, hash, d2d4, 10)
	buf = writeRecord(buf, hash, e2e4, 50)

	dir := t.TempDir()
	path := filepath.Join(dir, "book.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	book, err := polyglot.Load(path)
	require.NoError(t, err)

	m, ok := book.BestMove(&p)
	require.True(t, ok)
	assert.Equal(t, square.Square(12), m.From()) // e2
	assert.Equal(t, square.Square(28), m.To())   // e4
}

func TestLoadSortsOutOfOrderRecords(t *testing.T) {
	p := startPosition()
	hash := zobrist.Hash(&p)

	var buf []byte
	// Deliberately out of ascending-key order, plus an unrelated higher key
	// first, to exercise Load's defensive sort before binarySearch runs.
	buf = writeRecord(buf, hash+1000, 0, 1)
	buf = writeRecord(buf, hash, packMove(1, 4, 3, 4, 0), 50) // e2-e4

	dir := t.TempDir()
	path := filepath.Join(dir, "book.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	book, err := polyglot.Load(path)
	require.NoError(t, err)

	m, ok := book.BestMove(&p)
	require.True(t, ok)
	assert.Equal(t, square.Square(12), m.From())
	assert.Equal(t, square.Square(28), m.To())
}

func TestChooseMissingKey(t *testing.T) {
	p := startPosition()
	var buf []byte
	buf = writeRecord(buf, zobrist.Hash(&p)+1, 0, 1)

	dir := t.TempDir()
	path := filepath.Join(dir, "book.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	book, err := polyglot.Load(path)
	require.NoError(t, err)

	_, ok := book.BestMove(&p)
	assert.False(t, ok)
}

func TestDecodeCastlingQuirk(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WK: position.E1.Bit(),
			piece.WR: position.H1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:      side.White,
		EnPassant: square.None,
	}
	// Polyglot encodes White short castle as e1h1 (king captures own rook).
	packed := packMove(0, 4, 0, 7, 0)
	m := polyglot.Decode(&p, packed)
	assert.Equal(t, position.E1, m.From())
	assert.Equal(t, position.G1, m.To())
}

func TestDecodePromotion(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WP: square.Square(48).Bit(), // a7
			piece.WK: position.E1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:      side.White,
		EnPassant: square.None,
	}
	packed := packMove(6, 0, 7, 0, 4) // a7-a8=Q
	m := polyglot.Decode(&p, packed)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, move.Queen, m.Promo())
}
