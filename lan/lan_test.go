package lan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/lan"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

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

func TestFormat(t *testing.T) {
	m := move.New(square.Square(12), square.Square(28), move.Normal)
	assert.Equal(t, "e2e4", lan.Format(m))

	promo := move.NewPromotion(square.Square(48), square.Square(56), move.Queen)
	assert.Equal(t, "a7a8q", lan.Format(promo))
}

func TestParseRoundTrip(t *testing.T) {
	p := startPosition()
	m, err := lan.Parse(&p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", lan.Format(m))
}

func TestParseInvalidSyntax(t *testing.T) {
	p := startPosition()
	_, err := lan.Parse(&p, "z9z9")
	assert.ErrorIs(t, err, lan.ErrInvalidSyntax)
}

func TestParseIllegalMove(t *testing.T) {
	p := startPosition()
	_, err := lan.Parse(&p, "e2e5") // not a legal pawn move
	assert.ErrorIs(t, err, lan.ErrIllegalMove)
}
