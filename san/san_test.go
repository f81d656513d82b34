package san_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/san"
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

func TestFormatPawnPush(t *testing.T) {
	p := startPosition()
	m := move.New(square.Square(12), square.Square(28), move.Normal)
	assert.Equal(t, "e4", san.Format(&p, m))
}

func TestFormatKnightDevelopment(t *testing.T) {
	p := startPosition()
	m := move.New(square.Square(6), square.Square(21), move.Normal) // Ng1-f3
	assert.Equal(t, "Nf3", san.Format(&p, m))
}

func TestParseRoundTrip(t *testing.T) {
	p := startPosition()
	m, err := san.Parse(&p, "e4")
	require.NoError(t, err)
	assert.Equal(t, square.Square(12), m.From())
	assert.Equal(t, square.Square(28), m.To())
}

func TestParseCastle(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WK: position.E1.Bit(),
			piece.WR: position.H1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		CastlingRights: position.WhiteShort,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
	m, err := san.Parse(&p, "O-O")
	require.NoError(t, err)
	assert.Equal(t, position.E1, m.From())
	assert.Equal(t, position.G1, m.To())
	assert.Equal(t, "O-O", san.Format(&p, m))
}

func TestParseAmbiguousRookNeedsDisambiguation(t *testing.T) {
	// Two white rooks on an otherwise empty back rank can both reach d1.
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WR: square.Square(0).Bit() | square.Square(7).Bit(), // a1, h1
			piece.WK: square.Square(12).Bit(),                         // e2, off the back rank
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}

	_, err := san.Parse(&p, "Rd1")
	assert.ErrorIs(t, err, san.ErrAmbiguous)

	m, err := san.Parse(&p, "Rad1")
	require.NoError(t, err)
	assert.Equal(t, square.Square(0), m.From())

	m, err = san.Parse(&p, "Rhd1")
	require.NoError(t, err)
	assert.Equal(t, square.Square(7), m.From())
}

func TestParseInvalidSyntax(t *testing.T) {
	p := startPosition()
	_, err := san.Parse(&p, "Zz9")
	assert.ErrorIs(t, err, san.ErrInvalidSyntax)
}
