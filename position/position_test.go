package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

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

func TestDoublePawnPushSetsEnPassantTarget(t *testing.T) {
	p := startPosition()
	m := move.New(square.Square(12), square.Square(28), move.Normal) // e2e4
	np := p.Apply(m)
	assert.Equal(t, square.Square(20), np.EnPassant) // e3
	assert.Equal(t, side.Black, np.Turn)
	assert.Equal(t, 1, np.FullmoveNumber)
}

func TestBlackReplyIncrementsFullmoveNumber(t *testing.T) {
	p := startPosition()
	p = p.Apply(move.New(square.Square(12), square.Square(28), move.Normal)) // e4
	p = p.Apply(move.New(square.Square(52), square.Square(36), move.Normal)) // e5
	assert.Equal(t, 2, p.FullmoveNumber)
	assert.Equal(t, side.White, p.Turn)
}

func TestQuietMoveIncrementsHalfmoveClock(t *testing.T) {
	p := startPosition()
	p.HalfmoveClock = 10
	// Knight move doesn't reset.
	p2 := p.Apply(move.New(square.Square(6), square.Square(21), move.Normal))
	assert.Equal(t, 11, p2.HalfmoveClock)
}

func TestKingMoveClearsBothCastlingRights(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WK: position.E1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		CastlingRights: position.WhiteShort | position.WhiteLong,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
	np := p.Apply(move.New(position.E1, square.Square(12), move.Normal))
	assert.Equal(t, 0, np.CastlingRights&(position.WhiteShort|position.WhiteLong))
}

func TestRookMoveClearsOneCastlingRight(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WK: position.E1.Bit(),
			piece.WR: position.H1.Bit() | position.A1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		CastlingRights: position.WhiteShort | position.WhiteLong,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
	np := p.Apply(move.New(position.H1, square.Square(15), move.Normal))
	assert.Equal(t, 0, np.CastlingRights&position.WhiteShort)
	assert.NotEqual(t, 0, np.CastlingRights&position.WhiteLong)
}

func TestShortCastleMovesRookToo(t *testing.T) {
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
	np := p.Apply(move.New(position.E1, position.G1, move.Normal))
	assert.Equal(t, piece.WK, np.PieceAt(position.G1))
	assert.Equal(t, piece.WR, np.PieceAt(position.F1))
	assert.Equal(t, piece.None, np.PieceAt(position.H1))
}

func TestEnPassantCaptureRemovesCapturedPawn(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WP: square.Square(36).Bit(), // e5
			piece.BP: square.Square(35).Bit(), // d5
			piece.WK: position.E1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		EnPassant:      square.Square(43), // d6
		FullmoveNumber: 5,
	}
	np := p.Apply(move.New(square.Square(36), square.Square(43), move.Normal))
	assert.Equal(t, piece.None, np.PieceAt(square.Square(35)))
	assert.Equal(t, piece.WP, np.PieceAt(square.Square(43)))
	assert.Equal(t, 0, np.HalfmoveClock)
}

func TestPromotionReplacesPawnWithChosenPiece(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WP: square.Square(52).Bit(), // e7
			piece.WK: position.E1.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
	np := p.Apply(move.NewPromotion(square.Square(52), square.Square(60), move.Queen))
	assert.Equal(t, piece.WQ, np.PieceAt(square.Square(60)))
	assert.Equal(t, piece.None, np.PieceAt(square.Square(52)))
}

func TestKingSquarePanicsWithoutKing(t *testing.T) {
	p := position.Empty()
	assert.Panics(t, func() { p.KingSquare(side.White) })
}
