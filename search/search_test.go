package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/search"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

func TestBestMoveTakesFreeQueen(t *testing.T) {
	// White queen can capture a hanging black queen on d8 in one move.
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WQ: square.Square(3).Bit(),  // d1
			piece.WK: position.E1.Bit(),
			piece.BQ: position.D8.Bit(),
			piece.BK: position.E8.Bit(),
		},
		Turn:           side.White,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}

	r, ok := search.BestMoveDepth(&p, 1)
	require.True(t, ok)
	assert.Equal(t, square.Square(3), r.Move.From())
	assert.Equal(t, position.D8, r.Move.To())
	assert.Positive(t, r.NodeCount)
}

func TestBestMoveReturnsFalseOnCheckmate(t *testing.T) {
	p := position.Position{
		Bitboards: [piece.Count]uint64{
			piece.WK: square.Square(7).Bit(),
			piece.WP: square.Square(14).Bit() | square.Square(15).Bit(),
			piece.BK: position.E8.Bit(),
			piece.BR: square.Square(0).Bit(),
		},
		Turn:           side.White,
		EnPassant:      square.None,
		FullmoveNumber: 1,
	}
	_, ok := search.BestMove(&p)
	assert.False(t, ok)
}
