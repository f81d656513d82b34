package pgn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/pgn"
	"github.com/tinbergen/chesscore/square"
)

func TestFormatIncludesTagRoster(t *testing.T) {
	start, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	g := pgn.Game{
		Tags: pgn.Tags{
			Event:  "test game",
			White:  "alice",
			Black:  "bob",
			Result: "1-0",
		},
		Start: start,
		Moves: []move.Move{
			move.New(square.Square(12), square.Square(28), move.Normal), // e2e4
			move.New(square.Square(52), square.Square(36), move.Normal), // e7e5
		},
	}

	out := pgn.Format(g)
	assert.Contains(t, out, `[Event "test game"]`)
	assert.Contains(t, out, `[White "alice"]`)
	assert.Contains(t, out, `[Result "1-0"]`)
	assert.Contains(t, out, "1. e4 e5")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "1-0"))
}

func TestFormatUnratedGameDefaultsResultToStar(t *testing.T) {
	start, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	out := pgn.Format(pgn.Game{Start: start})
	assert.Contains(t, out, `[Result "*"]`)
}
