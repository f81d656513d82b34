package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/fen"
)

// Known perft results from the standard starting position, the canonical
// move generator correctness check (chessprogramming.org/Perft_Results).
func TestPerftStartPosition(t *testing.T) {
	p, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, 20, perft(&p, 1))
	assert.Equal(t, 400, perft(&p, 2))
	assert.Equal(t, 8902, perft(&p, 3))
}

func TestPerftKiwipete(t *testing.T) {
	p, err := fen.Parse("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, 48, perft(&p, 1))
	assert.Equal(t, 2039, perft(&p, 2))
}
