package side_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinbergen/chesscore/side"
)

func TestOppositeIsInvolution(t *testing.T) {
	assert.Equal(t, side.Black, side.White.Opposite())
	assert.Equal(t, side.White, side.Black.Opposite())
	assert.Equal(t, side.White, side.White.Opposite().Opposite())
}

func TestString(t *testing.T) {
	assert.Equal(t, "white", side.White.String())
	assert.Equal(t, "black", side.Black.String())
}
