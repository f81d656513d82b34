package uci_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinbergen/chesscore/config"
	"github.com/tinbergen/chesscore/uci"
)

func TestHandshake(t *testing.T) {
	e := uci.New(config.Default(), nil, nil)
	in := strings.NewReader("uci\nisready\nquit\n")
	var out strings.Builder
	e.Run(in, &out)

	got := out.String()
	assert.Contains(t, got, "uciok")
	assert.Contains(t, got, "readyok")
}

func TestPositionStartposMovesThenGo(t *testing.T) {
	e := uci.New(config.Config{Search: config.SearchConfig{Depth: 1}}, nil, nil)
	in := strings.NewReader("position startpos moves e2e4\ngo\nquit\n")
	var out strings.Builder
	e.Run(in, &out)

	assert.Contains(t, out.String(), "bestmove")
}

func TestPositionFenThenGo(t *testing.T) {
	e := uci.New(config.Config{Search: config.SearchConfig{Depth: 1}}, nil, nil)
	in := strings.NewReader("position fen 4k3/8/8/8/8/8/8/4KQ2 w - - 0 1\ngo\nquit\n")
	var out strings.Builder
	e.Run(in, &out)

	assert.Contains(t, out.String(), "bestmove")
}
