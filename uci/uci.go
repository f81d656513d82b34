// Package uci implements a Universal Chess Interface front end: a reader
// goroutine scans stdin lines and hands them to a worker goroutine over a
// channel, which owns the engine's position and responds on stdout.
// Grounded on original_source/bin/uci.rs's two-thread, mpsc-channel
// design.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tinbergen/chesscore/config"
	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/lan"
	"github.com/tinbergen/chesscore/polyglot"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/search"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Engine owns the position reached by the commands processed so far.
type Engine struct {
	cfg    config.Config
	book   *polyglot.Book
	logger *zap.Logger
	pos    position.Position
}

// New constructs an Engine. book may be nil, in which case the book is
// never consulted.
func New(cfg config.Config, book *polyglot.Book, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	start, _ := fen.Parse(startFEN)
	return &Engine{cfg: cfg, book: book, logger: logger, pos: start}
}

// Run reads UCI commands from in and writes responses to out until "quit"
// is received or in is exhausted.
func (e *Engine) Run(in io.Reader, out io.Writer) {
	lines := make(chan string)
	go readLines(in, lines)

	for line := range lines {
		if e.dispatch(line, out) {
			return
		}
	}
}

func readLines(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- strings.TrimSpace(scanner.Text())
	}
}

// dispatch handles one command line, returning true when the engine
// should stop (i.e. "quit" was received).
func (e *Engine) dispatch(line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "uci":
		fmt.Fprintln(out, "id name chesscore")
		fmt.Fprintln(out, "id author tinbergen")
		fmt.Fprintln(out, "uciok")
	case "isready":
		fmt.Fprintln(out, "readyok")
	case "ucinewgame":
		e.pos, _ = fen.Parse(startFEN)
	case "position":
		e.handlePosition(fields[1:])
	case "go":
		e.handleGo(out)
	case "stop":
		e.logger.Debug("stop received, search is not asynchronous so nothing to cancel")
	case "quit":
		return true
	default:
		e.logger.Warn("unrecognized UCI command", zap.String("line", line))
	}
	return false
}

func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		e.pos, _ = fen.Parse(startFEN)
		i = 1
	case "fen":
		end := indexOf(args, "moves")
		if end == -1 {
			end = len(args)
		}
		fenStr := strings.Join(args[1:end], " ")
		p, err := fen.Parse(fenStr)
		if err != nil {
			e.logger.Warn("invalid FEN in position command", zap.String("fen", fenStr), zap.Error(err))
			return
		}
		e.pos = p
		i = end
	default:
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, lanMove := range args[i+1:] {
			m, err := lan.Parse(&e.pos, lanMove)
			if err != nil {
				e.logger.Warn("illegal move in position command", zap.String("move", lanMove), zap.Error(err))
				return
			}
			e.pos = e.pos.Apply(m)
		}
	}
}

func (e *Engine) handleGo(out io.Writer) {
	if e.book != nil {
		if m, ok := e.book.BestMove(&e.pos); ok {
			e.logger.Debug("book hit", zap.String("move", lan.Format(m)))
			fmt.Fprintf(out, "bestmove %s\n", lan.Format(m))
			return
		}
	}

	result, ok := search.BestMoveDepth(&e.pos, e.cfg.Search.Depth)
	if !ok {
		fmt.Fprintln(out, "bestmove 0000")
		return
	}
	e.logger.Debug("search finished",
		zap.Int("depth", result.Depth),
		zap.Int("nodes", result.NodeCount),
		zap.Int("score", result.Score))
	fmt.Fprintf(out, "info depth %d nodes %d score cp %d\n", result.Depth, result.NodeCount, result.Score)
	fmt.Fprintf(out, "bestmove %s\n", lan.Format(result.Move))
}

func indexOf(s []string, target string) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return -1
}
