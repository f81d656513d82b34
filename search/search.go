// Package search implements a fixed-depth negamax search over a
// material-only evaluation.
package search

import (
	"math"

	"github.com/tinbergen/chesscore/bitboard"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/movegen"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
)

// DefaultDepth is the fixed search depth used when none is specified.
const DefaultDepth = 3

// materialValue is indexed by piece.ColoredPieceType: pawn=1, knight/bishop=3,
// rook=5, queen=9, king=1000; Black values are the negation of White's.
var materialValue = [piece.Count]int{
	piece.WP: 1, piece.WR: 5, piece.WN: 3, piece.WB: 3, piece.WQ: 9, piece.WK: 1000,
	piece.BP: -1, piece.BR: -5, piece.BN: -3, piece.BB: -3, piece.BQ: -9, piece.BK: -1000,
}

// Result is the outcome of a completed search.
type Result struct {
	Move      move.Move
	Score     int
	NodeCount int
	Depth     int
}

// BestMove searches to DefaultDepth. Reports false iff the side to move has
// no legal move (checkmate or stalemate).
func BestMove(p *position.Position) (Result, bool) {
	return BestMoveDepth(p, DefaultDepth)
}

// BestMoveDepth searches to the given fixed depth.
func BestMoveDepth(p *position.Position, depth int) (Result, bool) {
	moves := movegen.LegalMoves(p)
	if len(moves) == 0 {
		return Result{}, false
	}

	nodes := 0
	best := moves[0]
	bestScore := math.MinInt32
	for _, m := range moves {
		next := p.Apply(m)
		score := -negamax(&next, depth-1, &nodes)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return Result{Move: best, Score: bestScore, NodeCount: nodes, Depth: depth}, true
}

// negamax returns the score of p from the perspective of p.Turn.
func negamax(p *position.Position, depth int, nodes *int) int {
	*nodes++
	if depth == 0 {
		return evaluate(p)
	}

	moves := movegen.LegalMoves(p)
	if len(moves) == 0 {
		return evaluate(p)
	}

	best := math.MinInt32
	for _, m := range moves {
		next := p.Apply(m)
		score := -negamax(&next, depth-1, nodes)
		if score > best {
			best = score
		}
	}
	return best
}

// evaluate is a material-only evaluation from the perspective of p.Turn,
// clamped to ±1000 to keep the king's weight from overshooting arithmetic.
func evaluate(p *position.Position) int {
	s := 0
	for pt := 0; pt < piece.Count; pt++ {
		s += materialValue[pt] * bitboard.PopCount(p.Bitboards[pt])
	}
	if s > 1000 {
		s = 1000
	}
	if s < -1000 {
		s = -1000
	}
	if p.Turn == side.Black {
		s = -s
	}
	return s
}
