// perft.go counts leaf nodes of the legal move tree to a fixed depth, for
// validating the move generator against known perft results. Adapted from
// the teacher's internal/perft/perft.go (which walked chego.Position
// directly); this walks the new position/movegen packages instead.
package main

import (
	"github.com/tinbergen/chesscore/movegen"
	"github.com/tinbergen/chesscore/position"
)

// perft returns the number of leaf positions reachable from p in exactly
// depth plies of legal play.
func perft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := movegen.LegalMoves(p)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		next := p.Apply(m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}
