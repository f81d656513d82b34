// Package lan implements Long Algebraic Notation, the UCI wire format for
// moves: source square, destination square, optional promotion letter.
// Examples: e2e4, e7e5, e1g1 (White short castle), e7e8q (promotion).
package lan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/movegen"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/square"
)

// ErrInvalidSyntax means the string is not a well-formed LAN move.
var ErrInvalidSyntax = errors.New("lan: invalid move syntax")

// ErrIllegalMove means the string parses but the generator does not emit
// this move for the given position.
var ErrIllegalMove = errors.New("lan: illegal move")

// Format renders m in long algebraic notation.
func Format(m move.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteByte(promoLetter(m.Promo()))
	}
	return b.String()
}

func promoLetter(p move.PromoKind) byte {
	switch p {
	case move.Knight:
		return 'n'
	case move.Bishop:
		return 'b'
	case move.Rook:
		return 'r'
	default:
		return 'q'
	}
}

// Parse resolves a LAN string against p, returning the matching
// generator-produced Move. It is the caller's responsibility to have
// generated p from a legal game history.
func Parse(p *position.Position, s string) (move.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}

	from, ok := square.FromAlgebraic(s[0:2])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}
	to, ok := square.FromAlgebraic(s[2:4])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}

	wantPromo := move.Queen
	hasPromo := len(s) == 5
	if hasPromo {
		switch s[4] {
		case 'n':
			wantPromo = move.Knight
		case 'b':
			wantPromo = move.Bishop
		case 'r':
			wantPromo = move.Rook
		case 'q':
			wantPromo = move.Queen
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
		}
	}

	ms, ok := movegen.GenerateFor(p, from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	for _, cand := range ms.Moves() {
		if cand.To() != to {
			continue
		}
		if cand.IsPromotion() && cand.Promo() != wantPromo {
			continue
		}
		return cand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}
