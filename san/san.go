// Package san implements Standard Algebraic Notation serialization and
// parsing. Parsing is regex-driven: the string is split into its
// constituent fields by a single pattern, then resolved against the
// current position's generated moves.
package san

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/movegen"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/square"
)

// ErrInvalidSyntax means the string does not match SAN's grammar at all.
var ErrInvalidSyntax = errors.New("san: invalid move syntax")

// ErrAmbiguous means more than one legal move matches the string.
var ErrAmbiguous = errors.New("san: ambiguous move")

// ErrUnresolvable means the string is well-formed but no legal move matches.
var ErrUnresolvable = errors.New("san: no matching legal move")

var pattern = regexp.MustCompile(
	`^(?:(O-O-O)|(O-O)|([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=([NBRQ]))?)[+#]?$`,
)

// Format renders the legal move m, played from p, in SAN.
func Format(p *position.Position, m move.Move) string {
	mover := p.PieceAt(m.From())

	if isCastle(mover, m) {
		s := "O-O"
		if m.To().File() == 2 {
			s = "O-O-O"
		}
		return s + checkSuffix(p, m)
	}

	var b strings.Builder
	b.Grow(6)

	switch mover.Kind() {
	case piece.Knight:
		b.WriteByte('N')
	case piece.Bishop:
		b.WriteByte('B')
	case piece.Rook:
		b.WriteByte('R')
	case piece.Queen:
		b.WriteByte('Q')
	case piece.King:
		b.WriteByte('K')
	}

	if mover.Kind() != piece.Pawn {
		writeDisambiguation(&b, p, mover, m)
	}

	isCapture := p.PieceAt(m.To()) != piece.None ||
		(mover.Kind() == piece.Pawn && p.EnPassant != square.None && m.To() == p.EnPassant)
	if isCapture {
		if mover.Kind() == piece.Pawn {
			b.WriteByte(fileByte(m.From().File()))
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To().String())

	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(promoLetter(m.Promo()))
	}

	b.WriteString(checkSuffix(p, m))
	return b.String()
}

func writeDisambiguation(b *strings.Builder, p *position.Position, mover piece.ColoredPieceType, m move.Move) {
	var sameFile, sameRank, ambiguous bool
	for _, other := range movegen.LegalMoves(p) {
		if other == m || other.To() != m.To() {
			continue
		}
		if p.PieceAt(other.From()) != mover {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return
	}
	switch {
	case !sameFile:
		b.WriteByte(fileByte(m.From().File()))
	case !sameRank:
		b.WriteByte(rankByte(m.From().Rank()))
	default:
		b.WriteByte(fileByte(m.From().File()))
		b.WriteByte(rankByte(m.From().Rank()))
	}
}

func checkSuffix(p *position.Position, m move.Move) string {
	next := p.Apply(m)
	if movegen.Checkmate(&next) {
		return "#"
	}
	if movegen.InCheck(&next) {
		return "+"
	}
	return ""
}

func isCastle(mover piece.ColoredPieceType, m move.Move) bool {
	return mover != piece.None && mover.Kind() == piece.King && absInt(m.To().File()-m.From().File()) == 2
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func fileByte(f int) byte { return byte('a' + f) }
func rankByte(r int) byte { return byte('1' + r) }

func promoLetter(p move.PromoKind) byte {
	switch p {
	case move.Knight:
		return 'N'
	case move.Bishop:
		return 'B'
	case move.Rook:
		return 'R'
	default:
		return 'Q'
	}
}

// Parse resolves a SAN string against p's legal moves.
func Parse(p *position.Position, s string) (move.Move, error) {
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}

	if matches[1] != "" || matches[2] != "" {
		return parseCastle(p, matches[1] != "", s)
	}

	dest, ok := square.FromAlgebraic(matches[7])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyntax, s)
	}

	wantKind := kindFromLetter(matches[3])
	fileHint, hasFileHint := fileHintFrom(matches[4])
	rankHint, hasRankHint := rankHintFrom(matches[5])
	wantPromo, hasPromo := promoFromLetter(matches[8])

	var candidates []move.Move
	for _, ms := range movegen.Generate(p) {
		if ms.Kind != wantKind {
			continue
		}
		if hasFileHint && ms.From.File() != fileHint {
			continue
		}
		if hasRankHint && ms.From.Rank() != rankHint {
			continue
		}
		for _, cand := range ms.Moves() {
			if cand.To() != dest {
				continue
			}
			if cand.IsPromotion() != hasPromo {
				continue
			}
			if hasPromo && cand.Promo() != wantPromo {
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	legal := movegen.LegalMoves(p)
	var matched []move.Move
	for _, c := range candidates {
		for _, l := range legal {
			if l == c {
				matched = append(matched, c)
				break
			}
		}
	}

	switch len(matched) {
	case 0:
		return 0, fmt.Errorf("%w: %q", ErrUnresolvable, s)
	case 1:
		return matched[0], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrAmbiguous, s)
	}
}

func parseCastle(p *position.Position, long bool, s string) (move.Move, error) {
	kingSq := p.KingSquare(p.Turn)
	ms, ok := movegen.GenerateFor(p, kingSq)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvable, s)
	}
	file := 6
	if long {
		file = 2
	}
	to := square.FromRankFile(kingSq.Rank(), file)
	for _, cand := range ms.Moves() {
		if cand.To() == to {
			return cand, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnresolvable, s)
}

func kindFromLetter(letter string) piece.Kind {
	switch letter {
	case "N":
		return piece.Knight
	case "B":
		return piece.Bishop
	case "R":
		return piece.Rook
	case "Q":
		return piece.Queen
	case "K":
		return piece.King
	default:
		return piece.Pawn
	}
}

func fileHintFrom(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	return int(s[0] - 'a'), true
}

func rankHintFrom(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	return int(s[0] - '1'), true
}

func promoFromLetter(s string) (move.PromoKind, bool) {
	switch s {
	case "N":
		return move.Knight, true
	case "B":
		return move.Bishop, true
	case "R":
		return move.Rook, true
	case "Q":
		return move.Queen, true
	default:
		return 0, false
	}
}
