// Package pgn serializes a played game into Portable Game Notation: the
// seven-tag roster followed by numbered movetext in SAN. It fills in what
// the teacher's own pgn.go left as an empty stub.
package pgn

import (
	"fmt"
	"strings"

	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/san"
	"github.com/tinbergen/chesscore/side"
)

// Tags holds the Seven Tag Roster required by the PGN standard.
type Tags struct {
	Event  string
	Site   string
	Date   string
	Round  string
	White  string
	Black  string
	Result string
}

// Game is a played game: a starting position plus the moves played from it.
type Game struct {
	Tags  Tags
	Start position.Position
	Moves []move.Move
}

// Format serializes g into a PGN string: tag pairs, a blank line, then
// movetext wrapped at roughly 80 columns, ending with the result.
func Format(g Game) string {
	var b strings.Builder

	writeTag(&b, "Event", g.Tags.Event)
	writeTag(&b, "Site", g.Tags.Site)
	writeTag(&b, "Date", g.Tags.Date)
	writeTag(&b, "Round", g.Tags.Round)
	writeTag(&b, "White", g.Tags.White)
	writeTag(&b, "Black", g.Tags.Black)
	writeTag(&b, "Result", orDash(g.Tags.Result))

	// FEN is not part of the Seven Tag Roster but is required whenever the
	// game does not start from the standard position.
	if std := standardStart(); fen.Format(&g.Start) != fen.Format(&std) {
		writeTag(&b, "SetUp", "1")
		writeTag(&b, "FEN", fen.Format(&g.Start))
	}

	b.WriteByte('\n')

	var line strings.Builder
	p := g.Start
	for i, m := range g.Moves {
		var token string
		if p.Turn == side.White {
			token = fmt.Sprintf("%d. %s", p.FullmoveNumber, san.Format(&p, m))
		} else if i == 0 {
			token = fmt.Sprintf("%d... %s", p.FullmoveNumber, san.Format(&p, m))
		} else {
			token = san.Format(&p, m)
		}
		appendToken(&b, &line, token)
		p = p.Apply(m)
	}
	appendToken(&b, &line, orDash(g.Tags.Result))

	if line.Len() > 0 {
		b.WriteString(line.String())
	}
	b.WriteByte('\n')
	return b.String()
}

func writeTag(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "[%s %q]\n", name, value)
}

func orDash(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

// appendToken wraps movetext at 80 columns, flushing completed lines to b.
func appendToken(b *strings.Builder, line *strings.Builder, token string) {
	if line.Len() > 0 && line.Len()+1+len(token) > 80 {
		b.WriteString(line.String())
		b.WriteByte('\n')
		line.Reset()
	}
	if line.Len() > 0 {
		line.WriteByte(' ')
	}
	line.WriteString(token)
}

func standardStart() position.Position {
	p, _ := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	return p
}
