// board.go formats a Position as a colored terminal board, adapted from
// the teacher's cli.FormatPosition.
package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

var pieceSymbols = [piece.Count]rune{
	piece.WP: '♙', piece.WR: '♖', piece.WN: '♘', piece.WB: '♗', piece.WQ: '♕', piece.WK: '♔',
	piece.BP: '♟', piece.BR: '♜', piece.BN: '♞', piece.BB: '♝', piece.BQ: '♛', piece.BK: '♚',
}

var (
	whitePieceColor = color.New(color.FgHiWhite, color.Bold)
	blackPieceColor = color.New(color.FgYellow, color.Bold)
)

// formatBoard renders p as an 8x8 board, White's pieces in bright white
// and Black's in yellow, rank 8 at the top.
func formatBoard(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(rank + 1 + '0')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := square.FromRankFile(rank, file)
			pt := p.PieceAt(sq)
			if pt == piece.None {
				b.WriteString(".  ")
				continue
			}
			glyph := string(pieceSymbols[pt])
			if pt.Side() == side.White {
				b.WriteString(whitePieceColor.Sprint(glyph))
			} else {
				b.WriteString(blackPieceColor.Sprint(glyph))
			}
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	b.WriteString("Turn: " + p.Turn.String() + "\n")
	return b.String()
}
