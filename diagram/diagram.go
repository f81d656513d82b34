// Package diagram renders a Position as an SVG chessboard, reviving
// original_source/bin/fen_diagram.rs (whose Rust original only read a FEN
// and printed the board; this renders the diagram it never produced).
package diagram

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/square"
)

const squareSize = 60

var (
	lightSquare = "fill:#eeeed2"
	darkSquare  = "fill:#769656"
)

// pieceGlyph maps a piece to its Unicode chess symbol for SVG text.
var pieceGlyph = [piece.Count]rune{
	piece.WP: '♙', piece.WR: '♖', piece.WN: '♘', piece.WB: '♗', piece.WQ: '♕', piece.WK: '♔',
	piece.BP: '♟', piece.BR: '♜', piece.BN: '♞', piece.BB: '♝', piece.BQ: '♛', piece.BK: '♚',
}

// Render writes an SVG chessboard for p to w, 8 squares on a side,
// oriented with rank 8 at the top (White's view).
func Render(w io.Writer, p *position.Position) {
	canvas := svg.New(w)
	size := squareSize * 8
	canvas.Start(size, size)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize

			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			sq := square.FromRankFile(rank, file)
			pt := p.PieceAt(sq)
			if pt == piece.None {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/6,
				string(pieceGlyph[pt]),
				"text-anchor:middle;font-size:36px")
		}
	}

	canvas.End()
}
