// Command fendiagram renders a FEN position to an SVG file. Revives
// original_source/bin/fen_diagram.rs, which only read a FEN and printed
// the parsed board without ever producing a diagram.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tinbergen/chesscore/diagram"
	"github.com/tinbergen/chesscore/fen"
)

func main() {
	fenFlag := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN string to render")
	outFlag := flag.String("out", "board.svg", "output SVG file path")
	flag.Parse()

	p, err := fen.Parse(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fendiagram: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fendiagram: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	diagram.Render(f, &p)
}
