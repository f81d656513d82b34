// Command cli is an interactive move-entry driver: it prints a colored
// board and reads SAN or LAN moves from the terminal, applying legal ones
// and reporting illegal or ambiguous ones. Adapted from the teacher's
// cli package, which only formatted a board for test diagnostics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/lan"
	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/movegen"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/san"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	fenFlag := flag.String("fen", startFEN, "starting position")
	flag.Parse()

	p, err := fen.Parse(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cli: %v\n", err)
		os.Exit(1)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(formatBoard(&p))

		if movegen.Checkmate(&p) {
			color.Red("checkmate")
			return
		}
		if movegen.Stalemate(&p) {
			color.Yellow("stalemate")
			return
		}

		if interactive {
			fmt.Print("move> ")
		}
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			return
		}

		m, err := parseEither(&p, input)
		if err != nil {
			color.Red("%v", err)
			continue
		}
		p = p.Apply(m)
	}
}

// parseEither accepts either SAN ("Nf3") or LAN ("g1f3") input, trying SAN
// first since LAN strings are rarely valid SAN.
func parseEither(p *position.Position, input string) (move.Move, error) {
	if m, err := san.Parse(p, input); err == nil {
		return m, nil
	}
	return lan.Parse(p, input)
}
