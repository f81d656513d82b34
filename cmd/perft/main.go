// Command perft runs either plain perft node counting (-perft-fen) or an
// EPD best-move test suite (-epd) against the search engine. In EPD mode,
// for every record it runs a fixed-depth search from the position, checks
// the result against the record's bm/am operations, and reports a
// pass/fail count; the process exit code is the number of failed
// records, per original_source/bin/test_epd.rs's best-move test driver.
// Perft mode counts leaf nodes of the legal move tree, adapted from the
// teacher's internal/perft/perft.go.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/tinbergen/chesscore/epd"
	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/san"
	"github.com/tinbergen/chesscore/search"
)

func main() {
	path := flag.String("epd", "", "path to an EPD test suite file")
	depth := flag.Int("depth", search.DefaultDepth, "search depth")
	perftFEN := flag.String("perft-fen", "", "run plain perft node counting from this FEN instead of an EPD suite")
	perftDepth := flag.Int("perft-depth", 4, "perft depth, used with -perft-fen")
	flag.Parse()

	if *perftFEN != "" {
		runPerft(*perftFEN, *perftDepth)
		return
	}

	if *path == "" {
		fmt.Fprintln(os.Stderr, "perft: one of -epd or -perft-fen is required")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	bar := progressbar.Default(int64(len(lines)))
	failed := 0

	for _, line := range lines {
		bar.Add(1)

		rec, err := epd.Parse(line)
		if err != nil {
			color.Red("parse error: %v", err)
			failed++
			continue
		}

		result, ok := search.BestMoveDepth(&rec.Position, *depth)
		if !ok {
			color.Red("%s: no legal moves", rec.ID)
			failed++
			continue
		}

		gotSAN := san.Format(&rec.Position, result.Move)
		if !recordPasses(rec, gotSAN) {
			color.Red("%s: expected %v, got %s", rec.ID, rec.BestMoves, gotSAN)
			failed++
			continue
		}
		color.Green("%s: ok (%s)", rec.ID, gotSAN)
	}

	fmt.Printf("\n%d/%d passed\n", len(lines)-failed, len(lines))
	os.Exit(failed)
}

func runPerft(fenStr string, depth int) {
	p, err := fen.Parse(fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(2)
	}
	nodes := perft(&p, depth)
	fmt.Printf("perft(%d) = %d\n", depth, nodes)
}

func recordPasses(rec epd.Record, gotSAN string) bool {
	for _, avoid := range rec.AvoidMoves {
		if avoid == gotSAN {
			return false
		}
	}
	if len(rec.BestMoves) == 0 {
		return true
	}
	for _, want := range rec.BestMoves {
		if want == gotSAN {
			return true
		}
	}
	return false
}
