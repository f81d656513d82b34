// Package epd parses Extended Position Description records: a FEN position
// (first four fields only — no move clocks) followed by semicolon-separated
// "key value;" operations. Recognized operations are bm (best move), am
// (avoid move), and id, each given in SAN.
package epd

import (
	"fmt"
	"strings"

	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/position"
)

// Record is one parsed EPD line.
type Record struct {
	Position   position.Position
	BestMoves  []string // bm operand, SAN
	AvoidMoves []string // am operand, SAN
	ID         string   // id operand, quotes stripped
}

// Parse parses a single EPD line.
func Parse(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, fmt.Errorf("epd: %q: expected at least 4 FEN fields", line)
	}

	// EPD omits the halfmove clock and fullmove number; fen.Parse defaults
	// both when trailing fields are absent.
	p, err := fen.Parse(strings.Join(fields[0:4], " "))
	if err != nil {
		return Record{}, fmt.Errorf("epd: %q: %w", line, err)
	}

	rec := Record{Position: p}
	rest := strings.Join(fields[4:], " ")
	for _, op := range splitOperations(rest) {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		key, val, _ := strings.Cut(op, " ")
		val = strings.TrimSpace(val)
		switch key {
		case "bm":
			rec.BestMoves = strings.Fields(val)
		case "am":
			rec.AvoidMoves = strings.Fields(val)
		case "id":
			rec.ID = strings.Trim(val, `"`)
		}
	}
	return rec, nil
}

// splitOperations splits an EPD operation list on ';', respecting that an
// id value may itself contain spaces but never a semicolon (per the format).
func splitOperations(s string) []string {
	return strings.Split(s, ";")
}
