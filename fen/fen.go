// Package fen implements conversions between Forsyth-Edwards Notation
// strings and the core Position type. Unlike the core packages, a malformed
// FEN string is a normal input error, not a programmer error, so Parse
// returns an error rather than panicking.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/side"
	"github.com/tinbergen/chesscore/square"
)

// Parse parses a FEN string into a Position. Only the piece placement field
// is mandatory; any trailing fields omitted default to active color w,
// castling rights KQkq, no en-passant target, halfmove clock 0, and fullmove
// number 1.
func Parse(fen string) (position.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 1 || len(fields) > 6 {
		return position.Position{}, fmt.Errorf("fen: %q: expected 1 to 6 fields, got %d", fen, len(fields))
	}
	for len(fields) < 6 {
		switch len(fields) {
		case 1:
			fields = append(fields, "w")
		case 2:
			fields = append(fields, "KQkq")
		case 3:
			fields = append(fields, "-")
		case 4:
			fields = append(fields, "0")
		case 5:
			fields = append(fields, "1")
		}
	}

	p := position.Empty()

	bitboards, err := parsePlacement(fields[0])
	if err != nil {
		return position.Position{}, fmt.Errorf("fen: %q: %w", fen, err)
	}
	p.Bitboards = bitboards

	switch fields[1] {
	case "w":
		p.Turn = side.White
	case "b":
		p.Turn = side.Black
	default:
		return position.Position{}, fmt.Errorf("fen: %q: invalid active color %q", fen, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.CastlingRights |= position.WhiteShort
		case 'Q':
			p.CastlingRights |= position.WhiteLong
		case 'k':
			p.CastlingRights |= position.BlackShort
		case 'q':
			p.CastlingRights |= position.BlackLong
		case '-':
		default:
			return position.Position{}, fmt.Errorf("fen: %q: invalid castling field %q", fen, fields[2])
		}
	}

	if fields[3] == "-" {
		p.EnPassant = square.None
	} else {
		sq, ok := square.FromAlgebraic(fields[3])
		if !ok {
			return position.Position{}, fmt.Errorf("fen: %q: invalid en-passant square %q", fen, fields[3])
		}
		p.EnPassant = sq
	}

	p.HalfmoveClock, err = strconv.Atoi(fields[4])
	if err != nil {
		return position.Position{}, fmt.Errorf("fen: %q: invalid halfmove clock: %w", fen, err)
	}

	p.FullmoveNumber, err = strconv.Atoi(fields[5])
	if err != nil {
		return position.Position{}, fmt.Errorf("fen: %q: invalid fullmove number: %w", fen, err)
	}

	return p, nil
}

func parsePlacement(placement string) ([piece.Count]uint64, error) {
	var bitboards [piece.Count]uint64
	sq := 56 // FEN describes ranks starting from rank 8.

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			pt, ok := pieceFromChar(c)
			if !ok {
				return bitboards, fmt.Errorf("invalid piece placement character %q", c)
			}
			if sq < 0 || sq > 63 {
				return bitboards, fmt.Errorf("piece placement overflows the board")
			}
			bitboards[pt] |= square.Square(sq).Bit()
			sq++
		}
	}
	return bitboards, nil
}

func pieceFromChar(c byte) (piece.ColoredPieceType, bool) {
	for i := 0; i < piece.Count; i++ {
		if piece.Symbols[i] == c {
			return piece.ColoredPieceType(i), true
		}
	}
	return piece.None, false
}

// Format serializes a Position into a FEN string.
func Format(p *position.Position) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(formatPlacement(p))
	b.WriteByte(' ')

	if p.Turn == side.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	before := b.Len()
	if p.CastlingRights&position.WhiteShort != 0 {
		b.WriteByte('K')
	}
	if p.CastlingRights&position.WhiteLong != 0 {
		b.WriteByte('Q')
	}
	if p.CastlingRights&position.BlackShort != 0 {
		b.WriteByte('k')
	}
	if p.CastlingRights&position.BlackLong != 0 {
		b.WriteByte('q')
	}
	if b.Len() == before {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EnPassant == square.None {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EnPassant.String())
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))

	return b.String()
}

func formatPlacement(p *position.Position) string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := square.FromRankFile(rank, file)
			pt := p.PieceAt(sq)
			if pt == piece.None {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(piece.Symbols[pt])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
