// Package polyglot implements decoding and lookup of the Polyglot opening
// book binary format: fixed 16-byte records sorted ascending by Zobrist key.
package polyglot

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/exp/slices"

	"github.com/tinbergen/chesscore/move"
	"github.com/tinbergen/chesscore/piece"
	"github.com/tinbergen/chesscore/position"
	"github.com/tinbergen/chesscore/square"
	"github.com/tinbergen/chesscore/zobrist"
)

const recordSize = 16

// Entry is one decoded book record. The learn field is read but discarded,
// per the wire format.
type Entry struct {
	Key    uint64
	Packed uint16
	Weight uint16
}

// Book is a fully-read, read-only Polyglot opening book.
type Book struct {
	entries []Entry
}

// Load reads filename fully into memory and decodes every record. The
// format requires ascending-key order for binarySearch to work; books
// produced by third-party tools already satisfy it, but Load re-sorts
// defensively rather than trusting that (a malformed or hand-built book
// would otherwise silently miss lookups instead of failing loudly).
func Load(filename string) (*Book, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("polyglot: load %s: %w", filename, err)
	}
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("polyglot: %s: length %d is not a multiple of the %d-byte record size", filename, len(data), recordSize)
	}

	n := len(data) / recordSize
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		rec := data[i*recordSize : (i+1)*recordSize]
		entries[i] = Entry{
			Key:    binary.BigEndian.Uint64(rec[0:8]),
			Packed: binary.BigEndian.Uint16(rec[8:10]),
			Weight: binary.BigEndian.Uint16(rec[10:12]),
			// rec[12:16] is the learn field, ignored.
		}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		default:
			return 0
		}
	})
	return &Book{entries: entries}, nil
}

// binarySearch returns the index of the first entry whose key is >= key.
func (b *Book) binarySearch(key uint64) int {
	lo, hi := 0, len(b.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if b.entries[mid].Key < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// findAll returns every entry whose key matches hash.
func (b *Book) findAll(hash uint64) []Entry {
	idx := b.binarySearch(hash)
	var out []Entry
	for _, e := range b.entries[idx:] {
		if e.Key != hash {
			break
		}
		out = append(out, e)
	}
	return out
}

// Lookup returns every book entry matching p's position.
func (b *Book) Lookup(p *position.Position) []Entry {
	return b.findAll(zobrist.Hash(p))
}

// Choose returns the entry with the highest weight among those matching p,
// ties broken by first occurrence. Reports false if the book has no entry
// for p.
func (b *Book) Choose(p *position.Position) (Entry, bool) {
	entries := b.Lookup(p)
	if len(entries) == 0 {
		return Entry{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}
	return best, true
}

// BestMove decodes Choose's winning entry into an engine Move, translating
// Polyglot's king-captures-own-rook castling encoding into the engine's
// king-moves-two-squares form.
func (b *Book) BestMove(p *position.Position) (move.Move, bool) {
	e, ok := b.Choose(p)
	if !ok {
		return 0, false
	}
	return Decode(p, e.Packed), true
}

// Decode unpacks a Polyglot move word into an engine Move. The packed
// layout, bit 15 (MSB) to bit 0 (LSB): 1 unused, 3 promotion, 3 from-rank,
// 3 from-file, 3 to-rank, 3 to-file. Promotion 0 = none, 1..4 = knight,
// bishop, rook, queen.
func Decode(p *position.Position, packed uint16) move.Move {
	toFile := int(packed & 0x7)
	toRank := int((packed >> 3) & 0x7)
	fromFile := int((packed >> 6) & 0x7)
	fromRank := int((packed >> 9) & 0x7)
	promo := int((packed >> 12) & 0x7)

	from := square.FromRankFile(fromRank, fromFile)
	to := square.FromRankFile(toRank, toFile)

	if isCastlingQuirk(p, from, to) {
		to = castlingKingDestination(from, to)
	}

	if promo == 0 {
		return move.New(from, to, move.Normal)
	}
	return move.NewPromotion(from, to, move.PromoKind(promo-1))
}

// isCastlingQuirk reports whether (from, to) is Polyglot's king-captures-
// own-rook castling encoding: from is the side to move's king home square
// and to is that side's own rook home square.
func isCastlingQuirk(p *position.Position, from, to square.Square) bool {
	king := p.PieceAt(from)
	if king == piece.None || king.Kind() != piece.King || king.Side() != p.Turn {
		return false
	}
	switch {
	case king == piece.WK && from == position.E1 && (to == position.A1 || to == position.H1):
	case king == piece.BK && from == position.E8 && (to == position.A8 || to == position.H8):
	default:
		return false
	}
	rook := p.PieceAt(to)
	return rook != piece.None && rook.Kind() == piece.Rook && rook.Side() == king.Side()
}

// castlingKingDestination translates a king-captures-rook square pair into
// the engine's king-moves-two-squares destination.
func castlingKingDestination(from, to square.Square) square.Square {
	if to.File() > from.File() {
		return square.FromRankFile(from.Rank(), 6) // short castle: king to g-file
	}
	return square.FromRankFile(from.Rank(), 2) // long castle: king to c-file
}
