/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package openingbook loads a small FEN-to-move opening book and
// answers book-move queries by Zobrist key. Grounded on the teacher's
// openingbook/openingbook.go (a Book struct, keyed lookup map, and an
// Initialize(path) error entry point), trimmed to one supported
// format: spec.md §12 supplements the distilled spec with an opening
// book, but replaces the teacher's binary/PGN/SAN book formats with a
// plain "fen: move" YAML mapping, so only that shape is carried over.
//
// This package is a UCI-layer collaborator, not part of the search
// engine: internal/search never imports it, matching the teacher's
// own separation where the opening book is consulted by the UCI
// handler before a search is ever started.
package openingbook

import (
	"os"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v3"

	mylogging "github.com/fhopp/corvid/internal/logging"
	"github.com/fhopp/corvid/internal/movegen"
	"github.com/fhopp/corvid/internal/moveslice"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

var log *logging.Logger

// Book maps a position's Zobrist key to a recommended reply, as parsed
// from a "fen: move" YAML file.
type Book struct {
	moves       map[uint64]Move
	initialized bool
}

// New creates an empty, uninitialized Book.
func New() *Book {
	return &Book{moves: make(map[uint64]Move)}
}

// Initialize reads path (a YAML mapping of FEN strings to UCI move
// tokens) and populates the book. Calling Initialize more than once is
// a no-op, matching the teacher's idempotent Initialize.
func (b *Book) Initialize(path string) error {
	if b.initialized {
		return nil
	}
	if log == nil {
		log = mylogging.GetLog()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("opening book: could not read %q: %s", path, err)
		return err
	}

	var entries map[string]string
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		log.Errorf("opening book: could not parse %q: %s", path, err)
		return err
	}

	for fenStr, moveStr := range entries {
		p, err := position.NewPositionFen(fenStr)
		if err != nil {
			log.Warningf("opening book: skipping entry with bad fen %q: %s", fenStr, err)
			continue
		}
		mov := moveFromUCI(p, moveStr)
		if mov == MoveNone {
			log.Warningf("opening book: skipping entry %q: move %q not legal in that position", fenStr, moveStr)
			continue
		}
		b.moves[p.ZobristKey()] = mov
	}

	log.Infof("opening book: loaded %d entries from %q", len(b.moves), path)
	b.initialized = true
	return nil
}

// NumberOfEntries returns how many positions the book has a reply for.
func (b *Book) NumberOfEntries() int {
	return len(b.moves)
}

// Probe returns the book's reply for p, if any.
func (b *Book) Probe(p *position.Position) (Move, bool) {
	mov, ok := b.moves[p.ZobristKey()]
	return mov, ok
}

// moveFromUCI resolves a UCI token against p's pseudo-legal moves, the
// same linear scan internal/uci uses (duplicated here rather than
// imported, since internal/uci imports this package and Go forbids the
// cycle the other way around).
func moveFromUCI(p *position.Position, tok string) Move {
	captures, quiets := movegen.GenRegMovList(p)
	if m := scanForUCI(captures, tok); m != MoveNone {
		return m
	}
	if m := scanForUCI(quiets, tok); m != MoveNone {
		return m
	}
	return scanForUCI(movegen.GenCastleMovList(p), tok)
}

func scanForUCI(ms *moveslice.MoveSlice, tok string) Move {
	for i := 0; i < ms.Len(); i++ {
		if m := ms.At(i); m.UCI() == tok {
			return m
		}
	}
	return MoveNone
}
