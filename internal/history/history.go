/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package history holds the move-ordering tables search fills in as it
// walks the tree: a from/to history-heuristic counter per color and a
// from/to counter-move table. Neither is read by internal/movegen.
// internal/search consults the history counters when it sorts a move
// list movegen already produced; it does not read the counter-move
// table.
//
// Grounded on the teacher's internal/history/history.go, reindexed
// from the teacher's 0-63 Square onto Corvid's 0x88 Square via
// Square.BbIndex() so the tables stay a dense 64x64 array instead of
// a sparse 128x128 one.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fhopp/corvid/internal/attacks"
	. "github.com/fhopp/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// History is updated during search and consulted by search's move
// ordering; it is otherwise opaque to internal/movegen.
type History struct {
	count        [2][64][64]int64
	counterMoves [64][64]Move
}

// New creates an empty History.
func New() *History {
	return &History{}
}

// Add bumps the history counter for a quiet move that caused a beta
// cutoff, weighted by the remaining search depth so cutoffs found deep
// in the tree count for more than shallow ones.
func (h *History) Add(c Color, from, to Square, depth int) {
	h.count[attacks.ColorIdx(c)][from.BbIndex()][to.BbIndex()] += int64(depth) * int64(depth)
}

// AddAlphaRaise bumps the history counter for a quiet move that merely
// raised alpha rather than causing a cutoff, weighted by plain depth
// (not depth squared) so a cutoff still outweighs an alpha raise found
// at the same depth.
func (h *History) AddAlphaRaise(c Color, from, to Square, depth int) {
	h.count[attacks.ColorIdx(c)][from.BbIndex()][to.BbIndex()] += int64(depth)
}

// Value returns the accumulated history score for a from/to pair.
func (h *History) Value(c Color, from, to Square) int64 {
	return h.count[attacks.ColorIdx(c)][from.BbIndex()][to.BbIndex()]
}

// SetCounterMove records refutation as the move that punished the
// from/to move that was just played.
func (h *History) SetCounterMove(from, to Square, refutation Move) {
	h.counterMoves[from.BbIndex()][to.BbIndex()] = refutation
}

// CounterMove returns the recorded refutation for a from/to pair, or
// MoveNone if none has been recorded.
func (h *History) CounterMove(from, to Square) Move {
	return h.counterMoves[from.BbIndex()][to.BbIndex()]
}

// Clear resets every table to zero. internal/search calls it on a new
// game and before an aspiration-window re-search; tables are kept from
// one Go call to the next within a game.
func (h *History) Clear() {
	*h = History{}
}

func (h *History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf <= SqH8; sf++ {
		if !sf.IsValid() {
			continue
		}
		for st := SqA1; st <= SqH8; st++ {
			if !st.IsValid() {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for _, c := range [2]Color{White, Black} {
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), h.Value(c, sf, st)))
			}
			sb.WriteString(out.Sprintf("cm=%s\n", h.CounterMove(sf, st).UCI()))
		}
	}
	return sb.String()
}
