/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package moveslice provides a fixed-capacity-friendly buffer type for
// chess moves, used throughout move generation and search so the hot
// path (root move list, capture list, quiet list, per-ply refutation
// slots) allocates once per search rather than once per node.
//
// Grounded on the teacher's internal/moveslice/moveslice.go; the
// buffer and stack operations are carried over largely unchanged since
// they are generic over the move type, but Sort() is reworked: the
// teacher's Move packs an order-by value into its own high bits, while
// Corvid's wire-format Move (spec.md §6) has no room for one, so
// ordering here is driven by a parallel ScoredMoveSlice instead of
// bits stolen from the move encoding.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/fhopp/corvid/internal/types"
)

// MoveSlice is a slice of Move with stack/deque helpers.
type MoveSlice []Move

// NewMoveSlice creates an empty MoveSlice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	s := make([]Move, 0, cap)
	return (*MoveSlice)(&s)
}

func (ms *MoveSlice) Len() int { return len(*ms) }
func (ms *MoveSlice) Cap() int { return cap(*ms) }

func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	m := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return m
}

func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = m
}

// Filter keeps only the elements for which f returns true, reusing the
// underlying array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	b := (*ms)[:0]
	for i, m := range *ms {
		if f(i) {
			b = append(b, m)
		}
	}
	*ms = b
}

// Clone returns an independent copy.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether two slices hold the same moves in the same order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// Clear empties the slice but keeps its backing array, avoiding GC
// churn when a buffer is reused node after node.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice: [%d] { ", ms.Len())
	for i := 0; i < ms.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ms.At(i).String())
	}
	b.WriteString(" }")
	return b.String()
}

// ScoredMove pairs a move with an ordering score computed by the move
// generator or search (MVV-LVA, SEE, history table, ...).
type ScoredMove struct {
	M     Move
	Score int32
}

// ScoredMoveSlice is a buffer of ScoredMove, sorted by Score descending.
type ScoredMoveSlice []ScoredMove

// NewScoredMoveSlice creates an empty ScoredMoveSlice with the given capacity.
func NewScoredMoveSlice(cap int) *ScoredMoveSlice {
	s := make([]ScoredMove, 0, cap)
	return (*ScoredMoveSlice)(&s)
}

func (ms *ScoredMoveSlice) Len() int { return len(*ms) }

func (ms *ScoredMoveSlice) PushBack(m Move, score int32) {
	*ms = append(*ms, ScoredMove{M: m, Score: score})
}

func (ms *ScoredMoveSlice) Clear() { *ms = (*ms)[:0] }

func (ms *ScoredMoveSlice) At(i int) ScoredMove { return (*ms)[i] }

// SetScore overwrites the score of the i'th entry in place, used by the
// root move list to rescore moves between iterative-deepening
// iterations without rebuilding the list.
func (ms *ScoredMoveSlice) SetScore(i int, score int32) {
	(*ms)[i].Score = score
}

// Sort orders the slice by Score descending using a stable insertion
// sort: scored lists here are small (root/capture/quiet lists rarely
// exceed a few dozen entries) and usually already close to sorted
// after incremental scoring, so insertion sort beats a general
// sort.Slice in practice.
func (ms *ScoredMoveSlice) Sort() {
	s := *ms
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i
		for j > 0 && tmp.Score > s[j-1].Score {
			s[j] = s[j-1]
			j--
		}
		s[j] = tmp
	}
}
