/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fhopp/corvid/internal/types"
)

// Scenarios ported verbatim from original_source/src/search.rs's
// test_q_search_1..4. Alpha/beta are passed in the engine's raw,
// White-centric sign convention: for Black to move the caller supplies
// the upper bound first and the lower bound second, matching what
// abSearch itself would have passed down one ply further.
func TestQSearchScenario1(t *testing.T) {
	p := mustPos(t, "r5kr/1b1pR1p1/p1q1N2p/5P1n/3Q4/B7/P5PP/5RK1 w - - 1 1")
	s := New()

	assert.Equal(t, Value(185), s.qSearch(p, -20000, 20000, 0))
}

func TestQSearchScenario2(t *testing.T) {
	p := mustPos(t, "2k2r2/pp2br2/1np1p2q/2NpP2p/2PP2p1/1P1N4/P3Q1PP/3R1R1K b - - 8 27")
	s := New()

	assert.Equal(t, Value(50), s.qSearch(p, 20000, -20000, 0))
}

func TestQSearchScenarioQuiet(t *testing.T) {
	p := mustPos(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	s := New()

	assert.Equal(t, Value(0), s.qSearch(p, -20000, 20000, 0))
}

func TestQSearchScenario4(t *testing.T) {
	p := mustPos(t, "2k5/pp2b3/1np1p3/2NpP2p/3P2p1/2PN4/PP4PP/5q1K w - - 8 27")
	s := New()

	assert.Equal(t, Value(-900), s.qSearch(p, -20000, 20000, 0))
}

// Classic queen-and-king stalemate: Black's king on h8 has no move that
// doesn't stay in an attacked square, and is not currently in check.
func TestInStaleMateDetectsStalemate(t *testing.T) {
	p := mustPos(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	s := New()

	assert.True(t, s.inStaleMate(p))
}

func TestInStaleMateFalseAtStartpos(t *testing.T) {
	p := mustPos(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	s := New()

	assert.False(t, s.inStaleMate(p))
}

func TestExchangeScore(t *testing.T) {
	p := mustPos(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	// exd5: pawn takes pawn, no promotion.
	m := NewMove(algSq("e4"), algSq("d5"), Reg, PtNone)

	assert.Equal(t, PieceValue(BlackPawn)-PieceValue(WhitePawn), exchangeScore(p, m))
}
