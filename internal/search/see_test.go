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

	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// algSq parses algebraic notation ("e6") into a Square, for test
// readability only.
func algSq(s string) Square {
	file := int(s[0] - 'a')
	rank := int(s[1]-'0') - 1
	return SquareOf(file, rank)
}

func mustPos(t *testing.T, fenStr string) *position.Position {
	t.Helper()
	p, err := position.NewPositionFen(fenStr)
	assert.NoError(t, err)
	return p
}

// Scenarios ported verbatim from original_source/src/search.rs's
// test_see_1/2/5.
func TestSeeScenario1(t *testing.T) {
	p := mustPos(t, "4q1kr/ppn1rp1p/n1p1PB2/5P2/2B1Q2P/2N3p1/PPP1b1P1/4R2K b - - 1 1")
	sq := algSq("e6")

	assert.Equal(t, Value(145), See(p, sq, BlackKnight))
	assert.Equal(t, Value(-100), See(p, sq, BlackPawn))
	assert.Equal(t, Value(300), See(p, sq, BlackRook))
}

func TestSeeScenario2(t *testing.T) {
	p := mustPos(t, "r5kr/1b1pR1p1/ppq1N2p/5P1n/3Q4/B6B/P5PP/5RK1 w - - 1 1")
	sq := algSq("g7")

	assert.Equal(t, Value(-555), See(p, sq, WhiteQueen))
	assert.Equal(t, Value(100), See(p, sq, WhiteKnight))
	assert.Equal(t, Value(-80), See(p, sq, WhiteRook))
}

func TestSeeScenario5(t *testing.T) {
	p := mustPos(t, "rn1qkbnr/pppbpppp/8/3p4/4P3/5Q2/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	sq := algSq("d5")

	assert.Equal(t, Value(100), See(p, sq, WhitePawn))
}
