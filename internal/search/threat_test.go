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

func TestSquareOrderingValueKnightCentralizes(t *testing.T) {
	// White knight from its home square b1 to the central d4 square
	// should score positively: d4 is a better knight square than b1.
	v := squareOrderingValue(WhiteKnight, SqB1, algSq("d4"))
	assert.Greater(t, v, int32(0))
}

func TestSquareOrderingValueZeroForPawn(t *testing.T) {
	v := squareOrderingValue(WhitePawn, SqE1, SqE4)
	assert.Equal(t, int32(0), v)
}

func TestSquareOrderingValueBlackWhiteMirrored(t *testing.T) {
	// The Black and White knight tables are vertical mirrors of one
	// another, so the same rank-relative jump should score identically
	// for both colors.
	wv := squareOrderingValue(WhiteKnight, algSq("b1"), algSq("d2"))
	bv := squareOrderingValue(BlackKnight, algSq("b8"), algSq("d7"))
	assert.Equal(t, wv, bv)
}
