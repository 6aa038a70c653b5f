/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fhopp/corvid/internal/types"
)

func TestAddAccumulatesByDepthSquared(t *testing.T) {
	h := New()
	h.Add(White, SqE2, SqE4, 3)
	h.Add(White, SqE2, SqE4, 4)
	assert.Equal(t, int64(3*3+4*4), h.Value(White, SqE2, SqE4))
	assert.Equal(t, int64(0), h.Value(Black, SqE2, SqE4))
}

func TestCounterMoveRoundTrip(t *testing.T) {
	sqD2, sqD4 := SquareOf(3, 1), SquareOf(3, 3)
	h := New()
	assert.Equal(t, MoveNone, h.CounterMove(sqD2, sqD4))
	refutation := NewMove(SqD8, sqD4, Reg, PtNone)
	h.SetCounterMove(sqD2, sqD4, refutation)
	assert.Equal(t, refutation, h.CounterMove(sqD2, sqD4))
}

func TestClearResetsBothTables(t *testing.T) {
	h := New()
	h.Add(White, SqE2, SqE4, 5)
	h.SetCounterMove(SqE2, SqE4, NewMove(SqD8, SqE4, Reg, PtNone))
	h.Clear()
	assert.Equal(t, int64(0), h.Value(White, SqE2, SqE4))
	assert.Equal(t, MoveNone, h.CounterMove(SqE2, SqE4))
}
