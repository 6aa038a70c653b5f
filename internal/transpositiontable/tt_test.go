/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fhopp/corvid/internal/types"
)

const testOcc = uint64(0xffff00000000ffff)

func TestNewTableSizesToPowerOfTwo(t *testing.T) {
	tt := New(1)
	assert.Greater(t, tt.maxNumberOfEntries, uint64(0))
	assert.Equal(t, tt.maxNumberOfEntries&(tt.maxNumberOfEntries-1), uint64(0))
}

func TestPutThenProbeRoundTrip(t *testing.T) {
	tt := New(1)
	m := NewMove(SqE2, SqE4, Reg, PtNone)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, m, 5, Value(42), VtExact, Value(40))

	e := tt.Probe(0x1234, testOcc, White, CrAll, SqNone)
	assert.NotNil(t, e)
	assert.Equal(t, m, e.Move())
	assert.Equal(t, Value(42), e.Value())
	assert.Equal(t, Value(40), e.Eval())
	assert.Equal(t, int8(5), e.Depth())
	assert.Equal(t, VtExact, e.Bound())
	assert.Equal(t, White, e.Side())
	assert.Equal(t, CrAll, e.Castling())
	assert.Equal(t, SqNone, e.EPSquare())
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := New(1)
	assert.Nil(t, tt.Probe(0xdead, testOcc, White, CrAll, SqNone))
}

func TestProbeMissesOnSideToMoveMismatch(t *testing.T) {
	// Corvid's zobrist key hashes piece placement only, so a position
	// reached with Black to move can share a key with one where it's
	// White's turn; the TT must not treat them as the same entry.
	tt := New(1)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 5, Value(42), VtExact, Value(40))
	assert.Nil(t, tt.Probe(0x1234, testOcc, Black, CrAll, SqNone))
}

func TestProbeMissesOnCastlingRightsMismatch(t *testing.T) {
	tt := New(1)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 5, Value(42), VtExact, Value(40))
	assert.Nil(t, tt.Probe(0x1234, testOcc, White, CrWK, SqNone))
}

func TestProbeMissesOnEnPassantMismatch(t *testing.T) {
	tt := New(1)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 5, Value(42), VtExact, Value(40))
	assert.Nil(t, tt.Probe(0x1234, testOcc, White, CrAll, SqE4))
}

func TestZeroSizeTableStoresNothing(t *testing.T) {
	tt := New(0)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 1, Value(1), VtExact, Value(1))
	assert.Nil(t, tt.Probe(0x1234, testOcc, White, CrAll, SqNone))
	assert.Equal(t, uint64(0), tt.Len())
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	tt.Put(0x1234, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 1, Value(1), VtExact, Value(1))
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(0x1234, testOcc, White, CrAll, SqNone))
}

func TestDeeperSearchOverwritesShallowerCollision(t *testing.T) {
	tt := New(1)
	mask := tt.hashKeyMask

	// Construct a second key that collides with the first's slot but
	// differs in the high bits the mask doesn't cover.
	key1 := uint64(7)
	key2 := key1 | (mask + 1)

	tt.Put(key1, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 2, Value(10), VtExact, Value(10))
	tt.Put(key2, testOcc, White, CrAll, SqNone, NewMove(SqE2, SqE4, Reg, PtNone), 6, Value(20), VtExact, Value(20))

	e := tt.GetEntry(key2, testOcc, White, CrAll, SqNone)
	assert.NotNil(t, e)
	assert.Equal(t, Value(20), e.Value())
	assert.Equal(t, uint64(1), tt.Stats.numberOfCollisions)
}
