/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

func TestGenRegMovListStartpos(t *testing.T) {
	p := position.NewPosition()
	captures, quiets := GenRegMovList(p)
	assert.Equal(t, 0, captures.Len())
	assert.Equal(t, 20, quiets.Len())
}

func TestGenCastleMovListBothSides(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	white := GenCastleMovList(p)
	assert.Equal(t, 2, white.Len())

	p.DoMove(NewMove(SqA1, SqA2, Reg, PtNone)) // irrelevant quiet to flip side to move
	black := GenCastleMovList(p)
	assert.Equal(t, 2, black.Len())
}

func TestGenCastleMovListBlockedByAttack(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/5r2/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	// black rook on f3 attacks f1, the king's transit square for O-O
	ml := GenCastleMovList(p)
	assert.Equal(t, 0, ml.Len())
}

func TestIsInCheck(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsInCheck(p, Black))
	assert.False(t, IsInCheck(p, White))
}

func TestIsUnderAttack(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsUnderAttack(p, SqE8, White))
	assert.False(t, IsUnderAttack(p, SqA8, White))
}

func TestFindAttackerList(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	white, black := FindAttackerList(p, SqE6)
	assert.Len(t, white, 1)
	assert.Equal(t, SqE4, white[0])
	assert.Len(t, black, 0)
}

func TestFindAttackerListXraysStackedSliders(t *testing.T) {
	// White rook on e4 and white queen on e2 both bear on e6 along the
	// open e-file; capturing the rook must not hide the queen behind
	// it from SEE.
	p, err := position.NewPositionFen("4k3/8/8/8/4R3/8/4Q3/4K3 w - - 0 1")
	assert.NoError(t, err)
	white, black := FindAttackerList(p, SquareOf(4, 5))
	assert.Len(t, black, 0)
	assert.Len(t, white, 2)
	assert.Equal(t, SqE4, white[0])
	assert.Equal(t, SqE2, white[1])
}

func TestFindAttackerListRevealsSliderBehindScreeningPawn(t *testing.T) {
	// The black pawn on e5 attacks d4 directly; the black bishop on f6
	// is hidden behind that pawn on the same diagonal until the pawn
	// is resolved, and must still show up as an attacker of d4.
	p, err := position.NewPositionFen("4k3/8/5b2/4p3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	white, black := FindAttackerList(p, SquareOf(3, 3))
	assert.Len(t, white, 0)
	assert.Len(t, black, 2)
	assert.Equal(t, SquareOf(4, 4), black[0])
	assert.Equal(t, SquareOf(5, 5), black[1])
}

func TestIsMovValid(t *testing.T) {
	p := position.NewPosition()
	assert.True(t, IsMovValid(p, SqE2, SqE4))
	assert.False(t, IsMovValid(p, SqE2, SqE5))
	assert.False(t, IsMovValid(p, SqE7, SqE5)) // black's move, not side to move
}

func TestCountMobility(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 13, CountRookMobility(p, SqE4))
}
