/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

func TestValOf(t *testing.T) {
	assert.Equal(t, PawnValue, ValOf(WhitePawn))
	assert.Equal(t, QueenValue, ValOf(BlackQueen))
	assert.Equal(t, Value(0), ValOf(PieceNone))
}

func TestEvalStateStartposIsSymmetric(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, Value(0), EvalState(p))
}

func TestEvalStateMaterialDominates(t *testing.T) {
	// White up a whole queen: score must be decisively positive,
	// comfortably clear of any positional noise.
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(EvalState(p)), 500)
}

func TestEvalStateMaterialDisadvantageIsNegative(t *testing.T) {
	p, err := position.NewPositionFen("4kq2/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, int(EvalState(p)), -500)
}

func TestEvalStateRookOnOpenFileBeatsBlockedRook(t *testing.T) {
	open, err := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	blocked, err := position.NewPositionFen("4k3/8/8/8/8/8/P7/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(EvalState(open)), int(EvalState(blocked))-int(PawnValue))
}

func TestEvalStateAdvancedPassedPawnBeatsBackwardOne(t *testing.T) {
	advanced, err := position.NewPositionFen("4k3/8/4P3/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	backward, err := position.NewPositionFen("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(EvalState(advanced)), int(EvalState(backward)))
}

func TestEvalStateKingEndgameIsDrawnWithInsufficientMaterial(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Value(0), EvalState(p))
}

func TestMasksMirrorBetweenColors(t *testing.T) {
	// Every White comfort mask must have the same population as its
	// Black counterpart: mirroring preserves shape, not position.
	assert.Equal(t, pawnComf[white].PopCount(), pawnComf[black].PopCount())
	assert.Equal(t, knightComf[white].PopCount(), knightComf[black].PopCount())
	assert.Equal(t, rookComf[white].PopCount(), rookComf[black].PopCount())
}
