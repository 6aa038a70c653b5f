/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package attacks

import (
	"testing"

	. "github.com/fhopp/corvid/internal/types"
)

func TestKnightAttacksCenter(t *testing.T) {
	got := NAttacks[SqE4].PopCount()
	if got != 8 {
		t.Errorf("knight attacks from e4 = %d, want 8", got)
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	got := NAttacks[SqA1].PopCount()
	if got != 2 {
		t.Errorf("knight attacks from a1 = %d, want 2", got)
	}
}

func TestKingAttacksCenter(t *testing.T) {
	if NAttacks[SqE4] == KAttacks[SqE4] {
		t.Fatalf("knight and king masks should differ")
	}
	if KAttacks[SqE4].PopCount() != 8 {
		t.Errorf("king attacks from e4 = %d, want 8", KAttacks[SqE4].PopCount())
	}
}

func TestFileRankMasks(t *testing.T) {
	if FileMasks[SqE4].PopCount() != 8 {
		t.Errorf("file mask popcount = %d, want 8", FileMasks[SqE4].PopCount())
	}
	if !FileMasks[SqE4].Has(SqE1) || !FileMasks[SqE4].Has(SqE8) {
		t.Errorf("file mask for e4 should include e1 and e8")
	}
	if RankMasks[SqE4].PopCount() != 8 {
		t.Errorf("rank mask popcount = %d, want 8", RankMasks[SqE4].PopCount())
	}
}

func TestRookBishopUnions(t *testing.T) {
	if RAttacks[SqE4]&BAttacks[SqE4] != 0 {
		t.Errorf("rook and bishop ray masks should not overlap")
	}
	want := RayNorth[SqE4] | RaySouth[SqE4] | RayEast[SqE4] | RayWest[SqE4]
	if RAttacks[SqE4] != want {
		t.Errorf("rook mask mismatch")
	}
}

func TestPawnAttacksWhite(t *testing.T) {
	e4 := SquareOf(4, 3)
	d5 := SquareOf(3, 4)
	f5 := SquareOf(5, 4)
	att := PawnAttacks[0][e4]
	if !att.Has(d5) || !att.Has(f5) {
		t.Errorf("white pawn on e4 should attack d5 and f5")
	}
	if att.PopCount() != 2 {
		t.Errorf("white pawn attacks popcount = %d, want 2", att.PopCount())
	}
}

func TestPawnDoubleMoveOnlyFromStartRank(t *testing.T) {
	e2 := SquareOf(4, 1)
	e3 := SquareOf(4, 2)
	if PawnDoubleMoves[0][e2].PopCount() != 1 {
		t.Errorf("white pawn on e2 should have a double move")
	}
	if PawnDoubleMoves[0][e3].PopCount() != 0 {
		t.Errorf("white pawn on e3 should not have a double move")
	}
}
