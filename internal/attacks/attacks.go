/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package attacks holds the precomputed per-square bitmask tables used
// by move generation and evaluation (spec.md C2): file/rank masks,
// knight/king attack masks, the eight directional ray masks and their
// rook/bishop unions, pawn attack/move/structure masks, and king
// "safety zone" masks. Everything here is computed once in init() and
// is read-only afterwards (spec.md §9 "no hidden mutable globals").
//
// Grounded on the teacher's internal/types/bitboard.go precomputed-
// table idiom (sqBb, init()), generalized from FrankyGo's magic-
// bitboard tables to the plain directional-ray tables spec.md calls
// for; term semantics (file/rank, king protect zone, pawn forward
// exclusion) follow original_source/src/bitmask.rs's gen_masks().
package attacks

import (
	. "github.com/fhopp/corvid/internal/types"
)

var (
	// IndexMasks[i] is the singleton bitboard for square i.
	IndexMasks [BoardSize]Bitboard
	// FileMasks[i] / RankMasks[i] are the whole file/rank containing i.
	FileMasks [BoardSize]Bitboard
	RankMasks [BoardSize]Bitboard

	// NAttacks[i] / KAttacks[i] are the knight/king attack masks.
	NAttacks [BoardSize]Bitboard
	KAttacks [BoardSize]Bitboard

	// Ray masks, one per direction, each covering every square reachable
	// by sliding from i to the board edge (not including i itself).
	RayNorth, RaySouth, RayEast, RayWest                     [BoardSize]Bitboard
	RayNortheast, RayNorthwest, RaySoutheast, RaySouthwest   [BoardSize]Bitboard
	BAttacks, RAttacks                                       [BoardSize]Bitboard

	// Pawn-specific masks, indexed [color][square].
	PawnAttacks        [2][BoardSize]Bitboard
	PawnMoves          [2][BoardSize]Bitboard
	PawnDoubleMoves    [2][BoardSize]Bitboard
	PawnForwardExclude [2][BoardSize]Bitboard
	PawnAdjacentFiles  [2][BoardSize]Bitboard
	PawnConnected      [2][BoardSize]Bitboard
	PawnFrontControl   [2][BoardSize]Bitboard

	// KingZone[c][sq] is the three-rank blob in front of a king on sq,
	// used by evaluator king-safety terms.
	KingZone [2][BoardSize]Bitboard
)

func colorIdx(c Color) int {
	return ColorIdx(c)
}

// ColorIdx maps a Color onto the 0/1 index used by this package's
// per-color tables (PawnAttacks, KingZone, ...): White=0, Black=1.
// Exported so callers outside this package (internal/movegen) can
// index the same tables directly.
func ColorIdx(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

func init() {
	for i := 0; i < BoardSize; i++ {
		s := Square(i)
		if !s.IsValid() {
			continue
		}
		IndexMasks[i] = s.Bb()
		FileMasks[i] = fileMask(s.File())
		RankMasks[i] = rankMask(s.Rank())

		NAttacks[i] = stepMask(s, KnightOffsets[:])
		KAttacks[i] = stepMask(s, KingOffsets[:])

		RayNorth[i] = rayMask(s, North)
		RaySouth[i] = rayMask(s, South)
		RayEast[i] = rayMask(s, East)
		RayWest[i] = rayMask(s, West)
		RayNortheast[i] = rayMask(s, Northeast)
		RayNorthwest[i] = rayMask(s, Northwest)
		RaySoutheast[i] = rayMask(s, Southeast)
		RaySouthwest[i] = rayMask(s, Southwest)

		BAttacks[i] = RayNortheast[i] | RayNorthwest[i] | RaySoutheast[i] | RaySouthwest[i]
		RAttacks[i] = RayNorth[i] | RaySouth[i] | RayEast[i] | RayWest[i]

		initPawnMasks(s)
		initKingZone(s)
	}
}

func fileMask(file int) Bitboard {
	var b Bitboard
	for rank := 0; rank < 8; rank++ {
		b = b.Push(SquareOf(file, rank))
	}
	return b
}

func rankMask(rank int) Bitboard {
	var b Bitboard
	for file := 0; file < 8; file++ {
		b = b.Push(SquareOf(file, rank))
	}
	return b
}

func stepMask(from Square, offsets []Direction) Bitboard {
	var b Bitboard
	for _, d := range offsets {
		to := from + Square(d)
		if to.IsValid() {
			b = b.Push(to)
		}
	}
	return b
}

func rayMask(from Square, d Direction) Bitboard {
	var b Bitboard
	for to := from + Square(d); to.IsValid(); to += Square(d) {
		b = b.Push(to)
	}
	return b
}

func initPawnMasks(s Square) {
	for _, c := range [2]Color{White, Black} {
		ci := colorIdx(c)
		forward := North
		if c == Black {
			forward = South
		}
		// attacks: one step forward-diagonal
		var att Bitboard
		for _, d := range diagForward(c) {
			to := s + Square(d)
			if to.IsValid() {
				att = att.Push(to)
			}
		}
		PawnAttacks[ci][s] = att

		// single push
		var mv Bitboard
		if to := s + Square(forward); to.IsValid() {
			mv = mv.Push(to)
		}
		PawnMoves[ci][s] = mv

		// double push from the starting rank only
		startRank := 1
		if c == Black {
			startRank = 6
		}
		var dbl Bitboard
		if s.Rank() == startRank {
			if to := s + Square(forward)*2; to.IsValid() {
				dbl = dbl.Push(to)
			}
		}
		PawnDoubleMoves[ci][s] = dbl

		// forward exclusion: every square ahead on this file. The
		// evaluator's passed-pawn test uses PawnFrontControl instead.
		var fwdExcl Bitboard
		for to := s + Square(forward); to.IsValid(); to += Square(forward) {
			fwdExcl = fwdExcl.Push(to)
		}
		PawnForwardExclude[ci][s] = fwdExcl

		// adjacent files, every rank (isolated-pawn test).
		var adj Bitboard
		for _, df := range [2]int{-1, 1} {
			f := s.File() + df
			if f >= 0 && f < 8 {
				adj |= fileMask(f)
			}
		}
		PawnAdjacentFiles[ci][s] = adj

		// connected squares: same rank, adjacent file (phalanx support).
		var conn Bitboard
		for _, df := range [2]int{-1, 1} {
			f := s.File() + df
			if f >= 0 && f < 8 {
				conn = conn.Push(SquareOf(f, s.Rank()))
			}
		}
		PawnConnected[ci][s] = conn

		// front control: the squares this pawn's passed-pawn advance
		// must keep clear of enemy pawns -- own file plus both
		// adjacent files, ahead of the pawn.
		var front Bitboard
		step := 1
		if c == Black {
			step = -1
		}
		for _, df := range [3]int{-1, 0, 1} {
			f := s.File() + df
			if f < 0 || f >= 8 {
				continue
			}
			for r := s.Rank() + step; r >= 0 && r < 8; r += step {
				front = front.Push(SquareOf(f, r))
			}
		}
		PawnFrontControl[ci][s] = front
	}
}

func diagForward(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

// initKingZone builds the three-rank "in front of the king" blob used
// by the evaluator's king-safety terms (spec.md §4.3).
func initKingZone(s Square) {
	for _, c := range [2]Color{White, Black} {
		ci := colorIdx(c)
		forward := North
		if c == Black {
			forward = South
		}
		var zone Bitboard
		for r := 0; r < 3; r++ {
			sq := s + Square(forward)*Square(r)
			if !sq.IsValid() {
				break
			}
			for _, df := range [3]int{-1, 0, 1} {
				f := s.File() + df
				if f < 0 || f >= 8 {
					continue
				}
				zone = zone.Push(SquareOf(f, sq.Rank()))
			}
		}
		KingZone[ci][s] = zone
	}
}
