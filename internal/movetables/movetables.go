/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package movetables holds the per-square ordered destination lists
// used by the move generator (spec.md C3): eight-entry knight/king
// jump tables and, for each sliding direction, a list of squares
// ordered by increasing distance from the source so a scan can stop at
// the first occupied square. These complement internal/attacks' C2
// bitmasks, which only answer "is anything in this direction at all" —
// the movetables answer "what's the ordered walk" for move generation
// and the fallback confirmation step in attack detection.
//
// Grounded on the teacher's table-of-lists idiom (internal/types/magic.go
// precomputes per-square arrays in an init-time pass); the scan-until-
// blocker walk itself follows original_source/src/mov_gen.rs's sliding
// piece loops, adapted to Go slices instead of Rust vectors.
package movetables

import (
	. "github.com/fhopp/corvid/internal/types"
)

// KnightMoves[sq] and KingMoves[sq] are the on-board jump destinations,
// unordered (there is no "blocker" concept for a single jump).
var (
	KnightMoves [BoardSize][]Square
	KingMoves   [BoardSize][]Square
)

// Ray direction indices, shared between Rook/Bishop tables and used by
// the move generator and SEE's attacker enumeration.
const (
	DirNorth = iota
	DirSouth
	DirEast
	DirWest
	DirNortheast
	DirNorthwest
	DirSoutheast
	DirSouthwest
	numDirs
)

var allDirs = [numDirs]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// RookDirIdx and BishopDirIdx list which of the eight direction slots
// belong to rook-type and bishop-type sliding, respectively.
var RookDirIdx = [4]int{DirNorth, DirSouth, DirEast, DirWest}
var BishopDirIdx = [4]int{DirNortheast, DirNorthwest, DirSoutheast, DirSouthwest}

// SliderRays[sq][dir] is the ordered list of squares from sq outward in
// direction dir, nearest first, stopping at the board edge. A move
// generator walks this slice and breaks on the first occupied square.
var SliderRays [BoardSize][numDirs][]Square

func init() {
	for i := 0; i < BoardSize; i++ {
		s := Square(i)
		if !s.IsValid() {
			continue
		}
		for _, d := range KnightOffsets {
			if to := s + Square(d); to.IsValid() {
				KnightMoves[i] = append(KnightMoves[i], to)
			}
		}
		for _, d := range KingOffsets {
			if to := s + Square(d); to.IsValid() {
				KingMoves[i] = append(KingMoves[i], to)
			}
		}
		for dirIdx, d := range allDirs {
			var ray []Square
			for to := s + Square(d); to.IsValid(); to += Square(d) {
				ray = append(ray, to)
			}
			SliderRays[i][dirIdx] = ray
		}
	}
}
