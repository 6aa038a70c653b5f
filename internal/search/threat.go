/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	. "github.com/fhopp/corvid/internal/types"
)

// Per-piece-type-and-color square preference deltas, one entry per
// square indexed by Square.BbIndex() (rank 1 first, file a to h).
// Ported from original_source/src/mov_ordering.rs's SQR_TABLE_*
// constants, which are themselves never read by its own search.rs —
// carried here as move-ordering infrastructure that nothing currently
// calls (see DESIGN.md).
var sqrTableBN = [64]int32{
	-8, -4, -4, -4, -4, -4, -4, -8,
	-6, -6, 4, 2, 2, 4, -6, -6,
	-4, 0, 3, 4, 4, 3, 0, -4,
	-4, 1, 2, 5, 5, 2, 1, -4,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-4, 1, 2, 0, 0, 2, 1, -4,
	-6, -6, 0, 0, 0, 0, -6, -6,
	-8, -4, -4, -4, -4, -4, -4, -8,
}

var sqrTableWN = [64]int32{
	-8, -4, -4, -4, -4, -4, -4, -8,
	-6, -6, 0, 0, 0, 0, -6, -6,
	-4, 1, 2, 0, 0, 2, 1, -4,
	-4, 0, 2, 4, 4, 2, 0, -4,
	-4, 1, 2, 5, 5, 2, 1, -4,
	-4, 0, 3, 4, 4, 3, 0, -4,
	-6, -6, 4, 2, 2, 4, -6, -6,
	-8, -4, -4, -4, -4, -4, -4, -8,
}

var sqrTableBB = [64]int32{
	-7, -2, -2, -2, -2, -2, -2, -7,
	-4, 0, 2, 0, 0, 2, 0, -4,
	-2, 0, 1, 2, 2, 1, 0, -2,
	-2, 1, 1, 2, 2, 1, 1, -2,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-2, 2, 2, 1, 1, 2, 2, -2,
	-2, 1, 0, 0, 0, 0, 1, -2,
	-7, -2, -2, -2, -2, -2, -2, -7,
}

var sqrTableWB = [64]int32{
	-7, -2, -2, -2, -2, -2, -2, -7,
	-2, 1, 0, 0, 0, 0, 1, -2,
	-2, 2, 2, 1, 1, 2, 2, -2,
	-2, 0, 2, 2, 2, 2, 0, -2,
	-2, 1, 1, 2, 2, 1, 1, -2,
	-2, 0, 1, 2, 2, 1, 0, -2,
	-4, 0, 2, 0, 0, 2, 0, -4,
	-7, -2, -2, -2, -2, -2, -2, -7,
}

var sqrTableBR = [64]int32{
	2, 2, 4, 4, 4, 4, 2, 2,
	2, 4, 6, 6, 6, 6, 4, 2,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-2, -1, 0, 0, 0, 0, -1, -2,
	-1, 0, 0, 0, 0, 0, 0, -1,
}

var sqrTableWR = [64]int32{
	-1, 0, 0, 0, 0, 0, 0, -1,
	-2, -1, 0, 0, 0, 0, -1, -2,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	2, 4, 6, 6, 6, 6, 4, 2,
	2, 2, 4, 4, 4, 4, 2, 2,
}

var sqrTableBQ = [64]int32{
	-4, -2, -2, -1, -1, -2, -2, -4,
	-2, -2, 0, 0, 0, 0, -2, -2,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	-2, -2, 0, 0, 0, 0, -2, -2,
	-4, -2, -2, -1, -1, -2, -2, -4,
}

var sqrTableWQ = sqrTableBQ

// squareOrderingValue returns how much moving the piece from `from`
// to `to` shifts its square preference, or 0 for piece types without a
// table (pawn and king, which already have dedicated evaluator terms).
// Kept as infrastructure only; nothing in internal/search calls it.
func squareOrderingValue(piece Piece, from, to Square) int32 {
	var table *[64]int32
	switch piece {
	case WhiteKnight:
		table = &sqrTableWN
	case WhiteBishop:
		table = &sqrTableWB
	case WhiteRook:
		table = &sqrTableWR
	case WhiteQueen:
		table = &sqrTableWQ
	case BlackKnight:
		table = &sqrTableBN
	case BlackBishop:
		table = &sqrTableBB
	case BlackRook:
		table = &sqrTableBR
	case BlackQueen:
		table = &sqrTableBQ
	default:
		return 0
	}
	return table[to.BbIndex()] - table[from.BbIndex()]
}
