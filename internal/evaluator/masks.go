/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package evaluator

import (
	. "github.com/fhopp/corvid/internal/types"
)

// Piece-square comfort/preference/avoidance masks, ported bit-for-bit
// from original_source/src/eval.rs's WN_COMF_MASK/WP_PREF_MASK/
// WR_AVOID_MASK/... constants. Each literal there is written as eight
// 8-bit rank groups, rank 8 first, leftmost bit of the whole literal
// being bit 63 and rightmost bit 0 -- exactly Square.BbIndex's
// bit-per-square convention (bit = rank*8+file, a1=0, h8=63), so the
// literals carry over unchanged instead of being recomputed as
// rectangles. Both colors are transcribed explicitly rather than
// derived by a vertical mirror, although every Black literal below is
// the exact vertical mirror (byte-reversed rank order) of its White
// counterpart.

var (
	pawnComf, pawnPref                  [2]Bitboard
	knightComf, knightPref, knightAvoid [2]Bitboard
	bishopComf, bishopAvoid             [2]Bitboard
	rookComf, rookPref, rookAvoid       [2]Bitboard
	queenComf, queenAvoid               [2]Bitboard
	kingSafeSpot                        [2]Bitboard
	kingEndgameComf                     Bitboard
)

const (
	white = 0
	black = 1
)

func init() {
	kingSafeSpot[white] = 0b00000000_00000000_00000000_00000000_00000000_00000000_11000011_11000111
	kingSafeSpot[black] = 0b11000111_11000011_00000000_00000000_00000000_00000000_00000000_00000000

	queenComf[white] = 0b00000000_00000000_00000000_00000000_00000000_01111110_00111100_00000000
	queenComf[black] = 0b00000000_00111100_01111110_00000000_00000000_00000000_00000000_00000000
	queenAvoid[white] = 0b11000011_11000011_10000001_10000001_10000001_10000001_11000011_11111111
	queenAvoid[black] = 0b11111111_11000011_10000001_10000001_10000001_10000001_11000011_11000011

	rookComf[white] = 0b11111111_11111111_00000000_00000000_00000000_00000000_00000000_00111100
	rookComf[black] = 0b00111100_00000000_00000000_00000000_00000000_00000000_11111111_11111111
	rookPref[white] = 0b00000000_00111100_00000000_00000000_00000000_00000000_00000000_00000000
	rookPref[black] = 0b00000000_00000000_00000000_00000000_00000000_00000000_00111100_00000000
	rookAvoid[white] = 0b00000000_00000000_00000000_10000001_11000011_11000011_11111111_00000000
	rookAvoid[black] = 0b00000000_11111111_11000011_11000011_10000001_00000000_00000000_00000000

	bishopComf[white] = 0b00000000_00000000_11111111_01111110_00111100_01011010_01000010_00000000
	bishopComf[black] = 0b00000000_01000010_01011010_00111100_01111110_11111111_00000000_00000000
	bishopAvoid[white] = 0b11111111_10000001_00000000_10000001_10000001_10000001_10000001_11111111
	bishopAvoid[black] = 0b11111111_10000001_10000001_10000001_10000001_00000000_10000001_11111111

	knightComf[white] = 0b00000000_00111100_01111110_01111110_00111100_01100110_00011000_00000000
	knightComf[black] = 0b00000000_00011000_01100110_00111100_01111110_01111110_00111100_00000000
	knightPref[white] = 0b00000000_00000000_00011000_00011000_00000000_00000000_00000000_00000000
	knightPref[black] = 0b00000000_00000000_00000000_00000000_00011000_00011000_00000000_00000000
	knightAvoid[white] = 0b11111111_10000001_00000000_10000001_10000001_10000001_11000011_11111111
	knightAvoid[black] = 0b11111111_11000011_10000001_10000001_10000001_00000000_10000001_11111111

	pawnComf[white] = 0b00000000_01111110_01111110_01111110_00111100_11000011_11100111_00000000
	pawnComf[black] = 0b00000000_11100111_11000011_00111100_01111110_01111110_01111110_00000000
	pawnPref[white] = 0b00000000_01111110_00111100_00011000_00000000_00000000_00000000_00000000
	pawnPref[black] = 0b00000000_00000000_00000000_00000000_00011000_00111100_01111110_00000000

	kingEndgameComf = 0b00000000_00000000_01111110_01111110_01111110_01111110_00000000_00000000
}
