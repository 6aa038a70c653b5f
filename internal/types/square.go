/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package types holds the primitive value types shared by every other
// package in the engine: squares, pieces, colors, moves and bitboards.
// Nothing here depends on position or search state.
package types

import "fmt"

// Square is a 0x88 board index: the board is laid out as a 128-slot
// array where only the low nibble (file 0-7) and the low three bits of
// the high nibble (rank 0-7) are meaningful. A square is on-board iff
// Sq&0x88 == 0. This wastes half the array but turns off-board checks
// and rank/file arithmetic into single mask/shift operations.
type Square int8

// SqNone is the sentinel for "no square".
const SqNone Square = -1

// Board geometry.
const (
	BoardSize = 128
	offBoard  = 0x88
)

// Named squares for the four corners and the castling-relevant files,
// used throughout move generation and make/undo.
const (
	SqA1 Square = 0x00
	SqE1 Square = 0x04
	SqH1 Square = 0x07
	SqA8 Square = 0x70
	SqE8 Square = 0x74
	SqH8 Square = 0x77

	SqB1 Square = 0x01
	SqD1 Square = 0x03
	SqF1 Square = 0x05
	SqG1 Square = 0x06
	SqB8 Square = 0x71
	SqD8 Square = 0x73
	SqF8 Square = 0x75
	SqG8 Square = 0x76
	SqE4 Square = 0x34
	SqE5 Square = 0x44
	SqE2 Square = 0x14
	SqE7 Square = 0x64
)

// SquareOf builds a 0x88 square from 0-based file and rank.
func SquareOf(file, rank int) Square {
	return Square(rank<<4 | file)
}

// IsValid reports whether the square lies on the 8x8 board.
func (s Square) IsValid() bool {
	return s >= 0 && int(s)&offBoard == 0
}

// File returns the 0-based file (a=0 .. h=7).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the 0-based rank (rank 1=0 .. rank 8=7).
func (s Square) Rank() int {
	return int(s) >> 4
}

// BbIndex maps a 0x88 square to its bit index (0-63) in a Bitboard:
// bit = (i + (i & 7)) >> 1. This compresses the 128-slot sparse index
// space down to the 64 real squares while preserving file/rank order.
func (s Square) BbIndex() int {
	i := int(s)
	return (i + (i & 7)) >> 1
}

// SquareFromBbIndex is the inverse of BbIndex.
func SquareFromBbIndex(bit int) Square {
	rank := bit / 8
	file := bit % 8
	return SquareOf(file, rank)
}

var fileChars = "abcdefgh"

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileChars[s.File()], s.Rank()+1)
}

// Direction is an offset added to a Square to move one step on the
// 0x88 board. Off-board detection after a step is simply dest.IsValid().
type Direction int8

// The eight ray directions.
const (
	North     Direction = 16
	South     Direction = -16
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 17
	Northwest Direction = 15
	Southeast Direction = -15
	Southwest Direction = -17
)

// KnightOffsets lists the eight knight jump offsets on the 0x88 board.
var KnightOffsets = [8]Direction{33, 31, 18, 14, -33, -31, -18, -14}

// KingOffsets lists the eight king step offsets.
var KingOffsets = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// RookDirs and BishopDirs group the sliding directions by piece.
var RookDirs = [4]Direction{North, South, East, West}
var BishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
