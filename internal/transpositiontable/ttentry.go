/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package transpositiontable

import (
	. "github.com/fhopp/corvid/internal/types"
)

// Entry is one slot in the table: a 64-bit zobrist key, an occupancy
// signature, and a bit-packed move/eval/value/depth/bound-type/age/
// context record. Corvid's zobrist key folds in piece-square placement
// only -- not side to move, castling rights, or the en-passant square
// (internal/zobrist) -- so two positions that differ solely in one of
// those fields hash identically. occ (the full occupied-squares
// bitboard) and ctx (side/castling/ep) are carried alongside the key
// precisely so Probe/Put can tell such positions apart, matching
// original_source/src/hashtable.rs's RegHashTable entry tuple
// (key, bit_mask, player, depth, cas_rights, enp_sqr, flag, score,
// mov) and spec.md §4.6's "(key, occupancy-signature, side, depth,
// castling, ep, flag, score, move)". Still bit-packed where it costs
// nothing, so the table's memory footprint matches what its
// configured size in MB promises.
type Entry struct {
	key   uint64
	occ   uint64
	move  uint16
	eval  int16
	value int16
	vmeta uint16 // bits 0-2 age, bits 3-4 bound type, bits 5-11 depth
	ctx   uint16 // bits 0-1 side, bits 2-5 castling rights, bits 6-12 ep square+1 (0 = none)
}

const (
	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)

	sideMask      = uint16(0b0000_0000_0000_0011)
	castlingMask  = uint16(0b0000_0000_0011_1100)
	castlingShift = uint16(2)
	epMask        = uint16(0b0001_1111_1100_0000)
	epShift       = uint16(6)

	// EntrySize is the size in bytes of one Entry: two uint64s (key,
	// occ) plus five uint16-or-smaller fields, padded to the 8-byte
	// alignment uint64 demands.
	EntrySize = 32
)

// context packs the side to move, castling rights and en-passant
// square into the bit layout ctx expects.
func context(side Color, castling CastlingRights, ep Square) uint16 {
	epBits := uint16(0)
	if ep != SqNone {
		epBits = uint16(ep) + 1
	}
	return uint16(side)&sideMask | (uint16(castling)<<castlingShift)&castlingMask | (epBits<<epShift)&epMask
}

func (e *Entry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *Entry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full zobrist key this entry was stored under.
func (e *Entry) Key() uint64 { return e.key }

// Occ returns the occupied-squares bitboard this entry was stored
// under.
func (e *Entry) Occ() uint64 { return e.occ }

// Side returns the side to move this entry was stored under.
func (e *Entry) Side() Color { return Color(e.ctx & sideMask) }

// Castling returns the castling rights this entry was stored under.
func (e *Entry) Castling() CastlingRights {
	return CastlingRights((e.ctx & castlingMask) >> castlingShift)
}

// EPSquare returns the en-passant square this entry was stored under,
// or SqNone.
func (e *Entry) EPSquare() Square {
	ep := (e.ctx & epMask) >> epShift
	if ep == 0 {
		return SqNone
	}
	return Square(ep - 1)
}

// matches reports whether this entry was stored under the exact same
// key, occupancy, side, castling rights and en-passant square as
// given -- the full context spec.md §4.6 requires before trusting a
// cached value, since key alone under-determines the position.
func (e *Entry) matches(key, occ uint64, ctx uint16) bool {
	return e.key == key && e.occ == occ && e.ctx == ctx
}

// Move returns the best move found for this position, or MoveNone.
func (e *Entry) Move() Move { return Move(e.move) }

// Value returns the stored search value.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval returns the stored static evaluation.
func (e *Entry) Eval() Value { return Value(e.eval) }

// Depth returns the search depth the value was computed at.
func (e *Entry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age returns how many generations old this entry is (0 = current).
func (e *Entry) Age() int8 { return int8(e.vmeta & ageMask) }

// Bound returns whether Value() is exact or a search-window bound.
func (e *Entry) Bound() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }
