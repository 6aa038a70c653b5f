/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	"github.com/fhopp/corvid/internal/movegen"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// See statically evaluates the exchange on sq, assuming initialAttacker
// (the piece about to make the first capture) has just been named as
// the mover (spec.md §4.4). It is a static approximation: the attacker
// lists movegen.FindAttackerList returns are computed once up front and
// consumed cheapest-first without ever recomputing them as pieces are
// virtually removed. Those lists already include sliders stacked behind
// a same-line slider and a bishop/queen behind a diagonal pawn attacker;
// any other attacker that only appears once a blocker is taken off is
// not seen. Grounded directly on
// original_source/src/search.rs's see/simulate_exchange, including its
// unusual double application of the mover's sign (the value this
// function returns is meant to be multiplied by the caller's own
// player sign again, exactly as search.rs's callers do).
func See(p *position.Position, sq Square, initialAttacker Piece) Value {
	whiteSquares, blackSquares := movegen.FindAttackerList(p, sq)
	whiteVals := valuesOf(p, whiteSquares)
	blackVals := valuesOf(p, blackSquares)

	mover := p.SideToMove()
	sign := Value(1)
	if mover == Black {
		sign = -1
	}

	initVal := PieceValue(initialAttacker)
	if mover == White {
		whiteVals = removeOneValue(whiteVals, initVal)
	} else {
		blackVals = removeOneValue(blackVals, initVal)
	}

	return PieceValue(p.PieceAt(sq))*sign + simulateExchange(-sign, whiteVals, blackVals, 0, 0, initVal)
}

// simulateExchange recursively walks both sides' sorted attacker-value
// lists, alternating sides by sign, and clamps a side's continuation to
// zero whenever capturing further would not be profitable for it —
// not as an early-exit prune, but as a post-hoc clamp applied after the
// full recursive value has already been computed.
func simulateExchange(sign Value, whiteVals, blackVals []Value, wi, bi int, lastVal Value) Value {
	if sign > 0 && wi >= len(whiteVals) {
		return 0
	}
	if sign < 0 && bi >= len(blackVals) {
		return 0
	}

	var next Value
	if sign > 0 {
		next = whiteVals[wi]
		wi++
	} else {
		next = blackVals[bi]
		bi++
	}

	simScore := sign*lastVal + simulateExchange(-sign, whiteVals, blackVals, wi, bi, next)
	if simScore*sign > 0 {
		return simScore
	}
	return 0
}

func valuesOf(p *position.Position, squares []Square) []Value {
	vals := make([]Value, len(squares))
	for i, s := range squares {
		vals[i] = PieceValue(p.PieceAt(s))
	}
	return vals
}

// removeOneValue returns a copy of vals with the first occurrence of v
// removed, used to exclude the initiating attacker from its own side's
// list (it has already made its capture and cannot recapture itself).
func removeOneValue(vals []Value, v Value) []Value {
	for i, val := range vals {
		if val == v {
			out := make([]Value, 0, len(vals)-1)
			out = append(out, vals[:i]...)
			out = append(out, vals[i+1:]...)
			return out
		}
	}
	return vals
}
