/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package uci

import (
	"github.com/fhopp/corvid/internal/movegen"
	"github.com/fhopp/corvid/internal/moveslice"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// moveFromUCI resolves a UCI long-algebraic token ("e2e4", "e7e8q",
// "e1g1") against every pseudo-legal move from p, returning MoveNone
// if none matches. internal/movegen has no GetMoveFromUci helper like
// the teacher's (C5 was redesigned as pure functions, see DESIGN.md),
// so this rebuilds that lookup the only way the types package makes
// possible: Move.UCI() renders castle moves as a plain king from/to
// with no special-casing, so a linear scan over the generated lists is
// enough to recover any move shape, including castles.
func moveFromUCI(p *position.Position, tok string) Move {
	captures, quiets := movegen.GenRegMovList(p)
	if m := scanForUCI(captures, tok); m != MoveNone {
		return m
	}
	if m := scanForUCI(quiets, tok); m != MoveNone {
		return m
	}
	return scanForUCI(movegen.GenCastleMovList(p), tok)
}

func scanForUCI(ms *moveslice.MoveSlice, tok string) Move {
	for i := 0; i < ms.Len(); i++ {
		if m := ms.At(i); m.UCI() == tok {
			return m
		}
	}
	return MoveNone
}
