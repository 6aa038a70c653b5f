/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package movegen implements pseudo-legal move, capture and castling
// generation plus the attack-detection and attacker-enumeration
// queries search's SEE depends on (spec.md C5). Unlike the teacher's
// stateful Movegen struct (which also owns PV/killer slots and an
// on-demand staged generator), this package is a set of pure functions
// over a *position.Position: PV move preference, killer slots and
// history-table ordering are search concerns (C7) and live in
// internal/search instead, operating on the raw move lists produced
// here via moveslice.ScoredMoveSlice.
//
// Grounded on the teacher's internal/movegen/movegen.go
// generatePawnMoves/generateCastling/generateKingMoves/generateMoves
// for the per-piece-type algorithms (adapted from the teacher's magic
// bitboards to the 0x88 mailbox + movetables ray walk spec.md
// prescribes) and on its Position.IsAttacked for the attack-detection
// short-circuit idiom.
package movegen

import (
	"sort"

	"github.com/fhopp/corvid/internal/attacks"
	"github.com/fhopp/corvid/internal/moveslice"
	"github.com/fhopp/corvid/internal/movetables"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// Output bounds from spec.md §4.2.
const (
	MaxMovCount = 128
	MaxCapCount = 64
	MaxCasCount = 2
)

var promoPieces = [4]PieceType{Queen, Knight, Rook, Bishop}

// GenRegMovList returns the side to move's pseudo-legal non-castling
// moves, split into captures (including promotions and en passant) and
// quiets.
func GenRegMovList(p *position.Position) (captures, quiets *moveslice.MoveSlice) {
	captures = moveslice.NewMoveSlice(MaxCapCount)
	quiets = moveslice.NewMoveSlice(MaxMovCount)
	side := p.SideToMove()

	genPawnMoves(p, side, captures, quiets)
	genKnightOrKingMoves(p, side, Knight, captures, quiets)
	genKnightOrKingMoves(p, side, King, captures, quiets)
	genSliderMoves(p, side, Bishop, captures, quiets)
	genSliderMoves(p, side, Rook, captures, quiets)
	genSliderMoves(p, side, Queen, captures, quiets)

	return captures, quiets
}

// GenCaptureList returns only the capturing half of GenRegMovList,
// used directly by quiescence search.
func GenCaptureList(p *position.Position) *moveslice.MoveSlice {
	captures, _ := GenRegMovList(p)
	return captures
}

// GenCastleMovList returns the side to move's pseudo-legal castling
// moves. Unlike the teacher's generator (which defers the "king
// crosses check" test to a later legality filter), this checks the
// king's home square and transit squares for attack right here, per
// spec.md §4.2 — castling has no separate legality pass in this
// engine, so an illegal castle must never reach the move list.
func GenCastleMovList(p *position.Position) *moveslice.MoveSlice {
	ml := moveslice.NewMoveSlice(MaxCasCount)
	side := p.SideToMove()
	cr := p.CastlingRights()
	opp := side.Flip()

	if side == White {
		if cr.Has(CrWK) && empty(p, SqF1, SqG1) && clear(p, opp, SqE1, SqF1, SqG1) {
			ml.PushBack(NewMove(SqE1, SqG1, Castle, PtNone))
		}
		if cr.Has(CrWQ) && empty(p, SqD1, SqC1, SqB1) && clear(p, opp, SqE1, SqD1, SqC1) {
			ml.PushBack(NewMove(SqE1, SqC1, Castle, PtNone))
		}
	} else {
		if cr.Has(CrBK) && empty(p, SqF8, SqG8) && clear(p, opp, SqE8, SqF8, SqG8) {
			ml.PushBack(NewMove(SqE8, SqG8, Castle, PtNone))
		}
		if cr.Has(CrBQ) && empty(p, SqD8, SqC8, SqB8) && clear(p, opp, SqE8, SqD8, SqC8) {
			ml.PushBack(NewMove(SqE8, SqC8, Castle, PtNone))
		}
	}
	return ml
}

func empty(p *position.Position, squares ...Square) bool {
	for _, s := range squares {
		if p.PieceAt(s) != PieceNone {
			return false
		}
	}
	return true
}

func clear(p *position.Position, attacker Color, squares ...Square) bool {
	for _, s := range squares {
		if IsUnderAttack(p, s, attacker) {
			return false
		}
	}
	return true
}

// IsInCheck reports whether side's king is currently attacked.
func IsInCheck(p *position.Position, side Color) bool {
	return IsUnderAttack(p, p.KingSquare(side), side.Flip())
}

// IsUnderAttack reports whether sq is attacked by any piece of the
// given color. Bitmask short-circuits first (spec.md §4.2): knight,
// king and pawn attacks are tested with a single AND against the
// precomputed tables, and sliding attacks are tested against the
// union ray mask before falling back to a movetables walk to confirm
// the first blocker is actually an attacker of a suitable type.
func IsUnderAttack(p *position.Position, sq Square, by Color) bool {
	if attacks.PawnAttacks[attacks.ColorIdx(by.Flip())][sq]&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if attacks.NAttacks[sq]&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if attacks.KAttacks[sq]&p.PiecesBb(by, King) != 0 {
		return true
	}

	bishopsQueens := p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen)
	if attacks.BAttacks[sq]&bishopsQueens != 0 {
		for _, dirIdx := range movetables.BishopDirIdx {
			if s, pc := firstBlocker(p, sq, dirIdx); s != SqNone && pc.ColorOf() == by && (pc.Is(Bishop) || pc.Is(Queen)) {
				return true
			}
		}
	}
	rooksQueens := p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen)
	if attacks.RAttacks[sq]&rooksQueens != 0 {
		for _, dirIdx := range movetables.RookDirIdx {
			if s, pc := firstBlocker(p, sq, dirIdx); s != SqNone && pc.ColorOf() == by && (pc.Is(Rook) || pc.Is(Queen)) {
				return true
			}
		}
	}
	return false
}

// firstBlocker walks movetables' ordered ray from sq in direction
// dirIdx and returns the first occupied square and piece found, or
// (SqNone, PieceNone) if the ray runs off the board unobstructed.
func firstBlocker(p *position.Position, sq Square, dirIdx int) (Square, Piece) {
	for _, s := range movetables.SliderRays[sq][dirIdx] {
		if pc := p.PieceAt(s); pc != PieceNone {
			return s, pc
		}
	}
	return SqNone, PieceNone
}

// rayAttackers walks movetables' ordered ray from sq in direction
// dirIdx and collects every square whose piece continues the x-ray
// (isXray reports bishop/queen on a bishop-type ray, rook/queen on a
// rook-type ray): two same-type sliders stacked on one ray both attack
// sq, since capturing the nearer one simply exposes the next
// (original_source/src/mov_gen.rs's find_attacker_list pushes and
// keeps scanning instead of stopping at the first slider). Any other
// occupied square blocks the ray outright. Knights and kings have no
// ray to walk and are handled separately by FindAttackerList.
func rayAttackers(p *position.Position, sq Square, dirIdx int, isXray func(Piece) bool) []Square {
	var out []Square
	for _, s := range movetables.SliderRays[sq][dirIdx] {
		pc := p.PieceAt(s)
		if pc == PieceNone {
			continue
		}
		if isXray(pc) {
			out = append(out, s)
			continue
		}
		break
	}
	return out
}

// pawnScreenedAttackers checks the diagonal-adjacent square in dirIdx
// for a pawn of pawnColor: pawns only attack diagonally, so that is
// the one square a pawn can attack sq from. If found, the pawn is
// itself an attacker, and the scan continues past it along the same
// ray for a bishop/queen the pawn stands in front of -- spec.md §4.2's
// "behind a captured pawn a long-range diagonal attacker may be
// revealed" (original_source/src/mov_gen.rs checks the identical four
// diagonal-adjacent squares for the opposing pawn before its own
// continuation scan).
func pawnScreenedAttackers(p *position.Position, sq Square, dirIdx int, pawnColor Color) []Square {
	ray := movetables.SliderRays[sq][dirIdx]
	if len(ray) == 0 || p.PieceAt(ray[0]) != MakePiece(pawnColor, Pawn) {
		return nil
	}
	out := []Square{ray[0]}
	for _, s := range ray[1:] {
		pc := p.PieceAt(s)
		if pc == PieceNone {
			continue
		}
		if pc.Is(Bishop) || pc.Is(Queen) {
			out = append(out, s)
			continue
		}
		break
	}
	return out
}

// FindAttackerList enumerates every piece of both colors that attacks
// sq under the current occupancy, split by color and sorted ascending
// by piece value so SEE can always pick the cheapest attacker first
// (spec.md §4.2/§4.4).
func FindAttackerList(p *position.Position, sq Square) (white, black []Square) {
	var all []Square

	(attacks.NAttacks[sq] & (p.PiecesBb(White, Knight) | p.PiecesBb(Black, Knight))).ForEach(func(s Square) {
		all = append(all, s)
	})
	(attacks.KAttacks[sq] & (p.PiecesBb(White, King) | p.PiecesBb(Black, King))).ForEach(func(s Square) {
		all = append(all, s)
	})

	isBishopXray := func(pc Piece) bool { return pc.Is(Bishop) || pc.Is(Queen) }
	isRookXray := func(pc Piece) bool { return pc.Is(Rook) || pc.Is(Queen) }
	for _, dirIdx := range movetables.BishopDirIdx {
		all = append(all, rayAttackers(p, sq, dirIdx, isBishopXray)...)
	}
	for _, dirIdx := range movetables.RookDirIdx {
		all = append(all, rayAttackers(p, sq, dirIdx, isRookXray)...)
	}

	// A black pawn attacks sq from sq's northeast/northwest neighbor;
	// a white pawn attacks it from sq's southeast/southwest neighbor.
	all = append(all, pawnScreenedAttackers(p, sq, movetables.DirNortheast, Black)...)
	all = append(all, pawnScreenedAttackers(p, sq, movetables.DirNorthwest, Black)...)
	all = append(all, pawnScreenedAttackers(p, sq, movetables.DirSoutheast, White)...)
	all = append(all, pawnScreenedAttackers(p, sq, movetables.DirSouthwest, White)...)

	for _, s := range all {
		if p.PieceAt(s).ColorOf() == White {
			white = append(white, s)
		} else {
			black = append(black, s)
		}
	}

	sortByValue := func(list []Square) {
		sort.Slice(list, func(i, j int) bool {
			return PieceValue(p.PieceAt(list[i])) < PieceValue(p.PieceAt(list[j]))
		})
	}
	sortByValue(white)
	sortByValue(black)
	return white, black
}

// IsMovValid reports whether some pseudo-legal move exists from from
// to to in the current position, used to validate a hash-table move
// before trusting it (spec.md §4.2).
func IsMovValid(p *position.Position, from, to Square) bool {
	if from == to || p.PieceAt(from) == PieceNone || p.PieceAt(from).ColorOf() != p.SideToMove() {
		return false
	}
	matches := func(ms *moveslice.MoveSlice) bool {
		for i := 0; i < ms.Len(); i++ {
			m := ms.At(i)
			if m.From() == from && m.To() == to {
				return true
			}
		}
		return false
	}
	captures, quiets := GenRegMovList(p)
	if matches(captures) || matches(quiets) {
		return true
	}
	return matches(GenCastleMovList(p))
}

func genPawnMoves(p *position.Position, side Color, captures, quiets *moveslice.MoveSlice) {
	forward := North
	startRank, promoRank := 1, 7
	if side == Black {
		forward, startRank, promoRank = South, 6, 0
	}
	opp := side.Flip()

	pawns := p.PiecesBb(side, Pawn)
	pawns.ForEach(func(from Square) {
		// single push / double push
		if one := from + Square(forward); one.IsValid() && p.PieceAt(one) == PieceNone {
			if one.Rank() == promoRank {
				pushPromotions(quiets, from, one)
			} else {
				quiets.PushBack(NewMove(from, one, Reg, PtNone))
				if from.Rank() == startRank {
					if two := one + Square(forward); two.IsValid() && p.PieceAt(two) == PieceNone {
						quiets.PushBack(NewMove(from, two, DoublePush, PtNone))
					}
				}
			}
		}

		// diagonal captures
		for _, d := range diagDirs(side) {
			to := from + Square(d)
			if !to.IsValid() {
				continue
			}
			if target := p.PieceAt(to); target != PieceNone && target.ColorOf() == opp {
				if to.Rank() == promoRank {
					pushPromotions(captures, from, to)
				} else {
					captures.PushBack(NewMove(from, to, Reg, PtNone))
				}
			} else if to == p.EnPassantSquare() {
				captures.PushBack(NewMove(from, to, EnPassant, PtNone))
			}
		}
	})
}

func diagDirs(side Color) [2]Direction {
	if side == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func pushPromotions(ml *moveslice.MoveSlice, from, to Square) {
	for _, promo := range promoPieces {
		ml.PushBack(NewMove(from, to, Promo, promo))
	}
}

func genKnightOrKingMoves(p *position.Position, side Color, pt PieceType, captures, quiets *moveslice.MoveSlice) {
	opp := side.Flip()
	pieces := p.PiecesBb(side, pt)
	pieces.ForEach(func(from Square) {
		var dests []Square
		if pt == Knight {
			dests = movetables.KnightMoves[from]
		} else {
			dests = movetables.KingMoves[from]
		}
		for _, to := range dests {
			target := p.PieceAt(to)
			switch {
			case target == PieceNone:
				quiets.PushBack(NewMove(from, to, Reg, PtNone))
			case target.ColorOf() == opp:
				captures.PushBack(NewMove(from, to, Reg, PtNone))
			}
		}
	})
}

func genSliderMoves(p *position.Position, side Color, pt PieceType, captures, quiets *moveslice.MoveSlice) {
	opp := side.Flip()
	dirs := movetables.RookDirIdx[:]
	if pt == Bishop {
		dirs = movetables.BishopDirIdx[:]
	}
	if pt == Queen {
		dirs = append(append([]int{}, movetables.RookDirIdx[:]...), movetables.BishopDirIdx[:]...)
	}

	pieces := p.PiecesBb(side, pt)
	pieces.ForEach(func(from Square) {
		for _, dirIdx := range dirs {
			for _, to := range movetables.SliderRays[from][dirIdx] {
				target := p.PieceAt(to)
				if target == PieceNone {
					quiets.PushBack(NewMove(from, to, Reg, PtNone))
					continue
				}
				if target.ColorOf() == opp {
					captures.PushBack(NewMove(from, to, Reg, PtNone))
				}
				break
			}
		}
	})
}

// CountRookMobility returns the number of squares a rook on sq could
// move to (captures and quiets both), ignoring pins.
func CountRookMobility(p *position.Position, sq Square) int {
	return countSliderMobility(p, sq, movetables.RookDirIdx[:])
}

// CountBishopMobility is CountRookMobility's diagonal counterpart.
func CountBishopMobility(p *position.Position, sq Square) int {
	return countSliderMobility(p, sq, movetables.BishopDirIdx[:])
}

// CountKnightMobility returns the number of on-board squares a knight
// on sq attacks that aren't occupied by a friendly piece.
func CountKnightMobility(p *position.Position, sq Square) int {
	own := p.PieceAt(sq).ColorOf()
	n := 0
	for _, to := range movetables.KnightMoves[sq] {
		if target := p.PieceAt(to); target == PieceNone || target.ColorOf() != own {
			n++
		}
	}
	return n
}

func countSliderMobility(p *position.Position, sq Square, dirs []int) int {
	own := p.PieceAt(sq).ColorOf()
	n := 0
	for _, dirIdx := range dirs {
		for _, to := range movetables.SliderRays[sq][dirIdx] {
			target := p.PieceAt(to)
			if target == PieceNone {
				n++
				continue
			}
			if target.ColorOf() != own {
				n++
			}
			break
		}
	}
	return n
}
