/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package evaluator implements static position scoring (spec.md C6):
// material plus a handful of positional terms (piece-square comfort,
// rook open files, pawn structure, king safety) gated by a simple
// midgame/endgame phase test. The score is always from White's
// perspective, in centipawns.
//
// Grounded on the teacher's internal/evaluator/evaluator.go for the
// material-plus-terms shape and config.Settings.Eval wiring; the term
// magnitudes and the phase-gate formula itself are ported from
// original_source/src/eval.rs's eval_state, the authoritative source
// spec.md's evaluation section was distilled from. Piece-square
// preference regions (internal/evaluator/masks.go) are ported
// bit-for-bit from eval.rs's own mask constants.
package evaluator

import (
	"github.com/fhopp/corvid/internal/attacks"
	"github.com/fhopp/corvid/internal/config"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// ValOf returns the material value of a piece, 0 for PieceNone.
func ValOf(p Piece) Value {
	return PieceValue(p)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// EvalState statically scores a position in centipawns from White's
// perspective (spec.md §4.3). It never looks beyond the current
// position — search is responsible for everything tactical.
func EvalState(p *position.Position) Value {
	cfg := &config.Settings.Eval

	var baseScore, midgameScore, endgameScore int32
	var wkSafety, bkSafety int32
	var wqCount, bqCount int

	wPawns := p.PiecesBb(White, Pawn)
	bPawns := p.PiecesBb(Black, Pawn)
	wPawnCount := wPawns.PopCount()
	bPawnCount := bPawns.PopCount()
	wPieceCount := p.OccupiedBb(White).PopCount() - wPawnCount - 1
	bPieceCount := p.OccupiedBb(Black).PopCount() - bPawnCount - 1

	p.OccupiedAll().ForEach(func(sq Square) {
		piece := p.PieceAt(sq)
		c := piece.ColorOf()
		ci := attacks.ColorIdx(c)
		sign := int32(1)
		ownPawns, oppPawns := wPawns, bPawns
		if c == Black {
			sign = -1
			ownPawns, oppPawns = bPawns, wPawns
		}

		switch piece.TypeOf() {
		case Pawn:
			baseScore += sign * int32(PawnValue)

			if pawnComf[ci].Has(sq) {
				midgameScore += sign * cfg.PsqtSmall
				if pawnPref[ci].Has(sq) {
					midgameScore += sign * cfg.PsqtLarge
				}
			}

			rank := sq.Rank()
			endgameScore += sign * int32(rank) * cfg.EndgamePawnVal

			advanced := (c == White && rank >= 4) || (c == Black && rank <= 3)
			if advanced {
				if attacks.PawnFrontControl[ci][sq]&oppPawns == 0 {
					weight := rank - 4
					if c == Black {
						weight = 5 - rank
					}
					passVal := cfg.PawnPassedWeight * int32(weight*weight)
					midgameScore += sign * passVal
					endgameScore += sign * passVal
					if attacks.PawnAdjacentFiles[ci][sq]&ownPawns != 0 {
						midgameScore += sign * passVal
						endgameScore += sign * passVal
					}
				}
			} else if attacks.PawnAdjacentFiles[ci][sq]&ownPawns == 0 && attacks.PawnFrontControl[ci][sq]&ownPawns == 0 {
				midgameScore += sign * cfg.PawnIsolatedMalus
				if (attacks.FileMasks[sq] & ownPawns).PopCount() > 1 {
					midgameScore += sign * cfg.PawnDoubledMalus
					endgameScore += sign * cfg.PawnDoubledMalus
				}
			}

		case Knight:
			baseScore += sign * int32(KnightValue)
			if knightComf[ci].Has(sq) {
				midgameScore += sign * cfg.PsqtSmall
				if knightPref[ci].Has(sq) {
					midgameScore += sign * cfg.PsqtLarge
				}
			} else if knightAvoid[ci].Has(sq) {
				midgameScore -= sign * cfg.PsqtMid
			}

		case Bishop:
			baseScore += sign * int32(BishopValue)
			if bishopComf[ci].Has(sq) {
				midgameScore += sign * cfg.PsqtSmall
			} else if bishopAvoid[ci].Has(sq) {
				midgameScore -= sign * cfg.PsqtMid
			}

		case Rook:
			baseScore += sign * int32(RookValue)
			if rookComf[ci].Has(sq) {
				midgameScore += sign * cfg.PsqtSmall
				if rookPref[ci].Has(sq) {
					midgameScore += sign * cfg.PsqtLarge
				}
			} else if rookAvoid[ci].Has(sq) {
				midgameScore -= sign * cfg.PsqtMid
			}

			fileMask := attacks.FileMasks[sq]
			if fileMask&ownPawns == 0 {
				midgameScore += sign * cfg.RookSemiOpenFileBonus
				oppRook := p.PiecesBb(c.Flip(), Rook)
				if fileMask&oppPawns == 0 && fileMask&oppRook == 0 {
					midgameScore += sign * cfg.RookOpenFileBonus
				}
			}

		case Queen:
			baseScore += sign * int32(QueenValue)
			if queenComf[ci].Has(sq) {
				midgameScore += sign * cfg.PsqtSmall
			} else if queenAvoid[ci].Has(sq) {
				midgameScore -= sign * cfg.PsqtMid
			}
			if c == White {
				wqCount++
			} else {
				bqCount++
			}

		case King:
			baseScore += sign * int32(KingValue)
			if kingEndgameComf.Has(sq) {
				endgameScore += sign * cfg.PsqtSmall
			}

			ownRook := p.PiecesBb(c, Rook)
			oppRook := p.PiecesBb(c.Flip(), Rook)
			shield := (attacks.KingZone[ci][sq] & ownPawns).PopCount()

			// wkSafety/bkSafety stay signed from White's perspective
			// throughout: danger to White's king is negative, danger
			// to Black's is positive, so either folds straight into
			// midgameScore once gated on whether the attacker still
			// has a queen to exploit it with. Multiplying each
			// already-signed malus/bonus constant by sign (which is
			// -1 for Black) produces exactly that flip.
			safety := &wkSafety
			if c == Black {
				safety = &bkSafety
			}

			if shield < cfg.KingShieldMinPawns {
				*safety += sign * cfg.KingShieldMalus
			} else if kingSafeSpot[ci].Has(sq) {
				*safety += sign * cfg.KingSafeSpotBonus
				if attacks.FileMasks[sq]&ownPawns != 0 {
					*safety += sign * cfg.KingOwnPawnBonus
				}
			}

			fileMask := attacks.FileMasks[sq]
			if fileMask&oppRook != 0 && fileMask&oppPawns == 0 {
				*safety += sign * cfg.KingOpenFileMalus
			}
			if sq.File() > 0 {
				fm := attacks.FileMasks[SquareOf(sq.File()-1, 0)]
				if fm&oppRook != 0 && fm&oppPawns == 0 && fm&ownRook == 0 {
					*safety += sign * cfg.KingOpenFileMalus
				}
			}
			if sq.File() < 7 {
				fm := attacks.FileMasks[SquareOf(sq.File()+1, 0)]
				if fm&oppRook != 0 && fm&oppPawns == 0 && fm&ownRook == 0 {
					*safety += sign * cfg.KingOpenFileMalus
				}
			}
		}
	})

	isEndgame := wPieceCount < cfg.EndgameNonPawnPieces || bPieceCount < cfg.EndgameNonPawnPieces ||
		((wqCount == 0 || bqCount == 0) &&
			(wPieceCount <= cfg.EndgameQueenlessPieces || bPieceCount <= cfg.EndgameQueenlessPieces) &&
			(wPawnCount <= cfg.EndgameQueenlessPawns || bPawnCount <= cfg.EndgameQueenlessPawns))

	if isEndgame {
		if wPawnCount+bPawnCount == 0 && abs32(baseScore) < int32(RookValue) {
			return 0
		}
		return Value(baseScore + endgameScore)
	}

	if bqCount > 0 {
		midgameScore += wkSafety
	}
	if wqCount > 0 {
		midgameScore += bkSafety
	}
	return Value(baseScore + midgameScore)
}
