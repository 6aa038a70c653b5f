/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package config

// evalConfiguration holds the centipawn constants consumed by
// internal/evaluator, broken out as named settings rather than
// scattered literals so config.Settings.String() can print them and a
// config.toml override can tune them without a rebuild. Named and
// defaulted per the values spec.md §4.3 gives for each term; the
// teacher's evalconfig.go is the structural model (a flat bag of
// int16-ish constants set in init()), but the field names and values
// themselves follow the evaluator's own contract, not the teacher's
// piece-eval experiment flags. UseLazyEval and LazyEvalThreshold are
// not read by internal/evaluator.
type evalConfiguration struct {
	UseLazyEval       bool
	LazyEvalThreshold int32

	// Piece-square term magnitudes; the evaluator picks one of these
	// per square/piece/phase according to its own comfort/preference/
	// avoidance mask lookup.
	PsqtSmall int32
	PsqtMid   int32
	PsqtLarge int32

	RookOpenFileBonus     int32
	RookSemiOpenFileBonus int32

	PawnIsolatedMalus int32
	PawnDoubledMalus  int32
	PawnPassedWeight  int32
	EndgamePawnVal    int32

	KingShieldMalus     int32
	KingSafeSpotBonus   int32
	KingOwnPawnBonus    int32
	KingOpenFileMalus   int32
	KingShieldMinPawns  int

	// Phase gate thresholds (spec.md §4.3): a side is "endgame" once
	// its non-pawn non-king piece count drops below this, or when
	// queenless with few remaining minors/majors and pawns.
	EndgameNonPawnPieces   int
	EndgameQueenlessPieces int
	EndgameQueenlessPawns  int
}

func init() {
	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.PsqtSmall = 10
	Settings.Eval.PsqtMid = 20
	Settings.Eval.PsqtLarge = 20

	Settings.Eval.RookOpenFileBonus = 20
	Settings.Eval.RookSemiOpenFileBonus = 20

	Settings.Eval.PawnIsolatedMalus = -20
	Settings.Eval.PawnDoubledMalus = -20
	Settings.Eval.PawnPassedWeight = 10
	Settings.Eval.EndgamePawnVal = 5

	Settings.Eval.KingShieldMalus = -50
	Settings.Eval.KingShieldMinPawns = 2
	Settings.Eval.KingSafeSpotBonus = 30
	Settings.Eval.KingOwnPawnBonus = 30
	Settings.Eval.KingOpenFileMalus = -15

	Settings.Eval.EndgameNonPawnPieces = 3
	Settings.Eval.EndgameQueenlessPieces = 3
	Settings.Eval.EndgameQueenlessPawns = 3
}

func setupEval() {}
