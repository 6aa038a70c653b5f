/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package config

// searchConfiguration holds the knobs internal/search reads at the
// start of a search call. Structurally grounded on the teacher's
// searchConfiguration (a flat bag of bool/int toggles set in init()),
// the individual fields and defaults come from spec.md §4.5's named
// constants instead of the teacher's pruning/reduction experiments.
type searchConfiguration struct {
	UseQuiescence bool
	UseSEE        bool

	PvTrackLength    int
	RefutationTableSize int
	WindowSize          int
	MinBranchingFactor  int
	MinReductionDepth   int
	MaxDrawSearchDepth  int
	EqualExchangeVal    int32

	NodesPerTimeCheck int

	UseTT    bool
	TTSizeMb int

	// Opening book (spec.md §11.1 supplemented collaborator)
	UseBook  bool
	BookPath string
}

func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true

	Settings.Search.PvTrackLength = 16
	Settings.Search.RefutationTableSize = 128
	Settings.Search.WindowSize = 10
	Settings.Search.MinBranchingFactor = 2
	Settings.Search.MinReductionDepth = 3
	Settings.Search.MaxDrawSearchDepth = 32
	Settings.Search.EqualExchangeVal = 0

	Settings.Search.NodesPerTimeCheck = 1024

	Settings.Search.UseTT = false
	Settings.Search.TTSizeMb = 64

	Settings.Search.UseBook = false
	Settings.Search.BookPath = "./assets/book.yaml"
}

func setupSearch() {}
