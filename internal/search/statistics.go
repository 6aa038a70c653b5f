/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/fhopp/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// Statistics are counters and current-state fields, some of them
// surfaced through the UCI "info" line, trimmed from the
// teacher's much larger internal/search/statistics.go down to what
// spec.md §4.5/§6 actually need: Corvid doesn't implement the
// teacher's null-move/LMR/futility pruning machinery, so none of its
// bookkeeping fields apply here.
type Statistics struct {
	NodeCount  uint64
	QNodeCount uint64
	SelDepth   int

	AspirationResearches uint64
	BestMoveChanges      uint64
	Checkmates           uint64
	Stalemates           uint64

	CurrentIterationDepth int
	CurrentBestMove       Move
	CurrentBestValue      Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
