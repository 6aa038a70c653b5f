/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package search implements Corvid's search engine (spec.md C7): an
// iterative-deepening, aspiration-windowed alpha-beta search with
// quiescence, static-exchange-evaluated and history-ordered move
// ordering, a two-slot refutation table and a persistent root move
// list re-scored across iterations.
//
// Grounded throughout on original_source/src/search.rs, the
// authoritative source spec.md's search section was distilled from:
// scores are kept in raw White-centric sign (never negated across a
// recursive call, only passed through player_sign-aware comparisons),
// and alpha/beta are swapped rather than negated when recursing — a
// different idiom from classical negamax that this package replicates
// node for node rather than approximating with a textbook template.
// The surrounding shape (a long-lived engine struct holding its own
// history/refutation tables, an Instant-style time tracker, a println
// "info" line per completed iteration) follows the teacher's
// internal/search/{search,alphabeta}.go.
package search

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/fhopp/corvid/internal/assert"
	"github.com/fhopp/corvid/internal/config"
	"github.com/fhopp/corvid/internal/history"
	mylogging "github.com/fhopp/corvid/internal/logging"
	"github.com/fhopp/corvid/internal/movegen"
	"github.com/fhopp/corvid/internal/moveslice"
	"github.com/fhopp/corvid/internal/position"
	"github.com/fhopp/corvid/internal/transpositiontable"
	"github.com/fhopp/corvid/internal/util"
	. "github.com/fhopp/corvid/internal/types"
)

// refSlot is one remembered beta-cutoff move for a ply, paired with
// the (signed) score it cut off at.
type refSlot struct {
	score Value
	mov   Move
}

// refutationEntry is a ply's two-slot refutation memory: slot 0 is the
// most recent cutoff move, slot 1 the one it displaced.
type refutationEntry struct {
	slots [2]refSlot
}

// mvKind tags what a single move's search attempt accomplished.
type mvKind uint8

const (
	mvNoop mvKind = iota
	mvAlpha
	mvBeta
)

// mvResult is search_mov's verdict on one move: whether it merely
// raised alpha, caused a beta cutoff, or changed nothing.
type mvResult struct {
	kind  mvKind
	score Value
}

// Search holds everything that persists across one top-level Go call:
// move-ordering tables, the root move list, and abort/time state. Go
// cooperatively rejects a second concurrent call via isRunning rather
// than queuing it — spec.md §5 runs exactly one search at a time.
type Search struct {
	log *logging.Logger

	hist       *history.History
	refutation []refutationEntry
	tt         *transpositiontable.Table

	// isRunning rejects a second concurrent Go call rather than
	// blocking it (spec.md §5: at most one search active at a time).
	isRunning *semaphore.Weighted

	masterPV  []Move
	rootMoves *moveslice.ScoredMoveSlice

	pvLen int

	startTime time.Time
	maxTime   time.Duration
	// abort is read and written with atomic ops since Stop can be
	// called from a UCI goroutine while Go is running in another.
	abort int32

	Stats Statistics

	// InfoWriter, when set, receives one formatted UCI "info" line per
	// completed iteration (spec.md §6). Nil is a legal no-op writer for
	// tests and for embedding the engine without a UCI front end.
	InfoWriter func(string)
}

// New creates a Search with empty move-ordering tables.
func New() *Search {
	s := &Search{
		log:       mylogging.GetSearchLog(),
		hist:      history.New(),
		pvLen:     config.Settings.Search.PvTrackLength,
		isRunning: semaphore.NewWeighted(1),
	}
	s.refutation = make([]refutationEntry, config.Settings.Search.RefutationTableSize)
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.New(config.Settings.Search.TTSizeMb)
		s.log.Info("search: transposition table enabled")
	}
	return s
}

func (s *Search) newPV() []Move {
	return make([]Move, s.pvLen)
}

// Stop requests that a running Go call return its current best move
// as soon as the next node-count time-check notices, mirroring the
// UCI "stop" command (spec.md §6). Safe to call from any goroutine;
// a no-op if no search is running.
func (s *Search) Stop() {
	atomic.StoreInt32(&s.abort, 1)
}

// NewGame clears the move-ordering tables and the transposition table
// for a fresh game, matching the UCI "ucinewgame" command: none of the
// previous game's history/killer/hash data should bias the next one.
func (s *Search) NewGame() {
	s.hist.Clear()
	for i := range s.refutation {
		s.refutation[i] = refutationEntry{}
	}
	if s.tt != nil {
		s.tt.Clear()
	}
}

// SetHashEnabled toggles the transposition table on or off, allocating
// it on first enable and leaving it allocated (just gated by UseTT
// being read in abSearch) on disable, so a later re-enable doesn't pay
// another allocation. Grounded on the teacher's "Use_Hash" UCI option
// handler.
func (s *Search) SetHashEnabled(enabled bool) {
	config.Settings.Search.UseTT = enabled
	if enabled && s.tt == nil {
		s.tt = transpositiontable.New(config.Settings.Search.TTSizeMb)
	}
}

// ResizeHash changes the transposition table's capacity, allocating it
// if it doesn't exist yet. Grounded on the teacher's "Hash" spin option
// handler, which calls into the engine's resizeCache.
func (s *Search) ResizeHash(sizeInMb int) {
	config.Settings.Search.TTSizeMb = sizeInMb
	if s.tt == nil {
		s.tt = transpositiontable.New(sizeInMb)
		return
	}
	s.tt.Resize(sizeInMb)
}

// ClearHash empties the transposition table without resizing it,
// matching the teacher's "Clear Hash" button option.
func (s *Search) ClearHash() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

func playerSign(c Color) Value {
	if c == White {
		return 1
	}
	return -1
}

// infiniteSearchTime bounds an "infinite"/depth-only/nodes-only search
// so the time-check in abSearch still has something finite to compare
// against; such a search is expected to end via the depth/node limit
// below, not via this cap.
const infiniteSearchTime = 24 * time.Hour

// Go searches p under limits and returns the best move found
// (MoveNone if the position has none). This is the engine's single
// entry point from the UCI collaborator (spec.md §4.5/§6), extended
// per §12 with depth and node limits alongside the clock.
func (s *Search) Go(p *position.Position, limits *Limits) Move {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		return MoveNone
	}
	defer s.isRunning.Release(1)

	maxTime := infiniteSearchTime
	if limits.MoveTime > 0 || limits.TimeControl {
		maxTime = limits.TimeForMove(p.SideToMove() == White)
	}

	s.startTime = time.Now()
	s.maxTime = maxTime
	atomic.StoreInt32(&s.abort, 0)
	s.masterPV = nil
	s.rootMoves = nil
	s.Stats = Statistics{}
	if s.tt != nil && config.Settings.Search.UseTT {
		s.tt.AgeEntries()
	}

	sign := playerSign(p.SideToMove())
	beta := sign * KingValue
	alpha := -beta

	depth := 1
	shouldCleanupHistory := false
	bestMove := MoveNone
	var previousNodeCount uint64 = 1
	timeAfterPreviousIter := time.Since(s.startTime)

	for {
		s.Stats.NodeCount, s.Stats.QNodeCount, s.Stats.SelDepth = 0, 0, 0
		s.Stats.CurrentIterationDepth = depth

		if shouldCleanupHistory {
			s.hist.Clear()
			for i := range s.refutation {
				s.refutation[i] = refutationEntry{}
			}
			shouldCleanupHistory = false
		}

		pv := s.newPV()
		score := s.rootSearch(p, pv, alpha, beta, depth, 0, 0)

		if atomic.LoadInt32(&s.abort) != 0 {
			break
		}
		if s.rootMoves == nil || s.rootMoves.Len() == 0 {
			break
		}

		if score*sign <= alpha*sign {
			alpha = -KingValue * sign
			shouldCleanupHistory = true
			continue
		}
		if score*sign >= beta*sign {
			beta = KingValue * sign
			shouldCleanupHistory = true
			continue
		}

		bestMove = pv[0]
		s.Stats.CurrentBestMove = bestMove
		s.Stats.CurrentBestValue = score

		elapsed := time.Since(s.startTime)
		nps := util.Nps(s.Stats.NodeCount, elapsed)

		if score*sign > TermVal {
			s.emitInfo(fmt.Sprintf("info score mate %d depth %d seldepth %d nodes %d nps %d time %d pv %s",
				(KingValue-absValue(score)+1)/2, depth, s.Stats.SelDepth, s.Stats.NodeCount, nps, elapsed.Milliseconds(), formatPV(pv)))
			break
		}
		s.emitInfo(fmt.Sprintf("info score cp %d depth %d seldepth %d nodes %d nps %d time %d pv %s",
			score*sign, depth, s.Stats.SelDepth, s.Stats.NodeCount, nps, elapsed.Milliseconds(), formatPV(pv)))

		currentTime := time.Since(s.startTime)
		branchFactor := uint64(1)
		if previousNodeCount > 0 {
			branchFactor = s.Stats.NodeCount / previousNodeCount
		}
		if int(branchFactor) < config.Settings.Search.MinBranchingFactor {
			branchFactor = uint64(config.Settings.Search.MinBranchingFactor)
		}
		estimatedNextIter := time.Duration(branchFactor) * (currentTime - timeAfterPreviousIter)

		if currentTime+estimatedNextIter > maxTime && currentTime > maxTime/2 {
			break
		}
		if score == 0 && depth > config.Settings.Search.MaxDrawSearchDepth {
			break
		}
		if limits.Depth > 0 && depth >= limits.Depth {
			break
		}
		if limits.Nodes > 0 && s.Stats.NodeCount >= limits.Nodes {
			break
		}

		depth++
		alpha = score - sign*Value(config.Settings.Search.WindowSize)
		beta = score + sign*Value(config.Settings.Search.WindowSize)

		previousNodeCount = s.Stats.NodeCount
		timeAfterPreviousIter = currentTime

		s.masterPV = append([]Move(nil), pv...)
	}

	// A quiet "0000" bestmove (MoveNone's UCI string) is a legal answer
	// only when the root genuinely has no pseudo-legal move to offer;
	// the assert catches an iteration that aborted before ever setting
	// bestMove despite a populated root move list, which would be a bug
	// elsewhere in this loop rather than an empty-board edge case.
	if bestMove == MoveNone {
		assert.Assert(s.rootMoves == nil || s.rootMoves.Len() == 0,
			"search.Go: no best move found despite a populated root move list")
	}
	return bestMove
}

func (s *Search) emitInfo(line string) {
	if s.InfoWriter != nil {
		s.InfoWriter(line)
	}
}

func absValue(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

func formatPV(pv []Move) string {
	var out string
	for _, m := range pv {
		if m == MoveNone {
			break
		}
		if out != "" {
			out += " "
		}
		out += m.UCI()
	}
	return out
}

// rootSearch builds (once, the first time it runs) the persistent root
// move list, then walks it in descending-score order, rescoring each
// move with its actual signed search value as it goes so the next
// iteration's sort reflects this iteration's findings.
func (s *Search) rootSearch(p *position.Position, pv []Move, alpha, beta Value, depth, depthExtendCount, ply int) Value {
	sign := playerSign(p.SideToMove())

	if s.rootMoves == nil {
		s.buildRootMoves(p, depth, sign)
	}
	s.rootMoves.Sort()

	for i := 0; i < s.rootMoves.Len(); i++ {
		mov := s.rootMoves.At(i).M

		nextPV := s.newPV()
		p.DoMove(mov)
		score := s.abSearch(p, i == 0, nextPV, beta, alpha, depth-1, depthExtendCount, ply+1)
		p.UndoMove()

		if score*sign >= beta*sign {
			return score
		}
		if score*sign > alpha*sign {
			alpha = score
			pv[0] = mov
			copy(pv[1:], nextPV[:len(pv)-1])
		}

		s.rootMoves.SetScore(i, int32(score*sign))
	}

	return alpha
}

func (s *Search) buildRootMoves(p *position.Position, depth int, sign Value) {
	captures, quiets := movegen.GenRegMovList(p)
	s.rootMoves = moveslice.NewScoredMoveSlice(captures.Len() + quiets.Len() + movegen.MaxCasCount)

	for i := 0; i < captures.Len(); i++ {
		cap := captures.At(i)
		exchange := exchangeScore(p, cap)
		var score Value
		if exchange > Value(config.Settings.Search.EqualExchangeVal) || depth == 1 {
			score = exchange
		} else {
			score = See(p, cap.To(), p.PieceAt(cap.From()))*sign + ValOf(cap.Promotion())
		}
		s.rootMoves.PushBack(cap, int32(score))
	}

	for i := 0; i < quiets.Len(); i++ {
		q := quiets.At(i)
		s.rootMoves.PushBack(q, int32(ValOf(q.Promotion())))
	}

	hasCastleRights := (sign > 0 && p.CastlingRights()&(CrWK|CrWQ) != 0) || (sign < 0 && p.CastlingRights()&(CrBK|CrBQ) != 0)
	if hasCastleRights {
		castles := movegen.GenCastleMovList(p)
		for i := 0; i < castles.Len(); i++ {
			s.rootMoves.PushBack(castles.At(i), 0)
		}
	}
}

func exchangeScore(p *position.Position, m Move) Value {
	captured := p.PieceAt(m.To())
	attacker := p.PieceAt(m.From())
	return PieceValue(captured) - PieceValue(attacker) + ValOf(m.Promotion())
}
