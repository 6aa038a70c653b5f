/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	"sync/atomic"
	"time"

	"github.com/fhopp/corvid/internal/config"
	"github.com/fhopp/corvid/internal/evaluator"
	"github.com/fhopp/corvid/internal/movegen"
	"github.com/fhopp/corvid/internal/moveslice"
	"github.com/fhopp/corvid/internal/position"
	. "github.com/fhopp/corvid/internal/types"
)

// abSearch is the interior alpha-beta node: PV move first, then
// captures (MVV-LVA/SEE-scored), the remembered refutation move,
// castles, and finally history-ordered quiets with a null-window
// reduction probe. Grounded node-for-node on
// original_source/src/search.rs's ab_search.
func (s *Search) abSearch(p *position.Position, onPV bool, pv []Move, alpha, beta Value, depth, depthExtendCount, ply int) Value {
	if atomic.LoadInt32(&s.abort) != 0 {
		return 0
	}

	s.Stats.NodeCount++
	if s.Stats.NodeCount%uint64(config.Settings.Search.NodesPerTimeCheck) == 0 {
		if time.Since(s.startTime) > s.maxTime {
			atomic.StoreInt32(&s.abort, 1)
			return 0
		}
	}

	if p.IsDraw(ply) {
		return 0
	}

	sign := playerSign(p.SideToMove())
	inCheck := movegen.IsInCheck(p, p.SideToMove())

	if inCheck && (ply < 2 || depthExtendCount*2 <= ply) {
		depth++
		depthExtendCount++
	}

	if depth == 0 {
		if !config.Settings.Search.UseQuiescence {
			return evaluator.EvalState(p)
		}
		return s.qSearch(p, alpha, beta, ply)
	}

	key := p.ZobristKey()
	occ := uint64(p.OccupiedAll())
	origAlpha := alpha
	if s.tt != nil && config.Settings.Search.UseTT {
		if e := s.tt.Probe(key, occ, p.SideToMove(), p.CastlingRights(), p.EnPassantSquare()); e != nil && int(e.Depth()) >= depth {
			v := e.Value()
			switch e.Bound() {
			case VtExact:
				return v
			case VtAlpha:
				if v*sign <= alpha*sign {
					return v
				}
			case VtBeta:
				if v*sign >= beta*sign {
					return v
				}
			}
		}
	}

	var pvMove Move
	if onPV && len(s.masterPV) > ply {
		pvMove = s.masterPV[ply]
		if pvMove != MoveNone {
			isCapture := p.PieceAt(pvMove.To()) != PieceNone
			switch r := s.searchMov(p, true, pv, pvMove, isCapture, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
			case mvBeta:
				s.ttStore(p, key, pvMove, depth, r.score, VtBeta)
				return r.score
			case mvAlpha:
				alpha = r.score
			}
		}
	}

	captures, quiets := movegen.GenRegMovList(p)

	lastMove := p.LastMove()
	lastCaptured := p.LastCapturedPiece()

	scoredCaptures := moveslice.NewScoredMoveSlice(captures.Len())
	for i := 0; i < captures.Len(); i++ {
		cap := captures.At(i)
		if cap == pvMove {
			continue
		}

		var score Value
		if lastCaptured != PieceNone && cap.To() == lastMove.To() {
			score = TermVal
		} else {
			exchange := exchangeScore(p, cap)
			if exchange >= Value(config.Settings.Search.EqualExchangeVal) || depth == 1 || !config.Settings.Search.UseSEE {
				score = exchange
			} else {
				score = See(p, cap.To(), p.PieceAt(cap.From()))*sign + ValOf(cap.Promotion())
			}
		}
		scoredCaptures.PushBack(cap, int32(score))
	}
	scoredCaptures.Sort()

	for i := 0; i < scoredCaptures.Len(); i++ {
		cap := scoredCaptures.At(i).M
		switch r := s.searchMov(p, false, pv, cap, true, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
		case mvBeta:
			s.ttStore(p, key, cap, depth, r.score, VtBeta)
			return r.score
		case mvAlpha:
			alpha = r.score
		}
	}

	var refutationMov Move
	if ply < len(s.refutation) {
		entry := &s.refutation[ply]
		if entry.slots[0].mov != MoveNone && containsMove(quiets, entry.slots[0].mov) {
			refutationMov = entry.slots[0].mov
		} else if entry.slots[1].mov != MoveNone && containsMove(quiets, entry.slots[1].mov) {
			refutationMov = entry.slots[1].mov
		}
	}

	if refutationMov != MoveNone {
		switch r := s.searchMov(p, false, pv, refutationMov, false, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
		case mvBeta:
			s.ttStore(p, key, refutationMov, depth, r.score, VtBeta)
			return r.score
		case mvAlpha:
			alpha = r.score
		}
	}

	hasCastleRights := (sign > 0 && p.CastlingRights()&(CrWK|CrWQ) != 0) || (sign < 0 && p.CastlingRights()&(CrBK|CrBQ) != 0)
	if hasCastleRights {
		castles := movegen.GenCastleMovList(p)
		for i := 0; i < castles.Len(); i++ {
			cas := castles.At(i)
			if cas == pvMove || cas == refutationMov {
				continue
			}
			switch r := s.searchMov(p, false, pv, cas, false, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
			case mvBeta:
				s.ttStore(p, key, cas, depth, r.score, VtBeta)
				return r.score
			case mvAlpha:
				alpha = r.score
			}
		}
	}

	scoredQuiets := moveslice.NewScoredMoveSlice(quiets.Len())
	for i := 0; i < quiets.Len(); i++ {
		q := quiets.At(i)
		if q == pvMove || q == refutationMov {
			continue
		}
		if q.Type() == Promo && q.Promotion() == Queen {
			scoredQuiets.PushBack(q, maxHistoryScore)
			continue
		}
		scoredQuiets.PushBack(q, int32(s.hist.Value(p.SideToMove(), q.From(), q.To())))
	}
	scoredQuiets.Sort()

	for i := 0; i < scoredQuiets.Len(); i++ {
		q := scoredQuiets.At(i).M

		if !inCheck && !onPV && depth >= config.Settings.Search.MinReductionDepth {
			probeExtendCount := depthExtendCount
			if probeExtendCount > 0 {
				probeExtendCount--
			}
			probe := s.searchMov(p, false, pv, q, false, alpha, alpha+sign, depth-1, probeExtendCount, ply, sign)
			if probe.kind == mvNoop {
				continue
			}
			switch r := s.searchMov(p, false, pv, q, false, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
			case mvBeta:
				s.ttStore(p, key, q, depth, r.score, VtBeta)
				return r.score
			case mvAlpha:
				alpha = r.score
			}
			continue
		}

		switch r := s.searchMov(p, false, pv, q, false, alpha, beta, depth, depthExtendCount, ply, sign); r.kind {
		case mvBeta:
			s.ttStore(p, key, q, depth, r.score, VtBeta)
			return r.score
		case mvAlpha:
			alpha = r.score
		}
	}

	signedScore := alpha * sign
	if signedScore < -TermVal {
		if pv[1] == MoveNone {
			pv[0] = MoveNone
		}
		if !inCheck && s.inStaleMate(p) {
			s.Stats.Stalemates++
			return 0
		}
	}

	bound := VtAlpha
	if alpha != origAlpha {
		bound = VtExact
	}
	s.ttStore(p, key, pv[0], depth, alpha, bound)
	return alpha
}

// ttStore records a search result in the transposition table when one
// is configured (spec.md §9 Open Question 4); a no-op otherwise. p's
// occupancy, side to move, castling rights and en-passant square are
// stored alongside key since Corvid's zobrist hash omits them
// (spec.md §4.6).
func (s *Search) ttStore(p *position.Position, key uint64, mov Move, depth int, value Value, bound ValueType) {
	if s.tt == nil || !config.Settings.Search.UseTT {
		return
	}
	s.tt.Put(key, uint64(p.OccupiedAll()), p.SideToMove(), p.CastlingRights(), p.EnPassantSquare(), mov, int8(depth), value, bound, ValueNA)
}

// maxHistoryScore forces queen promotions to the front of the quiet
// move list, matching search.rs's u64::MAX sentinel (clamped to int32
// range since Corvid's ScoredMoveSlice scores are int32).
const maxHistoryScore = int32(1<<31 - 1)

func containsMove(ms *moveslice.MoveSlice, m Move) bool {
	for i := 0; i < ms.Len(); i++ {
		if ms.At(i) == m {
			return true
		}
	}
	return false
}

// searchMov plays one move, recurses, undoes it, and folds the result
// into the refutation table / history heuristic / PV as appropriate.
// The king-capture short-circuit is checked before DoMove since
// Position.DoMove asserts a king can never be captured.
func (s *Search) searchMov(p *position.Position, onPV bool, pv []Move, mov Move, isCapture bool, alpha, beta Value, depth, depthExtendCount, ply int, sign Value) mvResult {
	if atomic.LoadInt32(&s.abort) != 0 {
		return mvResult{mvBeta, 0}
	}

	if isCapture {
		captured := p.PieceAt(mov.To())
		if captured.Is(King) {
			pv[0] = MoveNone
			return mvResult{mvBeta, sign * (KingValue - Value(ply))}
		}
	}

	from, to := mov.From(), mov.To()
	mover := p.SideToMove()

	nextPV := s.newPV()
	p.DoMove(mov)
	score := s.abSearch(p, onPV, nextPV, beta, alpha, depth-1, depthExtendCount, ply+1)
	p.UndoMove()

	if score*sign >= beta*sign {
		if !isCapture {
			if ply < len(s.refutation) {
				entry := &s.refutation[ply]
				entry.slots[1] = entry.slots[0]
				entry.slots[0] = refSlot{score, mov}
			}
			s.hist.Add(mover, from, to, depth)
		}
		return mvResult{mvBeta, score}
	}

	if score*sign > alpha*sign {
		pv[0] = mov
		copy(pv[1:], nextPV[:len(pv)-1])
		if !isCapture {
			s.hist.AddAlphaRaise(mover, from, to, depth)
		}
		return mvResult{mvAlpha, score}
	}

	return mvResult{mvNoop, 0}
}

// inStaleMate plays every pseudo-legal move from p and checks whether
// it leaves the mover's own king in check; only if every move does is
// this stalemate (or checkmate, already handled by the caller checking
// inCheck first). Grounded on search.rs's in_stale_mate; movegen.IsInCheck
// takes the side to test as an explicit argument here, so unlike the
// original there's no need to flip the side back after DoMove.
func (s *Search) inStaleMate(p *position.Position) bool {
	captures, quiets := movegen.GenRegMovList(p)
	mover := p.SideToMove()

	tryList := func(ms *moveslice.MoveSlice) bool {
		for i := 0; i < ms.Len(); i++ {
			m := ms.At(i)
			if p.PieceAt(m.To()).Is(King) {
				continue
			}
			p.DoMove(m)
			stillInCheck := movegen.IsInCheck(p, mover)
			p.UndoMove()
			if !stillInCheck {
				return false
			}
		}
		return true
	}

	return tryList(captures) && tryList(quiets)
}

// qSearch is the quiescence search: stand-pat via the static evaluator,
// then captures only (no SEE, plain MVV-LVA), until a quiet position is
// reached. Grounded on search.rs's q_search.
func (s *Search) qSearch(p *position.Position, alpha, beta Value, ply int) Value {
	if atomic.LoadInt32(&s.abort) != 0 {
		return 0
	}
	s.Stats.QNodeCount++
	if ply > s.Stats.SelDepth {
		s.Stats.SelDepth = ply
	}

	sign := playerSign(p.SideToMove())
	score := evaluator.EvalState(p)

	if score*sign >= beta*sign {
		return score
	}
	if score*sign > alpha*sign {
		alpha = score
	}

	captures := movegen.GenCaptureList(p)
	if captures.Len() == 0 {
		return score
	}

	scored := moveslice.NewScoredMoveSlice(captures.Len())
	for i := 0; i < captures.Len(); i++ {
		cap := captures.At(i)
		scored.PushBack(cap, int32(exchangeScore(p, cap)))
	}
	scored.Sort()

	for i := 0; i < scored.Len(); i++ {
		cap := scored.At(i).M

		if p.PieceAt(cap.To()).Is(King) {
			return sign * (KingValue - Value(ply))
		}

		p.DoMove(cap)
		score := s.qSearch(p, beta, alpha, ply+1)
		p.UndoMove()

		if score*sign >= beta*sign {
			return score
		}
		if score*sign > alpha*sign {
			alpha = score
		}
	}

	return alpha
}
