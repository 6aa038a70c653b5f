/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fhopp/corvid/internal/fen"
	. "github.com/fhopp/corvid/internal/types"
)

func sq(file, rank int) Square { return SquareOf(file, rank) }

func TestNewPositionStartpos(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, fen.StartFEN, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CrAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestDoUndoMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	startHash := p.ZobristKey()

	p.DoMove(NewMove(sq(4, 1), sq(4, 3), DoublePush, PtNone)) // e2e4
	p.DoMove(NewMove(sq(3, 6), sq(3, 4), DoublePush, PtNone)) // d7d5
	p.DoMove(NewMove(sq(4, 3), sq(3, 4), Reg, PtNone))        // exd5
	p.DoMove(NewMove(sq(3, 7), sq(3, 4), Reg, PtNone))        // Qxd5
	p.DoMove(NewMove(sq(1, 0), sq(2, 2), Reg, PtNone))        // Nc3

	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()

	assert.Equal(t, fen.StartFEN, p.FEN())
	assert.Equal(t, startHash, p.ZobristKey())
	assert.Equal(t, 0, p.Ply())
}

func TestDoMoveQuietQueenMove(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(sq(2, 3), sq(3, 3), Reg, PtNone)) // c4d4
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/3qPp2/B5R1/p1p2PPP/1R4K1 w kq - 1 2", p.FEN())
}

func TestDoMoveCastlingKingside(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(SqE8, SqG8, Castle, PtNone))
	assert.Equal(t, "r4rk1/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.FEN())
	assert.True(t, p.Castled(Black))
	assert.False(t, p.CastlingRights().Has(CrBK))
	assert.False(t, p.CastlingRights().Has(CrBQ))
}

func TestDoMoveCastlingQueenside(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(SqE8, SqC8, Castle, PtNone))
	assert.Equal(t, "2kr3r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.FEN())
}

func TestDoMoveEnPassant(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(sq(5, 3), sq(4, 2), EnPassant, PtNone)) // f4e3 e.p.
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q5/B3p1R1/p1p2PPP/1R4K1 w kq - 0 2", p.FEN())
}

func TestDoUndoMoveEnPassant(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	p.DoMove(NewMove(sq(5, 3), sq(4, 2), EnPassant, PtNone))
	p.UndoMove()
	assert.Equal(t, before, p.FEN())
}

func TestDoMovePromotion(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(sq(0, 1), sq(0, 0), Promo, Queen)) // a2a1=Q
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/qR4K1 w kq - 0 2", p.FEN())
}

func TestDoUndoMovePromotionWithCapture(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	p.DoMove(NewMove(sq(0, 1), sq(1, 0), Promo, Rook)) // a2xb1=R
	p.UndoMove()
	assert.Equal(t, before, p.FEN())
}

func TestDoUndoMoveCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.NoError(t, err)
	before := p.FEN()
	beforeHash := p.ZobristKey()
	p.DoMove(NewMove(SqE8, SqG8, Castle, PtNone))
	p.UndoMove()
	assert.Equal(t, before, p.FEN())
	assert.Equal(t, beforeHash, p.ZobristKey())
	assert.False(t, p.Castled(Black))
	assert.True(t, p.CastlingRights().Has(CrBK))
}

func TestRookCaptureClearsCastlingRights(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(SqH1, SqH8, Reg, PtNone)) // Rxh8, should clear black kingside rights
	assert.False(t, p.CastlingRights().Has(CrBK))
	assert.True(t, p.CastlingRights().Has(CrBQ))
}

func TestDoNullMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	beforeFen := p.FEN()
	beforeHash := p.ZobristKey()
	p.DoNullMove()
	assert.Equal(t, Black, p.SideToMove())
	p.UndoNullMove()
	assert.Equal(t, beforeFen, p.FEN())
	assert.Equal(t, beforeHash, p.ZobristKey())
}

func TestIsDrawQuickCycle(t *testing.T) {
	p := NewPosition()
	p.DoMove(NewMove(sq(1, 0), sq(2, 2), Reg, PtNone)) // Nc3
	p.DoMove(NewMove(sq(1, 7), sq(2, 5), Reg, PtNone)) // Nc6
	p.DoMove(NewMove(sq(2, 2), sq(1, 0), Reg, PtNone)) // Nb1
	assert.False(t, p.IsDraw(2))
	p.DoMove(NewMove(sq(2, 5), sq(1, 7), Reg, PtNone)) // Nb8, repeats start position
	assert.True(t, p.IsDraw(2))
}

func TestHalfMoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	p := NewPosition()
	p.DoMove(NewMove(sq(1, 0), sq(2, 2), Reg, PtNone)) // Nc3
	assert.Equal(t, 1, p.HalfMoveClock())
	p.DoMove(NewMove(sq(4, 6), sq(4, 4), DoublePush, PtNone)) // e7e5
	assert.Equal(t, 0, p.HalfMoveClock())
}
