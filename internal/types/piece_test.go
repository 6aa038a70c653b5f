/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package types

import "testing"

func TestColorSwitch(t *testing.T) {
	if White.Flip() != Black {
		t.Errorf("White.Flip() = %v, want Black", White.Flip())
	}
	if Black.Flip() != White {
		t.Errorf("Black.Flip() = %v, want White", Black.Flip())
	}
}

func TestPieceTypeTests(t *testing.T) {
	cases := []struct {
		p  Piece
		pt PieceType
	}{
		{WhiteKing, King}, {BlackKing, King},
		{WhiteQueen, Queen}, {BlackQueen, Queen},
		{WhiteRook, Rook}, {BlackRook, Rook},
		{WhiteBishop, Bishop}, {BlackBishop, Bishop},
		{WhiteKnight, Knight}, {BlackKnight, Knight},
		{WhitePawn, Pawn}, {BlackPawn, Pawn},
	}
	for _, c := range cases {
		if !c.p.Is(c.pt) {
			t.Errorf("%v.Is(%v) = false, want true", c.p, c.pt)
		}
	}
	if WhitePawn.Is(King) {
		t.Errorf("WhitePawn.Is(King) = true, want false")
	}
}

func TestOnSide(t *testing.T) {
	if !WhiteKing.OnSide(White) {
		t.Errorf("WhiteKing.OnSide(White) = false, want true")
	}
	if WhiteKing.OnSide(Black) {
		t.Errorf("WhiteKing.OnSide(Black) = true, want false")
	}
	if PieceNone.OnSide(White) || PieceNone.OnSide(Black) {
		t.Errorf("PieceNone.OnSide(...) = true, want false")
	}
}

func TestMoveEncodeDecode(t *testing.T) {
	m := NewMove(SqE1, SqE8, Promo, Queen)
	if m.From() != SqE1 {
		t.Errorf("From() = %v, want SqE1", m.From())
	}
	if m.To() != SqE8 {
		t.Errorf("To() = %v, want SqE8", m.To())
	}
	if m.Type() != Promo {
		t.Errorf("Type() = %v, want Promo", m.Type())
	}
	if m.Promotion() != Queen {
		t.Errorf("Promotion() = %v, want Queen", m.Promotion())
	}
	if m.UCI() != "e1e8q" {
		t.Errorf("UCI() = %q, want e1e8q", m.UCI())
	}
}

func TestMoveNoneSentinel(t *testing.T) {
	if MoveNone.IsValid() {
		t.Errorf("MoveNone.IsValid() = true, want false")
	}
	if MoveNone.UCI() != "0000" {
		t.Errorf("MoveNone.UCI() = %q, want 0000", MoveNone.UCI())
	}
}

func TestBbIndexMapping(t *testing.T) {
	// a1 (0x00) must map to bit 0, h1 (0x07) to bit 7, a8 (0x70) to bit 56.
	if SqA1.BbIndex() != 0 {
		t.Errorf("SqA1.BbIndex() = %d, want 0", SqA1.BbIndex())
	}
	if SqH1.BbIndex() != 7 {
		t.Errorf("SqH1.BbIndex() = %d, want 7", SqH1.BbIndex())
	}
	if SqA8.BbIndex() != 56 {
		t.Errorf("SqA8.BbIndex() = %d, want 56", SqA8.BbIndex())
	}
	for i := 0; i < BoardSize; i++ {
		s := Square(i)
		if !s.IsValid() {
			continue
		}
		if SquareFromBbIndex(s.BbIndex()) != s {
			t.Errorf("round trip failed for square %v", s)
		}
	}
}
