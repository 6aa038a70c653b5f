/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package types

import "strings"

// MoveType tags the five move shapes make/undo must special-case.
type MoveType uint8

const (
	// MtNone is never a valid move type on an actual Move.
	MtNone MoveType = 0
	// Reg is a normal (possibly capturing) move.
	Reg MoveType = 1
	// Promo is a pawn promotion (possibly capturing).
	Promo MoveType = 2
	// Castle is a castling move (king + rook, bulk rewrite).
	Castle MoveType = 3
	// EnPassant captures the pawn behind the destination square.
	EnPassant MoveType = 4
	// DoublePush is the initial two-square pawn push that sets an
	// en passant target (named CrEnp in spec.md's CR_ENP).
	DoublePush MoveType = 5
)

func (t MoveType) String() string {
	switch t {
	case Reg:
		return "reg"
	case Promo:
		return "promo"
	case Castle:
		return "castle"
	case EnPassant:
		return "enp"
	case DoublePush:
		return "cr_enp"
	default:
		return "none"
	}
}

// Move is the 32-bit wire encoding from spec.md §6:
// byte0=from byte1=to byte2=type byte3=promotion piece type.
// MoveNone (0) is the "no move" sentinel.
type Move uint32

const MoveNone Move = 0

const (
	fromShift  = 0
	toShift    = 8
	typeShift  = 16
	promoShift = 24
	byteMask   = 0xFF
)

// NewMove encodes a move. promo is encoded as given whatever t is;
// callers pass PtNone for every move type other than Promo.
func NewMove(from, to Square, t MoveType, promo PieceType) Move {
	return Move(uint32(byte(from))<<fromShift |
		uint32(byte(to))<<toShift |
		uint32(t)<<typeShift |
		uint32(promo)<<promoShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(int8(byte(m >> fromShift & byteMask)))
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(int8(byte(m >> toShift & byteMask)))
}

// Type returns the move-type tag.
func (m Move) Type() MoveType {
	return MoveType(m >> typeShift & byteMask)
}

// Promotion returns the promotion piece type (meaningless unless
// Type() == Promo).
func (m Move) Promotion() PieceType {
	return PieceType(m >> promoShift & byteMask)
}

// IsValid reports whether from/to are on-board and the move isn't the
// none-sentinel.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// UCI renders the move in lowercase long algebraic notation, e.g.
// "e2e4" or "e7e8q" for a queen promotion.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.Type() == Promo {
		sb.WriteString(promoChar(m.Promotion()))
	}
	return sb.String()
}

func promoChar(pt PieceType) string {
	switch pt {
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	default:
		return ""
	}
}

func (m Move) String() string {
	return m.UCI()
}
