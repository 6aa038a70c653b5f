/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package types

import "math/bits"

// Color is the side-to-move encoding. The low two bits of Piece double
// as the Color: White has bit 1 set, Black has bit 0 set, so the mask
// 0b11 distinguishes the sides and XOR with 0b11 flips one into the
// other. Grounded on original_source/src/def.rs's PLAYER_W/PLAYER_B.
type Color uint8

const (
	// ColorNone marks "no side" for an empty piece.
	ColorNone Color = 0
	// Black occupies bit 0.
	Black Color = 0b01
	// White occupies bit 1.
	White Color = 0b10
	// ColorSwitch XORs a Color into its opposite.
	ColorSwitch Color = 0b11
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ ColorSwitch
}

// String renders the color as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType is a single-bit-per-type encoding living in the upper bits
// of a Piece, so `piece & King != 0` tests the type in one AND.
type PieceType uint8

const (
	PtNone PieceType = 0
	Pawn   PieceType = 0b00000100
	Knight PieceType = 0b00001000
	Bishop PieceType = 0b00010000
	Rook   PieceType = 0b00100000
	Queen  PieceType = 0b01000000
	King   PieceType = 0b10000000
)

// PtIndex compresses the one-hot PieceType encoding into a dense
// 0..5 index (Pawn=0 .. King=5), for use as an array index into
// per-piece-type tables such as Position's bitboard set. Undefined
// for PtNone.
func (pt PieceType) PtIndex() int {
	return bits.TrailingZeros8(uint8(pt)) - 2
}

// NumPieceTypes is the number of real (non-empty) piece types.
const NumPieceTypes = 6

// Piece packs a Color (low 2 bits) and a PieceType (upper 6 bits) into
// one byte. PieceNone == 0. `player & piece == player` tests side;
// `piece & K != 0` tests type — both in a single operation, exactly as
// spec.md C1 requires.
type Piece uint8

// PieceNone is the empty-square sentinel.
const PieceNone Piece = 0

// Concrete pieces, named to match original_source/src/def.rs (WP=6 etc).
const (
	WhitePawn   Piece = Piece(Pawn) | Piece(White)
	WhiteKnight Piece = Piece(Knight) | Piece(White)
	WhiteBishop Piece = Piece(Bishop) | Piece(White)
	WhiteRook   Piece = Piece(Rook) | Piece(White)
	WhiteQueen  Piece = Piece(Queen) | Piece(White)
	WhiteKing   Piece = Piece(King) | Piece(White)

	BlackPawn   Piece = Piece(Pawn) | Piece(Black)
	BlackKnight Piece = Piece(Knight) | Piece(Black)
	BlackBishop Piece = Piece(Bishop) | Piece(Black)
	BlackRook   Piece = Piece(Rook) | Piece(Black)
	BlackQueen  Piece = Piece(Queen) | Piece(Black)
	BlackKing   Piece = Piece(King) | Piece(Black)
)

// MakePiece composes a Piece from a Color and PieceType.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c) | Piece(pt)
}

// ColorOf extracts the side of a piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p) & ColorSwitch
}

// TypeOf extracts the piece type, masking off the color bits.
func (p Piece) TypeOf() PieceType {
	return PieceType(p) &^ PieceType(ColorSwitch)
}

// Is reports whether the piece's type bit matches pt. Works for
// PieceNone too (always false) since PieceNone has no type bits set.
func (p Piece) Is(pt PieceType) bool {
	return PieceType(p)&pt != 0
}

// OnSide reports whether piece belongs to the given color using the
// "player & piece == player" trick from spec.md C1 (also matches
// original_source's on_same_side). Returns false for PieceNone since
// PieceNone's color bits are 0 and can never equal a real Color.
func (p Piece) OnSide(c Color) bool {
	return Color(p)&c == c && p != PieceNone
}

var pieceChars = map[Piece]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// Char returns the FEN character for the piece ('.' for PieceNone).
func (p Piece) Char() byte {
	if p == PieceNone {
		return '.'
	}
	return pieceChars[p]
}

func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar parses a FEN piece character into a Piece.
func PieceFromChar(c byte) Piece {
	for p, ch := range pieceChars {
		if ch == c {
			return p
		}
	}
	return PieceNone
}
