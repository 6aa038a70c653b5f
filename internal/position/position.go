/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package position implements the engine's state object (spec.md C4):
// a 0x88 mailbox paired with per-side, per-piece-type bitboards, plus
// the per-ply undo history that make/undo walks through in strict
// LIFO order. A Position is built once from a FEN string and then
// mutated exclusively through DoMove/UndoMove/DoNullMove/UndoNullMove
// under the search engine's single thread of control; it is never
// shared concurrently (spec.md §5).
//
// Grounded on the teacher's internal/position/position.go for overall
// shape (NewPosition/NewPositionFen constructors, a logger, assert
// guards at the top of DoMove, a putPiece/removePiece/movePiece core)
// and on original_source/src/state.rs for the exact make/undo and
// is_draw semantics: that source snapshots its whole BitBoard struct
// onto a stack before every move and pops it back wholesale on undo
// rather than inverse-XORing field by field, which this package
// mirrors via the undoState.piecesBb/occupiedBb snapshot fields.
package position

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/fhopp/corvid/internal/assert"
	"github.com/fhopp/corvid/internal/fen"
	mylogging "github.com/fhopp/corvid/internal/logging"
	. "github.com/fhopp/corvid/internal/types"
	"github.com/fhopp/corvid/internal/zobrist"
)

var log *logging.Logger

// MaxPlies upper-bounds the number of moves a single Position can have
// made onto it without an intervening reset; comfortably above any
// legal game length (chess games are drawn/terminated long before
// this by the 50-move rule or agreement).
const MaxPlies = 1024

// lastMovePosIndex is the fixed look-back used by IsDraw's quick
// cycle check, carried unchanged from original_source/src/state.rs.
const lastMovePosIndex = 4

// undoState is one ply's worth of everything DoMove can change,
// snapshotted before mutation so UndoMove can restore it verbatim.
type undoState struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	preZobristKey   uint64
	preSideToMove   Color
	wkIndex         Square
	bkIndex         Square
	piecesBb        [2][NumPieceTypes]Bitboard
	occupiedBb      [2]Bitboard
}

// Position is the engine's mutable board state.
type Position struct {
	board           [BoardSize]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int
	zobristKey      uint64

	wkIndex, bkIndex     Square
	wkCastled, bkCastled bool

	piecesBb   [2][NumPieceTypes]Bitboard
	occupiedBb [2]Bitboard

	historyCounter int
	history        [MaxPlies]undoState
}

func colorIdx(c Color) int {
	if c == White {
		return 1
	}
	return 0
}

// NewPosition builds a Position from the standard starting position,
// or from the given FEN string if one is supplied. Additional
// arguments are ignored, matching the teacher's variadic convenience
// constructor.
func NewPosition(f ...string) *Position {
	src := fen.StartFEN
	if len(f) > 0 {
		src = f[0]
	}
	p, err := NewPositionFen(src)
	if err != nil {
		panic(fmt.Sprintf("position: %s", err))
	}
	return p
}

// NewPositionFen builds a Position from a FEN string, returning an
// error if the FEN is malformed. spec.md §7 treats a malformed FEN as
// a bug, not a recoverable condition, but the parser still reports an
// error so the caller (typically the UCI collaborator) can choose how
// loudly to fail.
func NewPositionFen(fenStr string) (*Position, error) {
	if log == nil {
		log = mylogging.GetLog()
	}
	setup, err := fen.Parse(fenStr)
	if err != nil {
		log.Errorf("fen %q rejected: %s", fenStr, err)
		return nil, err
	}

	p := &Position{
		sideToMove:      setup.SideToMove,
		enPassantSquare: SqNone,
		fullMoveNumber:  setup.FullMoveNumber,
		halfMoveClock:   setup.HalfMoveClock,
	}
	for i := 0; i < BoardSize; i++ {
		sq := Square(i)
		if !sq.IsValid() {
			continue
		}
		if piece := setup.Board[sq]; piece != PieceNone {
			p.putPiece(piece, sq)
		}
	}
	p.castlingRights = setup.Castling
	p.enPassantSquare = setup.EnPassantSquare
	return p, nil
}

// SideToMove returns the side to move next.
func (p *Position) SideToMove() Color { return p.sideToMove }

// PieceAt returns the piece on the given square (PieceNone if empty).
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// CastlingRights returns the current castling-rights nybble.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the 50-move-rule ply counter (tracked but
// never consulted for an automatic draw, spec.md §9 open question 2).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the current hash.
func (p *Position) ZobristKey() uint64 { return p.zobristKey }

// KingSquare returns the square of the given side's king.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.wkIndex
	}
	return p.bkIndex
}

// PiecesBb returns the bitboard of the given side's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[colorIdx(c)][pt.PtIndex()]
}

// OccupiedBb returns the union bitboard of all of the given side's
// pieces.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[colorIdx(c)]
}

// OccupiedAll returns the union of both sides' occupancy.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[0] | p.occupiedBb[1]
}

// Castled reports whether the given side has castled.
func (p *Position) Castled(c Color) bool {
	if c == White {
		return p.wkCastled
	}
	return p.bkCastled
}

// Ply returns the number of moves made since construction.
func (p *Position) Ply() int { return p.historyCounter }

// LastMove returns the most recently made move, or MoveNone if none
// has been made yet. Used by the search's recapture-bonus move
// ordering, which needs the prior move's destination square.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the most recent
// move, or PieceNone if there is no history or that move wasn't a
// capture.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter == 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// //////////////////////////////////////////////////////
// Piece placement primitives
// //////////////////////////////////////////////////////

func (p *Position) putPiece(piece Piece, sq Square) {
	assert.Assert(p.board[sq] == PieceNone, "position: putPiece onto occupied square %s", sq)
	color := piece.ColorOf()
	pt := piece.TypeOf()
	ci := colorIdx(color)

	p.board[sq] = piece
	if pt == King {
		if color == White {
			p.wkIndex = sq
		} else {
			p.bkIndex = sq
		}
	}
	p.piecesBb[ci][pt.PtIndex()] = p.piecesBb[ci][pt.PtIndex()].Push(sq)
	p.occupiedBb[ci] = p.occupiedBb[ci].Push(sq)
	p.zobristKey ^= zobrist.KeyOf(sq, piece)
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	assert.Assert(piece != PieceNone, "position: removePiece from empty square %s", sq)
	color := piece.ColorOf()
	pt := piece.TypeOf()
	ci := colorIdx(color)

	p.board[sq] = PieceNone
	p.piecesBb[ci][pt.PtIndex()] = p.piecesBb[ci][pt.PtIndex()].Pop(sq)
	p.occupiedBb[ci] = p.occupiedBb[ci].Pop(sq)
	p.zobristKey ^= zobrist.KeyOf(sq, piece)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

// clearCastlingRightsAt drops whichever castling right(s) become
// permanently unavailable because a king or rook vacated (moved from)
// or was captured on (moved to) one of the six castling-relevant
// squares, per spec.md §4.1. Cheap no-op for every other square.
func (p *Position) clearCastlingRightsAt(sq Square) {
	switch sq {
	case SqE1:
		p.castlingRights = p.castlingRights.Clear(CrWK | CrWQ)
	case SqA1:
		p.castlingRights = p.castlingRights.Clear(CrWQ)
	case SqH1:
		p.castlingRights = p.castlingRights.Clear(CrWK)
	case SqE8:
		p.castlingRights = p.castlingRights.Clear(CrBK | CrBQ)
	case SqA8:
		p.castlingRights = p.castlingRights.Clear(CrBQ)
	case SqH8:
		p.castlingRights = p.castlingRights.Clear(CrBK)
	}
}

// //////////////////////////////////////////////////////
// Make / undo
// //////////////////////////////////////////////////////

// DoMove applies m to the position. The caller (the move generator or
// the search's own king-capture short-circuit) is responsible for
// move legality; DoMove only asserts the cheap invariants spec.md §7
// calls unrecoverable bugs (bad encoding, piece/side mismatch, king
// capture slipping through).
func (p *Position) DoMove(m Move) {
	assert.Assert(m.IsValid(), "position: DoMove invalid move %s", m)
	from, to := m.From(), m.To()
	fromPc := p.board[from]
	myColor := fromPc.ColorOf()

	assert.Assert(fromPc != PieceNone, "position: DoMove no piece on %s for move %s", from, m)
	assert.Assert(myColor == p.sideToMove, "position: DoMove piece %s does not belong to side to move", fromPc)
	assert.Assert(p.board[to].TypeOf() != King, "position: DoMove king cannot be captured (move %s)", m)

	h := &p.history[p.historyCounter]
	h.move = m
	h.preZobristKey = p.zobristKey
	h.preSideToMove = p.sideToMove
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.fullMoveNumber = p.fullMoveNumber
	h.wkIndex = p.wkIndex
	h.bkIndex = p.bkIndex
	h.piecesBb = p.piecesBb
	h.occupiedBb = p.occupiedBb
	p.historyCounter++

	p.enPassantSquare = SqNone
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}

	switch m.Type() {
	case Reg:
		h.capturedPiece = p.doReg(from, to)
	case Promo:
		h.capturedPiece = p.doPromo(from, to, myColor, m.Promotion())
	case Castle:
		h.capturedPiece = PieceNone
		p.doCastle(to, myColor)
	case EnPassant:
		h.capturedPiece = p.doEnPassant(from, to, myColor)
	case DoublePush:
		h.capturedPiece = PieceNone
		p.doDoublePush(from, to)
	default:
		panic(fmt.Sprintf("position: DoMove unknown move type for %s", m))
	}

	p.sideToMove = p.sideToMove.Flip()
}

func (p *Position) doReg(from, to Square) Piece {
	captured := p.board[to]
	if captured != PieceNone {
		p.removePiece(to)
	}
	moving := p.removePiece(from)
	p.putPiece(moving, to)
	p.clearCastlingRightsAt(from)
	p.clearCastlingRightsAt(to)
	if moving.Is(Pawn) || captured != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	return captured
}

func (p *Position) doPromo(from, to Square, myColor Color, promo PieceType) Piece {
	captured := p.board[to]
	if captured != PieceNone {
		p.removePiece(to)
	}
	p.removePiece(from)
	p.putPiece(MakePiece(myColor, promo), to)
	p.clearCastlingRightsAt(to)
	p.halfMoveClock = 0
	return captured
}

func (p *Position) doCastle(to Square, myColor Color) {
	var kingFrom, rookFrom, rookTo Square
	var hash uint64
	switch to {
	case SqG1:
		kingFrom, rookFrom, rookTo, hash = SqE1, SqH1, SqF1, zobrist.WKCastleHash
	case SqC1:
		kingFrom, rookFrom, rookTo, hash = SqE1, SqA1, SqD1, zobrist.WQCastleHash
	case SqG8:
		kingFrom, rookFrom, rookTo, hash = SqE8, SqH8, SqF8, zobrist.BKCastleHash
	case SqC8:
		kingFrom, rookFrom, rookTo, hash = SqE8, SqA8, SqD8, zobrist.BQCastleHash
	default:
		panic(fmt.Sprintf("position: doCastle invalid destination %s", to))
	}
	p.movePiece(kingFrom, to)
	p.movePiece(rookFrom, rookTo)
	p.zobristKey ^= hash
	p.clearCastlingRightsAt(kingFrom)
	if myColor == White {
		p.wkCastled = true
	} else {
		p.bkCastled = true
	}
	p.halfMoveClock++
}

func (p *Position) doEnPassant(from, to Square, myColor Color) Piece {
	var capSq Square
	if myColor == White {
		capSq = to + Square(South)
	} else {
		capSq = to + Square(North)
	}
	captured := p.removePiece(capSq)
	p.movePiece(from, to)
	p.halfMoveClock = 0
	return captured
}

func (p *Position) doDoublePush(from, to Square) {
	p.movePiece(from, to)
	p.halfMoveClock = 0
	p.enPassantSquare = Square((int(from) + int(to)) / 2)
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	assert.Assert(p.historyCounter > 0, "position: UndoMove on initial position")
	p.historyCounter--
	h := &p.history[p.historyCounter]

	p.sideToMove = h.preSideToMove
	move := h.move
	from, to := move.From(), move.To()

	switch move.Type() {
	case Reg:
		p.board[from] = p.board[to]
		p.board[to] = h.capturedPiece
	case Promo:
		p.board[from] = MakePiece(p.sideToMove, Pawn)
		p.board[to] = h.capturedPiece
	case EnPassant:
		p.board[from] = p.board[to]
		p.board[to] = PieceNone
		capSq := to + Square(South)
		if p.sideToMove == Black {
			capSq = to + Square(North)
		}
		p.board[capSq] = h.capturedPiece
	case Castle:
		var kingFrom, rookFrom, rookTo Square
		switch to {
		case SqG1:
			kingFrom, rookFrom, rookTo = SqE1, SqH1, SqF1
		case SqC1:
			kingFrom, rookFrom, rookTo = SqE1, SqA1, SqD1
		case SqG8:
			kingFrom, rookFrom, rookTo = SqE8, SqH8, SqF8
		case SqC8:
			kingFrom, rookFrom, rookTo = SqE8, SqA8, SqD8
		}
		p.board[kingFrom] = p.board[to]
		p.board[to] = PieceNone
		p.board[rookFrom] = p.board[rookTo]
		p.board[rookTo] = PieceNone
		if p.sideToMove == White {
			p.wkCastled = false
		} else {
			p.bkCastled = false
		}
	case DoublePush:
		p.board[from] = p.board[to]
		p.board[to] = PieceNone
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.fullMoveNumber = h.fullMoveNumber
	p.wkIndex = h.wkIndex
	p.bkIndex = h.bkIndex
	p.piecesBb = h.piecesBb
	p.occupiedBb = h.occupiedBb
	p.zobristKey = h.preZobristKey
}

// DoNullMove flips the side to move without moving a piece;
// internal/search does not call it. The position before the null
// move is saved to history exactly like a real move so UndoNullMove
// can restore it.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCounter]
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.preZobristKey = p.zobristKey
	h.preSideToMove = p.sideToMove
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.fullMoveNumber = p.fullMoveNumber
	h.wkIndex = p.wkIndex
	h.bkIndex = p.bkIndex
	h.piecesBb = p.piecesBb
	h.occupiedBb = p.occupiedBb
	p.historyCounter++

	p.enPassantSquare = SqNone
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	assert.Assert(p.historyCounter > 0, "position: UndoNullMove on initial position")
	p.historyCounter--
	h := &p.history[p.historyCounter]
	p.sideToMove = h.preSideToMove
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.fullMoveNumber = h.fullMoveNumber
	p.wkIndex = h.wkIndex
	p.bkIndex = h.bkIndex
	p.piecesBb = h.piecesBb
	p.occupiedBb = h.occupiedBb
	p.zobristKey = h.preZobristKey
}

// IsDraw reports whether the current position is a repetition per
// spec.md §4.1's deliberately non-classical rule: either the position
// exactly four plies back recurs (a quick cycle check, gated on ply >
// 1), or the current (hash, side-to-move) pair has occurred at least
// twice already within the last min(halfMoveClock, historyCounter)
// plies. The 50-move counter itself is tracked but never triggers an
// automatic draw here (spec.md §9 open question).
func (p *Position) IsDraw(ply int) bool {
	historyLen := p.historyCounter
	checkRange := historyLen
	if p.halfMoveClock < checkRange {
		checkRange = p.halfMoveClock
	}
	if checkRange < lastMovePosIndex {
		return false
	}

	last := p.history[historyLen-lastMovePosIndex]
	if ply > 1 && last.preZobristKey == p.zobristKey {
		return true
	}

	dup := 0
	for i := 1; i <= checkRange; i++ {
		h := p.history[historyLen-i]
		if h.preZobristKey == p.zobristKey && h.preSideToMove == p.sideToMove {
			dup++
			if dup > 1 {
				return true
			}
		}
	}
	return false
}

// FEN renders the current position as a FEN string.
func (p *Position) FEN() string {
	s := &fen.Setup{
		Board:           p.board,
		SideToMove:      p.sideToMove,
		Castling:        p.castlingRights,
		EnPassantSquare: p.enPassantSquare,
		HalfMoveClock:   p.halfMoveClock,
		FullMoveNumber:  p.fullMoveNumber,
	}
	return fen.Format(s)
}

// String renders an 8x8 ASCII board for debugging, rank 8 first.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			b.WriteByte(p.board[SquareOf(file, rank)].Char())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&b, "side to move: %s  castling: %s  ep: %s  halfmove: %d\n",
		p.sideToMove, p.castlingRights, p.enPassantSquare, p.halfMoveClock)
	return b.String()
}
