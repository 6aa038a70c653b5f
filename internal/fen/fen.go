/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package fen parses and renders Forsyth-Edwards Notation. It is a
// fixed-interface collaborator (spec.md §6): the engine core consumes
// only the first four fields plus the half-move clock and treats
// parse failures as unrecoverable, per spec.md §7's "no in-band
// errors for malformed input" policy -- but the parser itself still
// returns a Go error so its caller (internal/position) can decide
// whether to panic (engine startup) or report upward (a hypothetical
// interactive FEN editor), rather than panicking from inside a
// general-purpose parsing package.
//
// Grounded on the teacher's internal/position/position.go setupBoard
// method, pulled out into its own package and adapted to 0x88 square
// indices instead of the teacher's plain 0-63 indices.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/fhopp/corvid/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	regexPosField  = regexp.MustCompile(`^[pnbrqkPNBRQK1-8/]+$`)
	regexSideField = regexp.MustCompile(`^[wb]$`)
	regexCastle    = regexp.MustCompile(`^(-|[KQkq]{1,4})$`)
	regexEnPassant = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// Setup is the decoded content of a FEN string, ready for
// internal/position to fold into a fresh Position.
type Setup struct {
	Board           [BoardSize]Piece
	SideToMove      Color
	Castling        CastlingRights
	EnPassantSquare Square
	HalfMoveClock   int
	FullMoveNumber  int
}

// Parse decodes a FEN string into a Setup. Only the piece placement
// field is mandatory; every other field defaults as FEN permits
// (side=white, no castling, no en-passant, clocks at 0/1).
func Parse(raw string) (*Setup, error) {
	raw = strings.TrimSpace(raw)
	fields := strings.Split(raw, " ")
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("fen: empty position field")
	}

	s := &Setup{
		SideToMove:      White,
		Castling:        CrNone,
		EnPassantSquare: SqNone,
		HalfMoveClock:   0,
		FullMoveNumber:  1,
	}

	if !regexPosField.MatchString(fields[0]) {
		return nil, fmt.Errorf("fen: invalid character in position field %q", fields[0])
	}
	if err := parsePlacement(s, fields[0]); err != nil {
		return nil, err
	}

	if len(fields) >= 2 {
		if !regexSideField.MatchString(fields[1]) {
			return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
		if fields[1] == "b" {
			s.SideToMove = Black
		}
	}

	if len(fields) >= 3 {
		if !regexCastle.MatchString(fields[2]) {
			return nil, fmt.Errorf("fen: invalid castling field %q", fields[2])
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					s.Castling |= CrWK
				case 'Q':
					s.Castling |= CrWQ
				case 'k':
					s.Castling |= CrBK
				case 'q':
					s.Castling |= CrBQ
				}
			}
		}
	}

	if len(fields) >= 4 {
		if !regexEnPassant.MatchString(fields[3]) {
			return nil, fmt.Errorf("fen: invalid en passant field %q", fields[3])
		}
		if fields[3] != "-" {
			file := int(fields[3][0] - 'a')
			rank := int(fields[3][1] - '1')
			s.EnPassantSquare = SquareOf(file, rank)
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid half-move clock %q", fields[4])
		}
		s.HalfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid full-move number %q", fields[5])
		}
		s.FullMoveNumber = n
	}

	return s, nil
}

func parsePlacement(s *Setup, field string) error {
	rank, file := 7, 0
	for _, c := range field {
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("fen: rank did not fill 8 files before '/'")
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			p := PieceFromChar(byte(c))
			if p == PieceNone {
				return fmt.Errorf("fen: invalid piece character %q", string(c))
			}
			if file > 7 || rank < 0 {
				return fmt.Errorf("fen: position field overflows the board")
			}
			s.Board[SquareOf(file, rank)] = p
			file++
		}
	}
	if rank != 0 || file != 8 {
		return fmt.Errorf("fen: position field did not describe exactly 8 ranks")
	}
	return nil
}

// Format renders a Setup back into a FEN string.
func Format(s *Setup) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := s.Board[SquareOf(file, rank)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(p.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if s.SideToMove == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	b.WriteString(s.Castling.String())

	b.WriteByte(' ')
	b.WriteString(s.EnPassantSquare.String())

	fmt.Fprintf(&b, " %d %d", s.HalfMoveClock, s.FullMoveNumber)
	return b.String()
}
