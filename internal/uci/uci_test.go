/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fhopp/corvid/internal/config"
	. "github.com/fhopp/corvid/internal/types"
)

func init() {
	config.Setup()
}

func TestUciCommandRepliesUciokWithOptions(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name Corvid")
	assert.Contains(t, out, "option name Hash")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRepliesReadyok(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestPositionStartposThenMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "e7e5", h.pos.LastMove().UCI())
}

func TestPositionFen(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, White, h.pos.SideToMove())
	assert.True(t, h.pos.PieceAt(SqE1).Is(King))
	assert.True(t, h.pos.PieceAt(SqE8).Is(King))
}

func TestPositionMalformedMoveReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves z9z9")
	assert.Contains(t, out, "info string")
}

func TestUciNewGameResetsPosition(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4")
	h.Command("ucinewgame")
	assert.Equal(t, MoveNone, h.pos.LastMove())
}

func TestSetOptionHashResizesTable(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name Use_Hash value true")
	h.Command("setoption name Hash value 16")
	assert.Equal(t, 16, config.Settings.Search.TTSizeMb)
}

func TestSetOptionUnknownReportsInfoString(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Nonexistent value true")
	assert.Contains(t, out, "no such option")
}

func TestDebugPrintsBoard(t *testing.T) {
	h := NewHandler()
	out := h.Command("d")
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestGoDepthProducesBestmove(t *testing.T) {
	h := NewHandler()
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)

	h.handleReceivedCommand("position startpos")
	h.handleReceivedCommand("go depth 1")

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "bestmove")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopDoesNotPanicWithNoSearchRunning(t *testing.T) {
	h := NewHandler()
	assert.NotPanics(t, func() { h.Command("stop") })
}

func TestLoopStopsAtQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}
