/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package uci implements the UCI protocol collaborator (spec.md §6): a
// line-oriented command loop that translates "position"/"go"/"stop"/
// "setoption" traffic into internal/search and internal/position calls
// and renders search progress and results back as "info"/"bestmove"
// lines. Grounded on the teacher's internal/uci/{uci,ucioption}.go,
// trimmed to the commands and options this engine's search actually
// supports (no ponder/MultiPV/searchmoves machinery).
package uci

import (
	"bufio"
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/fhopp/corvid/internal/config"
	"github.com/fhopp/corvid/internal/fen"
	mylogging "github.com/fhopp/corvid/internal/logging"
	"github.com/fhopp/corvid/internal/openingbook"
	"github.com/fhopp/corvid/internal/position"
	"github.com/fhopp/corvid/internal/search"
	. "github.com/fhopp/corvid/internal/types"
)

const engineName = "Corvid"
const engineAuthor = "Frank Hopp"

// Handler owns one UCI session: the current position, the engine, the
// opening book, and the option table. Create one with NewHandler and
// call Loop to block on stdin.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos     *position.Position
	srch    *search.Search
	book    *openingbook.Book
	options optionMap

	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout, with a fresh
// Search and the book at config.Settings.Search.BookPath loaded if
// config.Settings.Search.UseBook is set.
func NewHandler() *Handler {
	h := &Handler{
		InIo:    bufio.NewScanner(os.Stdin),
		OutIo:   bufio.NewWriter(os.Stdout),
		pos:     position.NewPosition(),
		srch:    search.New(),
		book:    openingbook.New(),
		options: newUciOptions(),
		log:     mylogging.GetLog(),
		uciLog:  mylogging.GetUciLog(),
	}
	h.srch.InfoWriter = h.send
	if config.Settings.Search.UseBook {
		if err := h.book.Initialize(config.Settings.Search.BookPath); err != nil {
			h.log.Warningf("opening book not loaded: %s", err)
		}
	}
	return h
}

// Loop reads commands from InIo until "quit" or EOF.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleReceivedCommand(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote
// to OutIo, for tests and scripting rather than the interactive loop.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handleReceivedCommand(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one line; returns true iff the
// session should end ("quit").
func (h *Handler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "setoption":
		h.setOptionCommand(tokens)
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewPosition()
		h.srch.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.srch.Stop()
	case "ponderhit":
		// Pondering isn't implemented (spec.md Non-goals); acknowledged
		// as a no-op so a GUI that sends it doesn't stall.
	case "debug", "d", "print":
		h.send(h.pos.String())
	case "register":
		h.SendInfoString("Command 'register' not implemented")
	default:
		h.log.Warningf("unknown uci command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + engineName)
	h.send("id author " + engineAuthor)
	for _, name := range sortOrderUciOptions {
		h.send(h.options[name].String())
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		h.SendInfoString("setoption malformed: missing 'name'")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, found := h.options[name.String()]
	if !found {
		h.SendInfoString("setoption: no such option '" + name.String() + "'")
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(h, o)
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}
	i := 1
	fenStr := fen.StartFEN
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if fenb.Len() > 0 {
				fenb.WriteByte(' ')
			}
			fenb.WriteString(tokens[i])
			i++
		}
		if fenb.Len() == 0 {
			h.SendInfoString("position malformed: empty fen")
			return
		}
		fenStr = fenb.String()
	default:
		h.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}

	p, err := position.NewPositionFen(fenStr)
	if err != nil {
		h.SendInfoString("position malformed fen: " + fenStr)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			mov := moveFromUCI(h.pos, tokens[i])
			if mov == MoveNone {
				h.SendInfoString("position malformed: illegal move '" + tokens[i] + "'")
				return
			}
			h.pos.DoMove(mov)
		}
	}
}

// goCommand parses search limits and starts the search. A book hit, if
// the book is enabled, answers immediately without touching
// internal/search at all (spec.md §11.1: the book is a UCI-layer
// shortcut, not a search-engine feature). Otherwise the (blocking)
// Search.Go call runs in its own goroutine so "stop" can still reach
// Search.Stop while a search is in flight.
func (h *Handler) goCommand(tokens []string) {
	if config.Settings.Search.UseBook {
		if mov, ok := h.book.Probe(h.pos); ok {
			h.send("bestmove " + mov.UCI())
			return
		}
	}

	limits, malformed := h.readSearchLimits(tokens)
	if malformed {
		return
	}

	go func() {
		best := h.srch.Go(h.pos, limits)
		h.send("bestmove " + best.UCI())
	}()
}

func (h *Handler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewSearchLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("depth", "")
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, h.malformedGo("depth", tokens[i])
			}
			limits.Depth = d
			i++
		case "nodes":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("nodes", "")
			}
			n, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("nodes", tokens[i])
			}
			limits.Nodes = n
			i++
		case "mate":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("mate", "")
			}
			m, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, h.malformedGo("mate", tokens[i])
			}
			limits.Mate = m
			i++
		case "movetime":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("movetime", "")
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("movetime", tokens[i])
			}
			limits.MoveTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("wtime", "")
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("wtime", tokens[i])
			}
			limits.WhiteTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("btime", "")
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("btime", tokens[i])
			}
			limits.BlackTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("winc", "")
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("winc", tokens[i])
			}
			limits.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("binc", "")
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, h.malformedGo("binc", tokens[i])
			}
			limits.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		case "movestogo":
			i++
			if i >= len(tokens) {
				return nil, h.malformedGo("movestogo", "")
			}
			n, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, h.malformedGo("movestogo", tokens[i])
			}
			limits.MovesToGo = n
			i++
		default:
			return nil, h.malformedGo("subcommand", tokens[i])
		}
	}
	return limits, false
}

func (h *Handler) malformedGo(field, value string) bool {
	h.SendInfoString("go command malformed: bad " + field + " value '" + value + "'")
	return true
}

// SendInfoString sends an arbitrary "info string" line.
func (h *Handler) SendInfoString(s string) {
	h.send("info string " + s)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
