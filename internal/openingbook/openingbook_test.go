/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fhopp/corvid/internal/position"
)

func writeTestBook(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitializeLoadsEntries(t *testing.T) {
	path := writeTestBook(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1: e2e4\n")

	b := New()
	assert.NoError(t, b.Initialize(path))
	assert.Equal(t, 1, b.NumberOfEntries())
}

func TestProbeReturnsBookMove(t *testing.T) {
	path := writeTestBook(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1: e2e4\n")

	b := New()
	assert.NoError(t, b.Initialize(path))

	p := position.NewPosition()
	mov, ok := b.Probe(p)
	assert.True(t, ok)
	assert.Equal(t, "e2e4", mov.UCI())
}

func TestProbeMissReturnsFalse(t *testing.T) {
	path := writeTestBook(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1: e2e4\n")

	b := New()
	assert.NoError(t, b.Initialize(path))

	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	assert.NoError(t, err)
	_, ok := b.Probe(p)
	assert.False(t, ok)
}

func TestInitializeSkipsIllegalMove(t *testing.T) {
	path := writeTestBook(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1: e2e5\n")

	b := New()
	assert.NoError(t, b.Initialize(path))
	assert.Equal(t, 0, b.NumberOfEntries())
}

func TestInitializeIsIdempotent(t *testing.T) {
	path := writeTestBook(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1: e2e4\n")

	b := New()
	assert.NoError(t, b.Initialize(path))
	assert.NoError(t, b.Initialize(path))
	assert.Equal(t, 1, b.NumberOfEntries())
}
