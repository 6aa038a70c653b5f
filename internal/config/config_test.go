/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaults(t *testing.T) {
	initialized = false
	Setup()
	assert.Equal(t, 4, Settings.Log.Level)
	assert.Equal(t, 16, Settings.Search.PvTrackLength)
	assert.Equal(t, int32(10), Settings.Eval.PawnPassedWeight)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Search.WindowSize = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.WindowSize)
}

func TestString(t *testing.T) {
	initialized = false
	Setup()
	out := Settings.String()
	fmt.Println(out)
	assert.Contains(t, out, "Search Config")
	assert.Contains(t, out, "Evaluation Config")
}
