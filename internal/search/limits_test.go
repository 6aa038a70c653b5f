/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeForMoveUsesMoveTime(t *testing.T) {
	l := NewSearchLimits()
	l.MoveTime = 500 * time.Millisecond
	l.TimeControl = true
	l.WhiteTime = 10 * time.Second

	assert.Equal(t, 500*time.Millisecond, l.TimeForMove(true))
}

func TestTimeForMoveNoTimeControlReturnsZero(t *testing.T) {
	l := NewSearchLimits()

	assert.Equal(t, time.Duration(0), l.TimeForMove(true))
}

func TestTimeForMoveSplitsRemainingOverMovesToGo(t *testing.T) {
	l := NewSearchLimits()
	l.TimeControl = true
	l.WhiteTime = 30 * time.Second
	l.MovesToGo = 10

	assert.Equal(t, 3*time.Second, l.TimeForMove(true))
}

func TestTimeForMoveUsesBlackClockForBlack(t *testing.T) {
	l := NewSearchLimits()
	l.TimeControl = true
	l.WhiteTime = 60 * time.Second
	l.BlackTime = 20 * time.Second
	l.MovesToGo = 20

	assert.Equal(t, 1*time.Second, l.TimeForMove(false))
}

func TestTimeForMoveClampsToRemaining(t *testing.T) {
	l := NewSearchLimits()
	l.TimeControl = true
	l.WhiteTime = 500 * time.Millisecond
	l.WhiteInc = 400 * time.Millisecond
	l.MovesToGo = 1

	assert.Equal(t, 500*time.Millisecond, l.TimeForMove(true))
}

func TestStatisticsStringIncludesFields(t *testing.T) {
	var st Statistics
	st.NodeCount = 12345
	st.CurrentIterationDepth = 7

	s := st.String()
	assert.Contains(t, s, "12,345")
	assert.Contains(t, s, "7")
}
