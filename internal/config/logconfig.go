/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package config

// logConfiguration holds the op/go-logging levels used by
// internal/logging. Levels follow logging.Level's own ordering
// (CRITICAL=0, ERROR=1, WARNING=2, NOTICE=3, INFO=4, DEBUG=5), kept as
// plain ints here so config stays independent of the logging package.
type logConfiguration struct {
	Level       int
	SearchLevel int
}

func init() {
	Settings.Log.Level = 4
	Settings.Log.SearchLevel = 3
}
