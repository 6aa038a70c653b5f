/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package logging is a thin helper over "github.com/op/go-logging" so
// every other package gets a preconfigured *logging.Logger with one
// line instead of repeating backend/formatter setup. Grounded on the
// teacher's franky_logging/log.go, rehomed under internal/ and wired
// to internal/config's log-level setting instead of a package-local
// default.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/fhopp/corvid/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard logger, backed by stdout and leveled
// from config.Settings.Log.Level.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.Settings.Log.Level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns a logger dedicated to internal/search, leveled
// separately from the standard logger. internal/search logs only its
// transposition-table status and a rejected concurrent Go call through
// it; node counts and PV lines go out on the UCI "info" line instead.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.Settings.Log.SearchLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUciLog returns a logger for raw UCI protocol traffic.
func GetUciLog() *logging.Logger {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
