/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/pkg/profile"

	"github.com/fhopp/corvid/internal/config"
	"github.com/fhopp/corvid/internal/logging"
	"github.com/fhopp/corvid/internal/uci"
)

const version = "0.1.0"

var logLevelByName = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to opening book yaml file (overrides config)")
	useBook := flag.Bool("book", false, "enable the opening book")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof in the working directory) while the engine runs")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := logLevelByName[*logLvl]; found {
		config.Settings.Log.Level = lvl
	}
	if lvl, found := logLevelByName[*searchLogLvl]; found {
		config.Settings.Log.SearchLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *useBook {
		config.Settings.Search.UseBook = true
	}

	// Resets the standard logger's level now that config has been read
	// and possibly overridden by flags above; packages that grabbed a
	// logger during init() started out at the compiled-in default.
	logging.GetLog()

	h := uci.NewHandler()
	h.Loop()
}

func printVersionInfo() {
	fmt.Printf("Corvid %s\n", version)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("Arch: %s, CPUs: %d\n", runtime.GOARCH, runtime.NumCPU())
}
