/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package config holds globally available configuration variables,
// set either from hard-coded defaults, a config.toml file, or
// overridden by the UCI "setoption" command. Grounded on the teacher's
// internal/config/config.go, with ResolveFile inlined (the teacher's
// util.ResolveFile helper was dropped) and a Log
// sub-config added so internal/logging has somewhere to read levels
// from instead of hard-coding them.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working
// directory unless an absolute path is given.
var ConfFile = "./config.toml"

// Settings is the global configuration tree, decoded from ConfFile (if
// present) on top of the per-section defaults set by each section's
// own init().
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file, if present, and applies it on
// top of the compiled-in defaults. Safe to call more than once; only
// the first call has an effect.
func Setup() {
	if initialized {
		return
	}
	initialized = true

	path := ConfFile
	if !filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			path = filepath.Join(wd, path)
		}
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}

	setupSearch()
	setupEval()
}

// String prints the current configuration via reflection, mirroring
// the teacher's diagnostic dump used by the "d" UCI debug command.
func (c *conf) String() string {
	var b strings.Builder
	dump := func(title string, v interface{}) {
		b.WriteString(title)
		b.WriteString(":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-2d: %-24s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Log Config", &c.Log)
	b.WriteString("\n")
	dump("Search Config", &c.Search)
	b.WriteString("\n")
	dump("Evaluation Config", &c.Eval)
	return b.String()
}
