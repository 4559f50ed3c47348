/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration constants and path discovery for
// ultralog-view.
package config

import (
	"os"
	"path/filepath"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "ultralog"

	// DefaultLogDir is the system-wide log directory.
	DefaultLogDir = "/var/lib/ultralog/logs"

	// RulesFileName is the normalization rules file name, looked for under
	// the config directory (see GetRulesFilePath). It is a
	// line-oriented text file, not structured data: one rule per line as
	// "<raw-name><TAB><display-name>", blank lines and "#" lines ignored.
	RulesFileName = "normalize.rules"
)

// LogExtensions lists the file extensions ultralog-view treats as
// candidate log files when scanning a directory. Detection of the actual
// wire format still happens on content, not extension; this only filters
// what gets offered in the file browser.
var LogExtensions = []string{".csv", ".mlg", ".mll"}

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvLogDir overrides the default log directory.
	EnvLogDir = "ULTRALOG_LOG_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvXDGConfigHome is the XDG config home environment variable, used
	// to locate a user-level normalization rules file.
	EnvXDGConfigHome = "XDG_CONFIG_HOME"

	// EnvRulesFile overrides the normalization rules file path entirely.
	EnvRulesFile = "ULTRALOG_RULES_FILE"
)

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetLogPaths returns an ordered list of directories to search for log
// files. Priority order:
//  1. $ULTRALOG_LOG_DIR (if set)
//  2. $XDG_DATA_HOME/ultralog (or ~/.local/share/ultralog)
//  3. /var/lib/ultralog/logs (system default)
func GetLogPaths() []string {
	var paths []string

	if envDir := os.Getenv(EnvLogDir); envDir != "" {
		paths = append(paths, envDir)
	}

	xdgDataHome := os.Getenv(EnvXDGDataHome)
	if xdgDataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgDataHome = filepath.Join(home, ".local", "share")
		}
	}
	if xdgDataHome != "" {
		paths = append(paths, filepath.Join(xdgDataHome, AppName))
	}

	paths = append(paths, DefaultLogDir)
	return paths
}

// GetRulesFilePath returns the path to the normalization rules file to
// load, honoring EnvRulesFile, then XDG config home, else a bare filename
// in the current directory. The caller decides what to do if nothing
// exists there; config never creates the file.
func GetRulesFilePath() string {
	if p := os.Getenv(EnvRulesFile); p != "" {
		return p
	}

	xdgConfigHome := os.Getenv(EnvXDGConfigHome)
	if xdgConfigHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgConfigHome = filepath.Join(home, ".config")
		}
	}
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, AppName, RulesFileName)
	}
	return RulesFileName
}
