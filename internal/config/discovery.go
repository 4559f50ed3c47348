/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/SomethingNew71/UltraLog/internal/normalize"
)

// -----------------------------------------------------------------------------
// Log File Discovery
// -----------------------------------------------------------------------------

// LogFile is a discovered candidate log file with the metadata the file
// browser displays before it is opened.
type LogFile struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DiscoverLogFiles scans every configured log path for files whose
// extension is in LogExtensions, sorted newest-first.
func DiscoverLogFiles() ([]LogFile, error) {
	var all []LogFile
	for _, dir := range GetLogPaths() {
		files, err := findLogFiles(dir)
		if err != nil {
			continue
		}
		all = append(all, files...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no log files found in paths: %v", GetLogPaths())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ModTime.After(all[j].ModTime) })
	return all, nil
}

func findLogFiles(dir string) ([]LogFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !hasLogExtension(entry.Name()) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFile{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}
	return files, nil
}

func hasLogExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range LogExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Normalization Rules
// -----------------------------------------------------------------------------

// LoadRules reads the normalization rules file at GetRulesFilePath and
// layers it over the built-in defaults. A missing file is not an error:
// it just means no custom rules apply, and DefaultTable() is returned
// unchanged.
func LoadRules() (normalize.Table, error) {
	base := normalize.DefaultTable()

	data, err := os.ReadFile(GetRulesFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, err
	}

	rules, err := parseRuleFile(data)
	if err != nil {
		return base, fmt.Errorf("config: parsing %s: %w", GetRulesFilePath(), err)
	}
	return base.WithCustomRules(rules), nil
}

// parseRuleFile parses the line-oriented rule file format: one rule per
// line as "<raw-name>\t<display-name>". Blank lines and lines beginning
// with "#" are comments.
func parseRuleFile(data []byte) ([]normalize.Rule, error) {
	var rules []normalize.Rule
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected <raw-name><TAB><display-name>", lineNum)
		}
		rules = append(rules, normalize.Rule{Source: parts[0], Target: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
