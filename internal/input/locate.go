// Package input resolves source patterns and list files into the ordered
// set of concrete files a reader consumes.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/pretext/internal/placeholder"
)

// ErrNoInput is returned when resolution yields no files and the caller
// required at least one.
var ErrNoInput = errors.New("no input files found")

// Locate expands the given path patterns and list files into concrete file
// paths, preserving the order they were supplied in. Patterns may contain
// placeholders and glob metacharacters; a pattern naming a directory is
// searched with defaultGlob. When failIfEmpty is set, an empty result is
// an error.
func Locate(sources, sourceLists []string, failIfEmpty bool, defaultGlob string) ([]string, error) {
	var paths []string

	for _, pattern := range sources {
		matches, err := locateOne(pattern, defaultGlob)
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	for _, list := range sourceLists {
		entries, err := readList(list)
		if err != nil {
			return nil, err
		}
		for _, pattern := range entries {
			matches, err := locateOne(pattern, defaultGlob)
			if err != nil {
				return nil, err
			}
			paths = append(paths, matches...)
		}
	}

	if failIfEmpty && len(paths) == 0 {
		return nil, fmt.Errorf("%w (sources: %s; lists: %s)",
			ErrNoInput, describe(sources), describe(sourceLists))
	}
	return paths, nil
}

// locateOne resolves a single pattern. Globs expand in lexical order; a
// literal path matches itself when it exists.
func locateOne(pattern, defaultGlob string) ([]string, error) {
	pattern = placeholder.Expand(pattern)
	if info, err := os.Stat(pattern); err == nil && info.IsDir() {
		pattern = filepath.Join(pattern, defaultGlob)
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	return matches, nil
}

// readList returns the non-blank, non-comment lines of a list file, each
// of which is treated as a further input pattern.
func readList(path string) ([]string, error) {
	path = placeholder.Expand(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading input list %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input list %s: %w", path, err)
	}
	return entries, nil
}

func describe(patterns []string) string {
	if len(patterns) == 0 {
		return "none"
	}
	return strings.Join(patterns, ", ")
}
