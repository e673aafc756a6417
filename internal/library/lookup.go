// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FindByFormattedName is a convenience for NewScanner(ScanOptions{}).FindByFormattedName.
func FindByFormattedName(dir, candidate string) (string, bool, error) {
	return NewScanner(ScanOptions{}).FindByFormattedName(dir, candidate)
}

// FindByFormattedName resolves a display or formatted name to a fragment file
// in dir. A fragment whose formatted base name equals the candidate wins;
// otherwise the first fragment in name order whose formatted base name
// contains the candidate is returned. Substring matches are ambiguous by
// nature ("rack" matches "big-rack" and "rack-2"); the first one wins.
func (sc *Scanner) FindByFormattedName(dir, candidate string) (string, bool, error) {
	want := FormatName(candidate)
	if want == "" {
		return "", false, nil
	}

	des, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, dir, err)
		}
		return "", false, fmt.Errorf("read components directory: %w", err)
	}

	var first string
	for _, de := range des {
		path, ok := sc.fragmentPath(dir, de)
		if !ok {
			continue
		}
		key := FormatName(Identifier(de.Name()))
		if key == want {
			return path, true, nil
		}
		if first == "" && strings.Contains(key, want) {
			first = path
		}
	}
	if first == "" {
		return "", false, nil
	}
	return first, true, nil
}

// Filter returns the entries whose identifier contains query, ignoring case.
// An empty query returns every entry. The input slice is not modified.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(norm.NFC.String(strings.TrimSpace(query)))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if q == "" || strings.Contains(strings.ToLower(e.ID), q) {
			out = append(out, e)
		}
	}
	return out
}

// ByDisplayName returns the entry with the given display name.
func ByDisplayName(entries []Entry, displayName string) (Entry, bool) {
	want := norm.NFC.String(strings.TrimSpace(displayName))
	for _, e := range entries {
		if strings.EqualFold(e.DisplayName, want) {
			return e, true
		}
	}
	return Entry{}, false
}
