// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ManuGH/hwgen/internal/fsutil"
	"github.com/ManuGH/hwgen/internal/log"
)

// Defaults for ScanOptions.
const (
	DefaultFragmentExt    = "cfg"
	DefaultAddressKeyword = "IOADDRESS"
)

// ScanOptions controls which files count as fragments and how their
// address declaration is recognised.
type ScanOptions struct {
	// FragmentExt is matched case-insensitively against the file extension
	// (without the dot); an extension containing it qualifies.
	FragmentExt string
	// AddressKeyword is matched case-insensitively.
	AddressKeyword string
}

func (o ScanOptions) withDefaults() ScanOptions {
	if o.FragmentExt == "" {
		o.FragmentExt = DefaultFragmentExt
	}
	o.FragmentExt = strings.ToLower(strings.TrimPrefix(o.FragmentExt, "."))
	if o.AddressKeyword == "" {
		o.AddressKeyword = DefaultAddressKeyword
	}
	return o
}

// Scanner reads a fragment directory into catalog entries.
type Scanner struct {
	opts ScanOptions
}

// NewScanner creates a new fragment scanner.
func NewScanner(opts ScanOptions) *Scanner {
	return &Scanner{opts: opts.withDefaults()}
}

// Scan is a convenience for NewScanner(ScanOptions{}).Scan(dir).
func Scan(dir string) ([]Entry, error) {
	return NewScanner(ScanOptions{}).Scan(dir)
}

// Scan returns one Entry per fragment file in dir, in file name order.
// A missing dir fails with ErrLibraryNotFound.
func (sc *Scanner) Scan(dir string) ([]Entry, error) {
	logger := log.WithComponent("library")

	des, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, dir, err)
		}
		return nil, fmt.Errorf("read components directory: %w", err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		path, ok := sc.fragmentPath(dir, de)
		if !ok {
			continue
		}

		addr, err := sc.DefaultAddress(path)
		if err != nil {
			return nil, err
		}

		id := Identifier(de.Name())
		entries = append(entries, Entry{
			ID:             id,
			DisplayName:    DisplayName(id),
			DefaultAddress: addr,
			Path:           path,
		})
	}

	logger.Debug().
		Str(log.FieldEvent, "library.scanned").
		Str(log.FieldPath, dir).
		Int("fragments", len(entries)).
		Msg("component library scanned")

	return entries, nil
}

// fragmentPath returns the path of de if it is a fragment that may be read:
// a regular file with the fragment extension that resolves inside dir.
// Scan and FindByFormattedName share it so a lookup never returns a file the
// catalog does not list.
func (sc *Scanner) fragmentPath(dir string, de fs.DirEntry) (string, bool) {
	if !sc.isFragment(de) {
		return "", false
	}
	path := filepath.Join(dir, de.Name())

	if _, err := fsutil.Confine(dir, path); err != nil {
		logger := log.WithComponent("library")
		logger.Warn().
			Err(err).
			Str(log.FieldEvent, "library.fragment_skipped").
			Str(log.FieldPath, path).
			Msg("fragment outside components directory")
		return "", false
	}
	if err := fsutil.IsRegularFile(path); err != nil {
		return "", false
	}
	return path, true
}

func (sc *Scanner) isFragment(de fs.DirEntry) bool {
	if de.IsDir() {
		return false
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(de.Name()), "."))
	return ext != "" && strings.Contains(ext, sc.opts.FragmentExt)
}

// DefaultAddress reads path and returns its declared I/O address.
func (sc *Scanner) DefaultAddress(path string) (string, error) {
	lines, err := fsutil.ReadLines(path)
	if err != nil {
		return "", fmt.Errorf("read fragment: %w", err)
	}
	return ParseDefaultAddress(lines, sc.opts.AddressKeyword), nil
}

// ParseDefaultAddress finds the first line containing keyword
// (case-insensitive), takes the first comma-separated token containing it and
// returns that token lower-cased with the keyword and all whitespace removed.
// Only the first matching line is considered; no match yields "".
func ParseDefaultAddress(lines []string, keyword string) string {
	kw := strings.ToLower(keyword)
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), kw) {
			continue
		}
		for _, tok := range strings.Split(line, ",") {
			lower := strings.ToLower(tok)
			if strings.Contains(lower, kw) {
				return strings.Join(strings.Fields(strings.ReplaceAll(lower, kw, "")), "")
			}
		}
		return ""
	}
	return ""
}

// Identifier returns the NFC-normalised file base name without extension.
func Identifier(fileName string) string {
	base := filepath.Base(fileName)
	return norm.NFC.String(strings.TrimSuffix(base, filepath.Ext(base)))
}

// DisplayName turns an identifier into the name shown to users:
// separators become spaces and letters are upper-cased.
func DisplayName(id string) string {
	return strings.ToUpper(strings.ReplaceAll(norm.NFC.String(id), "-", " "))
}

// FormatName is the inverse used for lookups: lower-case, spaces become '-'.
func FormatName(displayName string) string {
	return strings.ReplaceAll(strings.ToLower(norm.NFC.String(displayName)), " ", "-")
}
