// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"fmt"
	"path/filepath"

	"github.com/ManuGH/hwgen/internal/fsutil"
)

// Layout describes where a library lives on disk. Root is explicit
// configuration; the process working directory is never consulted.
type Layout struct {
	Root          string // e.g. /opt/hwgen
	Dir           string // library directory below Root, e.g. "Library"
	ComponentsDir string // fragment directory below Dir, e.g. "components"
	BaseTemplate  string // base template file in Dir, e.g. "PC_Based.cfg"
}

// Library is an opened component library.
type Library struct {
	dir           string
	componentsDir string
	baseTemplate  string
	scanner       *Scanner
}

// Open checks that the library and components directories exist.
// A missing directory fails with ErrLibraryNotFound.
func Open(layout Layout, opts ScanOptions) (*Library, error) {
	dir := filepath.Join(layout.Root, layout.Dir)
	components := filepath.Join(dir, layout.ComponentsDir)

	if !fsutil.IsDir(dir) {
		return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, dir)
	}
	if !fsutil.IsDir(components) {
		return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, components)
	}

	return &Library{
		dir:           dir,
		componentsDir: components,
		baseTemplate:  filepath.Join(dir, layout.BaseTemplate),
		scanner:       NewScanner(opts),
	}, nil
}

// Dir returns the library directory.
func (l *Library) Dir() string { return l.dir }

// ComponentsDir returns the fragment directory.
func (l *Library) ComponentsDir() string { return l.componentsDir }

// BaseTemplate returns the base template path. The file is not checked here;
// the composer reports a missing template when it is needed.
func (l *Library) BaseTemplate() string { return l.baseTemplate }

// Scan reads the current catalog.
func (l *Library) Scan() ([]Entry, error) {
	return l.scanner.Scan(l.componentsDir)
}

// Find resolves a display name to a fragment path.
func (l *Library) Find(displayName string) (string, bool, error) {
	return l.scanner.FindByFormattedName(l.componentsDir, displayName)
}
