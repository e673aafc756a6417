// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package compose turns a selection of library fragments into one hardware
// configuration file: base template first, then every fragment with its I/O
// address rewritten, each block followed by a blank line.
package compose

import (
	"time"

	"github.com/ManuGH/hwgen/internal/library"
)

// OutputExt is the extension of generated files.
const OutputExt = "cfg"

// Defaults for Options.
const (
	DefaultDatePlaceholder = "%currdate"
	DefaultDateLayout      = "1/2/2006 3:04:05 PM"
	DefaultMaxAddressLen   = 5
	DefaultNewline         = "\n"
)

// Row is one selected component. Order in Request.Rows is output order.
type Row struct {
	DisplayName string
	// Address is the assigned I/O address; empty keeps the fragment default.
	Address string
	// Component is the catalog entry the row was created from. A row
	// without one is a placeholder.
	Component *library.Entry
}

func (r Row) isPlaceholder() bool {
	return r.Component == nil && r.DisplayName == "" && r.Address == ""
}

// Finder resolves a row's display name to its fragment file.
// *library.Library implements it.
type Finder interface {
	Find(displayName string) (path string, ok bool, err error)
}

// Request describes one generation.
type Request struct {
	BaseTemplate  string
	ComponentsDir string
	// Library resolves rows; nil looks names up in ComponentsDir.
	Library       Finder
	OutputDir     string
	OutputName    string // without extension
	Rows          []Row
	// Now stamps the date placeholder; zero means time.Now().
	Now time.Time
}

// OutputPath returns <OutputDir>/<OutputName>.cfg.
func (r Request) OutputPath() string {
	return joinOutput(r.OutputDir, r.OutputName)
}

// Result reports what Compose wrote.
type Result struct {
	Path string
	// Fragments is the number of fragment blocks written.
	Fragments int
	// Skipped holds the display names of rows whose fragment was not found.
	Skipped []string
}

// Options tune the text conventions of a library.
type Options struct {
	FragmentExt     string
	AddressKeyword  string
	DatePlaceholder string
	DateLayout      string
	MaxAddressLen   int
	Newline         string
	// Atomic writes through a pending file so the target is either fully
	// replaced or left untouched.
	Atomic bool
}

func (o Options) withDefaults() Options {
	if o.AddressKeyword == "" {
		o.AddressKeyword = library.DefaultAddressKeyword
	}
	if o.DatePlaceholder == "" {
		o.DatePlaceholder = DefaultDatePlaceholder
	}
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	if o.MaxAddressLen <= 0 {
		o.MaxAddressLen = DefaultMaxAddressLen
	}
	if o.Newline == "" {
		o.Newline = DefaultNewline
	}
	return o
}
