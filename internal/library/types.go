// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package library loads the component library: the base template and the
// directory of configuration fragments a hardware configuration is built from.
package library

import "errors"

var (
	// ErrLibraryNotFound marks a missing library or components directory.
	// It is a deployment integrity error: callers should stop, not retry.
	ErrLibraryNotFound = errors.New("library not found")
)

// Entry is one fragment file of the component library.
type Entry struct {
	// ID is the file base name without extension.
	ID string `json:"id" yaml:"id"`
	// DisplayName is ID upper-cased with '-' replaced by spaces.
	DisplayName string `json:"displayName" yaml:"displayName"`
	// DefaultAddress is the I/O address declared in the fragment, or "".
	DefaultAddress string `json:"defaultAddress" yaml:"defaultAddress"`
	// Path is the fragment file location.
	Path string `json:"path" yaml:"path"`
}
