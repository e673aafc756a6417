// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package selection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/ManuGH/hwgen/internal/library"
)

// File is the on-disk form of a selection.
//
//	name: plant-a
//	outputDir: /srv/plc
//	rows:
//	  - component: DIGITAL INPUT
//	    address: "40"
//	  - component: x1
type File struct {
	Name      string    `yaml:"name,omitempty"`
	OutputDir string    `yaml:"outputDir,omitempty"`
	Rows      []FileRow `yaml:"rows"`
}

// FileRow names a component by display name or identifier. An empty
// Address keeps the component's default.
type FileRow struct {
	Component string `yaml:"component"`
	Address   string `yaml:"address,omitempty"`
}

// LoadFile reads a selection file with strict parsing.
func LoadFile(path string) (*File, error) {
	path = filepath.Clean(path)

	// #nosec G304 -- selection paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selection file: %w", err)
	}
	return ParseFile(data)
}

// ParseFile strictly decodes a single YAML document. Unknown keys are
// rejected.
func ParseFile(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: multiple documents or trailing content", ErrInvalidSelection)
	}

	for i, row := range f.Rows {
		if strings.TrimSpace(row.Component) == "" {
			return nil, fmt.Errorf("%w: rows[%d]: component is required", ErrInvalidSelection, i)
		}
	}
	return &f, nil
}

// Save writes f to path atomically.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write selection file: %w", err)
	}
	return nil
}

// Resolve matches every row against the catalog and returns the resulting
// list. Rows naming unknown components are all reported in one error.
// Addresses are checked as in List.SetAddress.
func (f *File) Resolve(entries []library.Entry, maxAddressLen int) (*List, error) {
	l := NewList(maxAddressLen)
	var unknown []string
	for i, row := range f.Rows {
		e, ok := Lookup(entries, row.Component)
		if !ok {
			unknown = append(unknown, row.Component)
			continue
		}
		idx := l.Add(e)
		if row.Address == "" {
			continue
		}
		if err := l.SetAddress(idx, row.Address); err != nil {
			return nil, fmt.Errorf("rows[%d] (%s): %w", i, row.Component, err)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, strings.Join(unknown, ", "))
	}
	return l, nil
}

// Lookup finds a catalog entry by display name or identifier, ignoring case.
// "DIGITAL INPUT", "digital input" and "digital-input" all name the same
// entry.
func Lookup(entries []library.Entry, name string) (library.Entry, bool) {
	if e, ok := library.ByDisplayName(entries, name); ok {
		return e, true
	}
	want := library.FormatName(strings.TrimSpace(name))
	for _, e := range entries {
		if library.FormatName(e.ID) == want {
			return e, true
		}
	}
	return library.Entry{}, false
}

// ParseRow parses the NAME=ADDR form used on the command line. The address
// part is optional.
func ParseRow(s string) (FileRow, error) {
	name, addr, _ := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return FileRow{}, fmt.Errorf("%w: %q: component name is empty", ErrInvalidSelection, s)
	}
	return FileRow{Component: name, Address: strings.TrimSpace(addr)}, nil
}
