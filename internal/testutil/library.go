// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package testutil builds on-disk component libraries for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Library is a component library laid out below a temporary root:
//
//	<Root>/Library/PC_Based.cfg
//	<Root>/Library/components/*.cfg
//	<Root>/out/
type Library struct {
	Root         string
	Dir          string
	Components   string
	BaseTemplate string
	Out          string
}

// NewLibrary writes base and fragments (file name -> content) below a fresh
// t.TempDir(). Contents are written verbatim.
func NewLibrary(t testing.TB, base string, fragments map[string]string) Library {
	t.Helper()
	root := t.TempDir()
	l := Library{
		Root:         root,
		Dir:          filepath.Join(root, "Library"),
		Components:   filepath.Join(root, "Library", "components"),
		BaseTemplate: filepath.Join(root, "Library", "PC_Based.cfg"),
		Out:          filepath.Join(root, "out"),
	}
	mkdir(t, l.Components)
	mkdir(t, l.Out)
	write(t, l.BaseTemplate, base)
	WriteFiles(t, l.Components, fragments)
	return l
}

// AddFragment writes one more fragment and returns its path.
func (l Library) AddFragment(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(l.Components, name)
	write(t, path, content)
	return path
}

// WriteFiles creates files (slash-separated relative path -> content) below
// dir, creating parent directories as needed.
func WriteFiles(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		mkdir(t, filepath.Dir(path))
		write(t, path, content)
	}
}

func mkdir(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func write(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
