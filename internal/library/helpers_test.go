// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package library

import (
	"testing"

	"github.com/ManuGH/hwgen/internal/testutil"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	testutil.WriteFiles(t, dir, files)
}

// newLibraryRoot builds <root>/Library/{PC_Based.cfg,components/...}.
func newLibraryRoot(t *testing.T, fragments map[string]string) string {
	t.Helper()
	return testutil.NewLibrary(t, "HEADER\nDATE %currdate\n", fragments).Root
}

func testLayout(root string) Layout {
	return Layout{Root: root, Dir: "Library", ComponentsDir: "components", BaseTemplate: "PC_Based.cfg"}
}
