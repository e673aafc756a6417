// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package selection

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/hwgen/internal/library"
)

var catalog = []library.Entry{
	{ID: "x1", DisplayName: "X1", DefaultAddress: "12", Path: "/lib/x1.cfg"},
	{ID: "digital-input", DisplayName: "DIGITAL INPUT", DefaultAddress: "40", Path: "/lib/digital-input.cfg"},
	{ID: "analog-out", DisplayName: "ANALOG OUT", DefaultAddress: "7", Path: "/lib/analog-out.cfg"},
}

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "plant.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "plant-a", f.Name)
	assert.Equal(t, "/srv/plc", f.OutputDir)
	assert.Equal(t, []FileRow{
		{Component: "DIGITAL INPUT", Address: "40"},
		{Component: "x1"},
		{Component: "analog-out", Address: "0041"},
	}, f.Rows)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "unknown-key.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSelection))
	assert.Contains(t, err.Error(), "slot")
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"empty", "", false},
		{"rows only", "rows:\n  - component: x1\n", false},
		{"missing component", "rows:\n  - address: \"1\"\n", true},
		{"multiple documents", "name: a\n---\nname: b\n", true},
		{"not a mapping", "- x1\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.data))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSelection), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFile_SaveRoundTrip(t *testing.T) {
	in := &File{
		Name:      "plant-b",
		OutputDir: "out",
		Rows:      []FileRow{{Component: "X1", Address: "34"}, {Component: "ANALOG OUT"}},
	}
	path := filepath.Join(t.TempDir(), "plant.yaml")
	require.NoError(t, in.Save(path))

	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFile_Resolve(t *testing.T) {
	f := &File{Rows: []FileRow{
		{Component: "digital input", Address: "41"},
		{Component: "x1"},
		{Component: "ANALOG-OUT", Address: ""},
	}}

	l, err := f.Resolve(catalog, 0)
	require.NoError(t, err)

	rows := l.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "DIGITAL INPUT", rows[0].DisplayName)
	assert.Equal(t, "41", rows[0].Address)
	assert.Equal(t, "12", rows[1].Address)
	assert.Equal(t, "ANALOG OUT", rows[2].DisplayName)
	assert.Equal(t, "7", rows[2].Address)
	assert.Equal(t, "/lib/analog-out.cfg", rows[2].Component.Path)
}

func TestFile_ResolveUnknown(t *testing.T) {
	f := &File{Rows: []FileRow{{Component: "X1"}, {Component: "PLC CPU"}, {Component: "RACK"}}}

	_, err := f.Resolve(catalog, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownComponent))
	assert.Contains(t, err.Error(), "PLC CPU, RACK")
}

func TestFile_ResolveInvalidAddress(t *testing.T) {
	f := &File{Rows: []FileRow{{Component: "X1", Address: "abc"}}}

	_, err := f.Resolve(catalog, 0)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		in      string
		want    FileRow
		wantErr bool
	}{
		{"X1=34", FileRow{Component: "X1", Address: "34"}, false},
		{"DIGITAL INPUT = 40", FileRow{Component: "DIGITAL INPUT", Address: "40"}, false},
		{"x1", FileRow{Component: "x1"}, false},
		{"x1=", FileRow{Component: "x1"}, false},
		{"=34", FileRow{}, true},
		{"", FileRow{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRow(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidSelection), "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
