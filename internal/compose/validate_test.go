// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package compose

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/hwgen/internal/library"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	x1 := &library.Entry{ID: "x1", DisplayName: "X1", DefaultAddress: "12"}
	x2 := &library.Entry{ID: "x2", DisplayName: "X2", DefaultAddress: "13"}
	placeholder := Row{}

	valid := func() Request {
		return Request{
			OutputDir:  dir,
			OutputName: "plant",
			Rows: []Row{
				{DisplayName: "X1", Address: "1", Component: x1},
				{DisplayName: "X2", Address: "", Component: x2},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Request)
		fields []string
	}{
		{"valid", func(*Request) {}, nil},
		{"trailing placeholders dropped", func(r *Request) {
			r.Rows = append(r.Rows, placeholder, placeholder)
		}, nil},
		{"empty name", func(r *Request) { r.OutputName = "" }, []string{"outputName"}},
		{"blank name", func(r *Request) { r.OutputName = "   " }, []string{"outputName"}},
		{"empty dir", func(r *Request) { r.OutputDir = "" }, []string{"outputDir"}},
		{"missing dir", func(r *Request) { r.OutputDir = filepath.Join(dir, "absent") }, []string{"outputDir"}},
		{"illegal name character", func(r *Request) { r.OutputName = "a?b" }, []string{"outputName"}},
		{"path separator in name", func(r *Request) { r.OutputName = "sub/plant" }, []string{"outputName"}},
		{"control character in name", func(r *Request) { r.OutputName = "a\x00b" }, []string{"outputName"}},
		{"no rows", func(r *Request) { r.Rows = nil }, []string{"rows"}},
		{"only placeholders", func(r *Request) { r.Rows = []Row{placeholder} }, []string{"rows"}},
		{"placeholder in the middle", func(r *Request) {
			r.Rows = []Row{r.Rows[0], placeholder, r.Rows[1]}
		}, []string{"rows[1].component"}},
		{"row without component", func(r *Request) {
			r.Rows[1].Component = nil
		}, []string{"rows[1].component"}},
		{"duplicate address", func(r *Request) { r.Rows[1].Address = "1" }, []string{"rows[1].address"}},
		{"non-digit address", func(r *Request) { r.Rows[0].Address = "1a" }, []string{"rows[0].address"}},
		{"address too long", func(r *Request) { r.Rows[0].Address = "123456" }, []string{"rows[0].address"}},
		{"several problems", func(r *Request) {
			r.OutputName = ""
			r.Rows[1].Address = "1"
		}, []string{"outputName", "rows[1].address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := Validate(req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			for _, field := range tt.fields {
				assert.True(t, ve.Has(field), "expected error for %s, got %v", field, err)
			}
		})
	}
}

func TestValidate_MaxAddressLen(t *testing.T) {
	x1 := &library.Entry{DisplayName: "X1"}
	req := Request{
		OutputDir:  t.TempDir(),
		OutputName: "plant",
		Rows:       []Row{{DisplayName: "X1", Address: "1234567", Component: x1}},
	}

	assert.Error(t, New(Options{}).Validate(req))
	assert.NoError(t, New(Options{MaxAddressLen: 8}).Validate(req))
}

func TestTrimPlaceholders(t *testing.T) {
	x1 := &library.Entry{DisplayName: "X1"}
	rows := []Row{{Component: x1}, {}, {Component: x1}, {}, {}}
	assert.Len(t, TrimPlaceholders(rows), 3)
	assert.Empty(t, TrimPlaceholders([]Row{{}, {}}))
	assert.Empty(t, TrimPlaceholders(nil))
}
