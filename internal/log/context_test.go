// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextWithRunID(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		runID string
		want  string
	}{
		{
			name:  "nil context",
			ctx:   nil,
			runID: "run-123",
			want:  "run-123",
		},
		{
			name:  "background context",
			ctx:   context.Background(),
			runID: "run-456",
			want:  "run-456",
		},
		{
			name:  "empty run ID",
			ctx:   context.Background(),
			runID: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithRunID(tt.ctx, tt.runID)
			if got := RunIDFromContext(ctx); got != tt.want {
				t.Errorf("RunIDFromContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunIDFromContext_Missing(t *testing.T) {
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty run ID, got %q", got)
	}
	if got := RunIDFromContext(nil); got != "" { //nolint:staticcheck // nil context is part of the contract
		t.Errorf("expected empty run ID for nil context, got %q", got)
	}
}

func TestWithContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRunID(context.Background(), "run-789")
	l := WithContext(ctx, base)
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry[FieldRunID] != "run-789" {
		t.Errorf("expected run_id=run-789, got %v", entry[FieldRunID])
	}
}

func TestWithContext_NoFieldsReturnsSameLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithContext(context.Background(), base)
	l.Info().Msg("plain")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := entry[FieldRunID]; ok {
		t.Errorf("did not expect run_id field, got %v", entry[FieldRunID])
	}
}

func TestFromContext_FallsBackToBase(t *testing.T) {
	if l := FromContext(context.Background()); l == nil {
		t.Fatal("expected non-nil logger")
	}

	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("marker", "ctx").Logger()
	ctx := attached.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	if !bytes.Contains(buf.Bytes(), []byte(`"marker":"ctx"`)) {
		t.Errorf("expected context logger to be used, got %s", buf.String())
	}
}
