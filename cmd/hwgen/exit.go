// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"errors"

	"github.com/ManuGH/hwgen/internal/compose"
	"github.com/ManuGH/hwgen/internal/selection"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks bad flags or arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, compose.ErrValidation),
		errors.Is(err, selection.ErrInvalidSelection),
		errors.Is(err, selection.ErrUnknownComponent),
		errors.Is(err, selection.ErrInvalidAddress):
		return exitUsage
	default:
		return exitFailure
	}
}
