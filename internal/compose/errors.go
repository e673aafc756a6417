// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package compose

import (
	"errors"

	"github.com/ManuGH/hwgen/internal/validate"
)

var (
	// ErrValidation marks a request rejected before anything was written.
	ErrValidation = errors.New("invalid generation request")

	// ErrBaseTemplateMissing marks a library without its base template.
	// Like library.ErrLibraryNotFound it is a deployment integrity error.
	ErrBaseTemplateMissing = errors.New("base template not found")
)

// ValidationError lists every problem found in a Request. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	validate.ValidationError
}

// Unwrap lets errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error { return ErrValidation }
