// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package selection

import "errors"

var (
	// ErrIndexOutOfRange is returned for a row index outside the list.
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrInvalidAddress is returned when an address is not a short digit string.
	ErrInvalidAddress = errors.New("invalid I/O address")

	// ErrUnknownComponent is returned when a selection names a component the
	// catalog does not contain.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrInvalidSelection classifies malformed selection files and flags.
	ErrInvalidSelection = errors.New("invalid selection")
)
