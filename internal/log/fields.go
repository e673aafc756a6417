// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID         = "run_id"
	FieldComponentID   = "component_id"
	FieldComponentName = "component_name"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Selection fields
	FieldRow            = "row"
	FieldAddress        = "address"
	FieldDefaultAddress = "default_address"

	// Path fields
	FieldPath       = "path"
	FieldLibrary    = "library"
	FieldOutputPath = "output_path"
	FieldTemplate   = "template"
)
