// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package compose

import (
	"fmt"
	"path/filepath"

	"github.com/ManuGH/hwgen/internal/validate"
)

func joinOutput(dir, name string) string {
	return filepath.Join(dir, name+"."+OutputExt)
}

// Validate checks a request with default options.
func Validate(req Request) error {
	return New(Options{}).Validate(req)
}

// Validate checks everything that can be checked before writing. All
// problems are reported together in a *ValidationError.
func (c *Composer) Validate(req Request) error {
	_, err := c.validate(req)
	return err
}

// validate returns the rows left after trailing placeholders are dropped.
func (c *Composer) validate(req Request) ([]Row, error) {
	v := validate.New()

	v.NotEmpty("outputName", req.OutputName)
	v.NotEmpty("outputDir", req.OutputDir)
	if req.OutputName != "" {
		v.FileName("outputName", req.OutputName+"."+OutputExt)
	}
	if req.OutputDir != "" {
		v.Directory("outputDir", req.OutputDir)
	}

	rows := TrimPlaceholders(req.Rows)
	if len(rows) == 0 {
		v.AddError("rows", "at least one component must be selected", len(req.Rows))
	}

	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		field := fmt.Sprintf("rows[%d]", i)
		if row.Component == nil {
			v.AddError(field+".component", "row has no component", row.DisplayName)
			continue
		}
		v.Digits(field+".address", row.Address, c.opts.MaxAddressLen)
		if row.Address == "" {
			continue
		}
		if first, dup := seen[row.Address]; dup {
			v.AddError(field+".address",
				fmt.Sprintf("address %s already used by rows[%d]", row.Address, first),
				row.Address)
			continue
		}
		seen[row.Address] = i
	}

	if err := v.Err(); err != nil {
		return nil, &ValidationError{ValidationError: err.(validate.ValidationError)}
	}
	return rows, nil
}

// TrimPlaceholders drops the empty rows at the end of rows. Placeholders in
// the middle are kept so validation can reject them.
func TrimPlaceholders(rows []Row) []Row {
	n := len(rows)
	for n > 0 && rows[n-1].isPlaceholder() {
		n--
	}
	return rows[:n]
}
