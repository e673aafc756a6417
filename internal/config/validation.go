// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"strings"

	"github.com/ManuGH/hwgen/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("root", cfg.Root)
	v.NotEmpty("libraryDir", cfg.LibraryDir)
	v.NotEmpty("componentsDir", cfg.ComponentsDir)
	v.FileName("baseTemplate", cfg.BaseTemplate)
	v.NotEmpty("fragmentExt", cfg.FragmentExt)
	v.NotEmpty("datePlaceholder", cfg.DatePlaceholder)
	v.NotEmpty("dateLayout", cfg.DateLayout)
	v.Positive("maxAddressLen", cfg.MaxAddressLen)
	v.OneOf("output.lineEnding", cfg.LineEnding, []string{LineEndingLF, LineEndingCRLF})

	v.Custom("addressKeyword", cfg.AddressKeyword, func(val interface{}) error {
		kw := val.(string)
		if kw == "" {
			return errors.New("value cannot be empty")
		}
		if strings.ContainsAny(kw, " \t,") {
			return errors.New("keyword must not contain whitespace or commas")
		}
		return nil
	})

	if cfg.LogLevel != "" {
		if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
			v.AddError("logLevel", validate.ErrInvalidLogLevel.Message, cfg.LogLevel)
		}
	}

	return v.Err()
}
