// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "path/filepath"

// Line ending names accepted by output.lineEnding.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Defaults matching the shipped library layout.
const (
	DefaultLibraryDir      = "Library"
	DefaultComponentsDir   = "components"
	DefaultBaseTemplate    = "PC_Based.cfg"
	DefaultFragmentExt     = "cfg"
	DefaultAddressKeyword  = "IOADDRESS"
	DefaultDatePlaceholder = "%currdate"
	DefaultDateLayout      = "1/2/2006 3:04:05 PM"
	DefaultMaxAddressLen   = 5
)

// FileConfig represents the YAML configuration structure
type FileConfig struct {
	Root            string        `yaml:"root,omitempty"`
	LibraryDir      string        `yaml:"libraryDir,omitempty"`
	ComponentsDir   string        `yaml:"componentsDir,omitempty"`
	BaseTemplate    string        `yaml:"baseTemplate,omitempty"`
	FragmentExt     string        `yaml:"fragmentExt,omitempty"`
	AddressKeyword  string        `yaml:"addressKeyword,omitempty"`
	DatePlaceholder string        `yaml:"datePlaceholder,omitempty"`
	DateLayout      string        `yaml:"dateLayout,omitempty"`
	MaxAddressLen   *int          `yaml:"maxAddressLen,omitempty"`
	LogLevel        string        `yaml:"logLevel,omitempty"`
	Output          *OutputConfig `yaml:"output,omitempty"`
}

// OutputConfig holds settings for generated files.
type OutputConfig struct {
	Dir        string `yaml:"dir,omitempty"`
	Atomic     *bool  `yaml:"atomic,omitempty"`
	LineEnding string `yaml:"lineEnding,omitempty"`
}

// AppConfig is the effective runtime configuration.
type AppConfig struct {
	Version string

	// Root anchors the library; it replaces the process working directory.
	Root          string
	LibraryDir    string
	ComponentsDir string
	BaseTemplate  string
	FragmentExt   string

	AddressKeyword  string
	DatePlaceholder string
	DateLayout      string
	MaxAddressLen   int

	OutputDir    string
	OutputAtomic bool
	LineEnding   string

	LogLevel string
}

// LibraryPath returns <root>/<libraryDir>.
func (c AppConfig) LibraryPath() string {
	return filepath.Join(c.Root, c.LibraryDir)
}

// Newline returns the line terminator for generated files.
func (c AppConfig) Newline() string {
	if c.LineEnding == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}
