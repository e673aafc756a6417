// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment keys consumed by the loader.
const (
	EnvRoot       = "HWGEN_ROOT"
	EnvOutputDir  = "HWGEN_OUTPUT_DIR"
	EnvAtomic     = "HWGEN_OUTPUT_ATOMIC"
	EnvLineEnding = "HWGEN_LINE_ENDING"
	EnvDateLayout = "HWGEN_DATE_LAYOUT"
	EnvLogLevel   = "HWGEN_LOG_LEVEL"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseBool(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	l.mergeEnvConfig(&cfg)

	if abs, err := filepath.Abs(cfg.Root); err == nil {
		cfg.Root = abs
	}

	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Root:            ".",
		LibraryDir:      DefaultLibraryDir,
		ComponentsDir:   DefaultComponentsDir,
		BaseTemplate:    DefaultBaseTemplate,
		FragmentExt:     DefaultFragmentExt,
		AddressKeyword:  DefaultAddressKeyword,
		DatePlaceholder: DefaultDatePlaceholder,
		DateLayout:      DefaultDateLayout,
		MaxAddressLen:   DefaultMaxAddressLen,
		LineEnding:      LineEndingLF,
	}
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s (only YAML supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParseFile(data)
}

// ParseFile strictly decodes a single YAML document into a FileConfig.
func ParseFile(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(dst *AppConfig, src *FileConfig) {
	setString(&dst.Root, src.Root)
	setString(&dst.LibraryDir, src.LibraryDir)
	setString(&dst.ComponentsDir, src.ComponentsDir)
	setString(&dst.BaseTemplate, src.BaseTemplate)
	setString(&dst.FragmentExt, strings.TrimPrefix(src.FragmentExt, "."))
	setString(&dst.AddressKeyword, src.AddressKeyword)
	setString(&dst.DatePlaceholder, src.DatePlaceholder)
	setString(&dst.DateLayout, src.DateLayout)
	setString(&dst.LogLevel, src.LogLevel)
	if src.MaxAddressLen != nil {
		dst.MaxAddressLen = *src.MaxAddressLen
	}
	if src.Output != nil {
		setString(&dst.OutputDir, src.Output.Dir)
		setString(&dst.LineEnding, strings.ToLower(src.Output.LineEnding))
		if src.Output.Atomic != nil {
			dst.OutputAtomic = *src.Output.Atomic
		}
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.Root = l.envString(EnvRoot, cfg.Root)
	cfg.OutputDir = l.envString(EnvOutputDir, cfg.OutputDir)
	cfg.OutputAtomic = l.envBool(EnvAtomic, cfg.OutputAtomic)
	cfg.LineEnding = strings.ToLower(l.envString(EnvLineEnding, cfg.LineEnding))
	cfg.DateLayout = l.envString(EnvDateLayout, cfg.DateLayout)
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
