// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ManuGH/hwgen/internal/compose"
	"github.com/ManuGH/hwgen/internal/config"
	"github.com/ManuGH/hwgen/internal/library"
	"github.com/ManuGH/hwgen/internal/log"
	"github.com/ManuGH/hwgen/internal/metrics"
	"github.com/ManuGH/hwgen/internal/version"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	root        string
	logLevel    string
	metricsFile string

	cfg config.AppConfig
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hwgen",
		Short:         "Generate PLC hardware configuration files from a component library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.root, "root", "", "directory containing the Library folder (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.AddCommand(
		catalogCmd(a),
		generateCmd(a),
		validateCmd(a),
		versionCmd(a),
	)
	return root
}

// setup configures logging and loads the configuration. Flags win over the
// config file and the environment.
func (a *app) setup() error {
	log.Configure(log.Config{Level: a.logLevel, Output: a.stderr, Version: version.Version})

	cfg, err := config.NewLoader(a.configPath, version.Version).Load()
	if err != nil {
		return err
	}
	if a.root != "" {
		abs, err := filepath.Abs(a.root)
		if err != nil {
			return usageError{err: fmt.Errorf("--root: %w", err)}
		}
		cfg.Root = abs
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return usageError{err: err}
	}

	if cfg.LogLevel != "" {
		log.Configure(log.Config{Level: cfg.LogLevel, Output: a.stderr, Version: version.Version})
	}
	a.cfg = cfg

	logger := log.WithComponent("cli")
	logger.Debug().
		Str(log.FieldEvent, "config.loaded").
		Str(log.FieldLibrary, cfg.LibraryPath()).
		Msg("configuration loaded")
	return nil
}

func (a *app) openLibrary() (*library.Library, error) {
	lib, err := library.Open(library.Layout{
		Root:          a.cfg.Root,
		Dir:           a.cfg.LibraryDir,
		ComponentsDir: a.cfg.ComponentsDir,
		BaseTemplate:  a.cfg.BaseTemplate,
	}, library.ScanOptions{
		FragmentExt:    a.cfg.FragmentExt,
		AddressKeyword: a.cfg.AddressKeyword,
	})
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("cli")
	logger.Debug().
		Str(log.FieldEvent, "library.opened").
		Str(log.FieldLibrary, lib.Dir()).
		Str(log.FieldPath, lib.ComponentsDir()).
		Msg("component library opened")
	return lib, nil
}

func (a *app) scan(lib *library.Library) ([]library.Entry, error) {
	entries, err := lib.Scan()
	if err != nil {
		metrics.IncCatalogScanError()
		return nil, err
	}
	metrics.SetCatalogEntries(len(entries))
	return entries, nil
}

func (a *app) composer(atomic bool) *compose.Composer {
	return compose.New(compose.Options{
		FragmentExt:     a.cfg.FragmentExt,
		AddressKeyword:  a.cfg.AddressKeyword,
		DatePlaceholder: a.cfg.DatePlaceholder,
		DateLayout:      a.cfg.DateLayout,
		MaxAddressLen:   a.cfg.MaxAddressLen,
		Newline:         a.cfg.Newline(),
		Atomic:          atomic,
	})
}
