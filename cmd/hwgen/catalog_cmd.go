// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ManuGH/hwgen/internal/library"
	"github.com/ManuGH/hwgen/internal/log"
	"github.com/ManuGH/hwgen/internal/metrics"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func catalogCmd(a *app) *cobra.Command {
	var (
		filter string
		format string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the components of the library",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatJSON, formatYAML:
			default:
				return usageError{err: fmt.Errorf("--format must be one of table, json, yaml, got %q", format)}
			}

			lib, err := a.openLibrary()
			if err != nil {
				return err
			}
			entries, err := a.scan(lib)
			if err != nil {
				return err
			}
			if err := printCatalog(a.stdout, library.Filter(entries, filter), format); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchCatalog(ctx, a, lib, filter, format)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "show only components whose name contains this text")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, json, yaml")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the catalog again whenever the library changes")
	return cmd
}

func watchCatalog(ctx context.Context, a *app, lib *library.Library, filter, format string) error {
	w, err := lib.NewWatcher(library.DefaultDebounce)
	if err != nil {
		return err
	}

	logger := log.WithComponent("cli")
	return w.Run(ctx, func(entries []library.Entry) {
		metrics.SetCatalogEntries(len(entries))
		if err := printCatalog(a.stdout, library.Filter(entries, filter), format); err != nil {
			logger.Warn().Err(err).Msg("catalog not printed")
		}
	})
}

func printCatalog(w io.Writer, entries []library.Entry, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tID\tADDRESS")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.DisplayName, e.ID, e.DefaultAddress)
		}
		return tw.Flush()
	}
}
