// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ManuGH/hwgen/internal/compose"
	"github.com/ManuGH/hwgen/internal/log"
	"github.com/ManuGH/hwgen/internal/selection"
)

// requestFlags are shared by generate and validate.
type requestFlags struct {
	name       string
	out        string
	components []string
	selection  string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "output file name without extension")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output directory (default: output.dir from config)")
	cmd.Flags().StringArrayVar(&f.components, "component", nil, `component to add as "NAME=ADDR" (repeatable)`)
	cmd.Flags().StringVarP(&f.selection, "selection", "s", "", "YAML selection file")
}

// request builds a compose request from the selection file, then the flags.
// Flag values win; --component rows are appended after the file's rows.
func (a *app) request(f requestFlags) (compose.Request, error) {
	file := &selection.File{}
	if f.selection != "" {
		loaded, err := selection.LoadFile(f.selection)
		if err != nil {
			return compose.Request{}, err
		}
		file = loaded
	}
	for _, c := range f.components {
		row, err := selection.ParseRow(c)
		if err != nil {
			return compose.Request{}, err
		}
		file.Rows = append(file.Rows, row)
	}
	if f.name != "" {
		file.Name = f.name
	}
	if f.out != "" {
		file.OutputDir = f.out
	}
	if file.OutputDir == "" {
		file.OutputDir = a.cfg.OutputDir
	}

	lib, err := a.openLibrary()
	if err != nil {
		return compose.Request{}, err
	}
	entries, err := a.scan(lib)
	if err != nil {
		return compose.Request{}, err
	}
	list, err := file.Resolve(entries, a.cfg.MaxAddressLen)
	if err != nil {
		return compose.Request{}, err
	}

	return compose.Request{
		BaseTemplate:  lib.BaseTemplate(),
		ComponentsDir: lib.ComponentsDir(),
		Library:       lib,
		OutputDir:     file.OutputDir,
		OutputName:    file.Name,
		Rows:          list.Rows(),
	}, nil
}

func generateCmd(a *app) *cobra.Command {
	var (
		flags  requestFlags
		atomic bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a hardware configuration file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("atomic") {
				atomic = a.cfg.OutputAtomic
			}

			ctx := log.ContextWithRunID(cmd.Context(), uuid.NewString())
			res, err := a.composer(atomic).Compose(ctx, req)
			if err != nil {
				return err
			}

			for _, name := range res.Skipped {
				fmt.Fprintf(a.stderr, "warning: component %q not found in library, skipped\n", name)
			}
			fmt.Fprintf(a.stdout, "Generated %s (%d components)\n", res.Path, res.Fragments)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&atomic, "atomic", false, "replace the output file atomically (default: output.atomic from config)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a selection without writing anything",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.selection == "" && len(flags.components) == 0 {
				return usageError{err: fmt.Errorf("--selection or --component is required")}
			}
			req, err := a.request(flags)
			if err != nil {
				return err
			}
			if err := a.composer(false).Validate(req); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "✓ %s is valid\n", req.OutputPath())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
