// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package compose

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/ManuGH/hwgen/internal/fsutil"
	"github.com/ManuGH/hwgen/internal/library"
	"github.com/ManuGH/hwgen/internal/log"
	"github.com/ManuGH/hwgen/internal/metrics"
)

// Composer generates configuration files.
type Composer struct {
	opts    Options
	scanner *library.Scanner
}

// New creates a Composer. Zero option fields take their defaults.
func New(opts Options) *Composer {
	opts = opts.withDefaults()
	return &Composer{
		opts: opts,
		scanner: library.NewScanner(library.ScanOptions{
			FragmentExt:    opts.FragmentExt,
			AddressKeyword: opts.AddressKeyword,
		}),
	}
}

// Compose generates with default options.
func Compose(ctx context.Context, req Request) (Result, error) {
	return New(Options{}).Compose(ctx, req)
}

// Compose validates req and writes the output file. Nothing is written when
// validation fails.
func (c *Composer) Compose(ctx context.Context, req Request) (Result, error) {
	logger := log.WithComponentFromContext(ctx, "compose")
	start := time.Now()

	rows, err := c.validate(req)
	if err != nil {
		metrics.RecordGeneration(metrics.ResultValidation, 0)
		logger.Warn().
			Err(err).
			Str(log.FieldEvent, "compose.invalid").
			Msg("generation request rejected")
		return Result{}, err
	}

	res, err := c.generate(ctx, logger, req, rows)
	if err != nil {
		metrics.RecordGeneration(metrics.ResultFailure, time.Since(start))
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "compose.failed").
			Str(log.FieldTemplate, req.BaseTemplate).
			Str(log.FieldOutputPath, req.OutputPath()).
			Msg("generation failed")
		return Result{}, err
	}

	metrics.RecordGeneration(metrics.ResultSuccess, time.Since(start))
	metrics.AddFragmentsWritten(res.Fragments)
	metrics.AddRowsSkipped(len(res.Skipped))

	logger.Info().
		Str(log.FieldEvent, "compose.written").
		Str(log.FieldOutputPath, res.Path).
		Int("fragments", res.Fragments).
		Int("skipped", len(res.Skipped)).
		Dur("duration", time.Since(start)).
		Msg("configuration generated")
	return res, nil
}

func (c *Composer) generate(ctx context.Context, logger zerolog.Logger, req Request, rows []Row) (Result, error) {
	base, err := fsutil.ReadLines(req.BaseTemplate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrBaseTemplateMissing, req.BaseTemplate)
		}
		return Result{}, fmt.Errorf("read base template: %w", err)
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	base = ReplaceDate(base, c.opts.DatePlaceholder, now.Format(c.opts.DateLayout))

	res := Result{Path: req.OutputPath()}
	fragments := make([][]string, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		lines, ok, err := c.fragment(req, row)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			logger.Warn().
				Str(log.FieldEvent, "compose.row_skipped").
				Int(log.FieldRow, i).
				Str(log.FieldComponentName, row.DisplayName).
				Msg("fragment not found, row skipped")
			res.Skipped = append(res.Skipped, row.DisplayName)
			continue
		}
		logger.Debug().
			Int(log.FieldRow, i).
			Str(log.FieldComponentName, row.DisplayName).
			Str(log.FieldComponentID, row.Component.ID).
			Str(log.FieldDefaultAddress, row.Component.DefaultAddress).
			Str(log.FieldAddress, row.Address).
			Msg("fragment added")
		fragments = append(fragments, lines)
	}
	res.Fragments = len(fragments)

	out := Assemble(base, fragments)
	if c.opts.Atomic {
		err = c.writeAtomic(logger, res.Path, out)
	} else {
		err = c.write(res.Path, out)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// fragment reads the row's fragment with the assigned address applied.
func (c *Composer) fragment(req Request, row Row) ([]string, bool, error) {
	name := row.DisplayName
	if name == "" {
		name = row.Component.DisplayName
	}
	var (
		path string
		ok   bool
		err  error
	)
	if req.Library != nil {
		path, ok, err = req.Library.Find(name)
	} else {
		path, ok, err = c.scanner.FindByFormattedName(req.ComponentsDir, name)
	}
	if err != nil || !ok {
		return nil, false, err
	}

	lines, err := fsutil.ReadLines(path)
	if err != nil {
		return nil, false, fmt.Errorf("read fragment %s: %w", path, err)
	}

	def := row.Component.DefaultAddress
	if row.Address != "" && row.Address != def {
		lines = Substitute(lines, c.opts.AddressKeyword, def, row.Address)
	}
	return lines, true, nil
}

func (c *Composer) write(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := fsutil.WriteLines(f, lines, c.opts.Newline); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

func (c *Composer) writeAtomic(logger zerolog.Logger, path string, lines []string) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	if err := fsutil.WriteLines(pending, lines, c.opts.Newline); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace output file: %w", err)
	}
	return nil
}
