// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// hwgen assembles PLC hardware configuration files from a library of
// configuration fragments.
//
// Usage:
//
//	hwgen catalog [--filter q] [--format table|json|yaml] [--watch]
//	hwgen generate --name N --out DIR [--component "NAME=ADDR"]... [--selection file.yaml]
//	hwgen validate --selection file.yaml
//	hwgen version
//
// Exit codes:
//   - 0: success
//   - 1: generation, library or I/O error
//   - 2: validation or usage error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ManuGH/hwgen/internal/log"
	"github.com/ManuGH/hwgen/internal/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if _, _, err := root.Find(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	if a.metricsFile != "" {
		if werr := metrics.WriteTextfile(a.metricsFile); werr != nil {
			logger := log.WithComponent("cli")
			logger.Error().Err(werr).Str(log.FieldPath, a.metricsFile).Msg("metrics textfile not written")
		}
	}

	return exitCode(err)
}
