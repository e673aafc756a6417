// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package compose

import "strings"

// ReplaceDate returns lines with every placeholder replaced by stamp.
func ReplaceDate(lines []string, placeholder, stamp string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ReplaceAll(line, placeholder, stamp)
	}
	return out
}

// Substitute rewrites every "<keyword> <old>" to "<keyword> <new>". The
// match is exact: a different amount of whitespace or another letter case
// leaves the line untouched.
func Substitute(lines []string, keyword, old, new string) []string {
	from := keyword + " " + old
	to := keyword + " " + new
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ReplaceAll(line, from, to)
	}
	return out
}

// Assemble lays out the output: base lines, a blank line, then each
// fragment followed by a blank line.
func Assemble(base []string, fragments [][]string) []string {
	n := len(base) + 1
	for _, f := range fragments {
		n += len(f) + 1
	}
	out := make([]string, 0, n)
	out = append(out, base...)
	out = append(out, "")
	for _, f := range fragments {
		out = append(out, f...)
		out = append(out, "")
	}
	return out
}
