// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package fsutil holds the line-oriented file helpers shared by the library
// loader and the composer.
package fsutil

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

const utf8BOM = "\ufeff"

// ReadLines reads path as text and returns its lines without terminators.
// "\n", "\r\n" and a lone "\r" all end a line; a final terminator does not
// produce an extra empty line. A leading UTF-8 byte order mark is dropped.
func ReadLines(path string) ([]string, error) {
	// #nosec G304 -- paths come from the configured library or the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ScanLines splits r into lines using the same rules as ReadLines. Line
// length is not limited.
func ScanLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	var lines []string
	for len(data) > 0 {
		advance, token, _ := splitLines(data, true)
		lines = append(lines, string(token))
		data = data[advance:]
	}
	return lines, nil
}

func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Trailing '\r': wait for the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// WriteLines writes every line followed by newline.
func WriteLines(w io.Writer, lines []string, newline string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString(newline); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// IsRegularFile checks if path exists and is a regular file (not directory, device, etc).
// Returns error if not.
func IsRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
