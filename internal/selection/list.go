// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package selection holds the ordered list of components a configuration is
// built from, and its YAML file form.
package selection

import (
	"fmt"

	"github.com/ManuGH/hwgen/internal/compose"
	"github.com/ManuGH/hwgen/internal/library"
	"github.com/ManuGH/hwgen/internal/validate"
)

// List is an editable, ordered selection. The zero value is ready to use
// and accepts addresses of up to compose.DefaultMaxAddressLen digits.
type List struct {
	rows          []compose.Row
	maxAddressLen int
}

// NewList creates an empty list. maxAddressLen <= 0 selects the default.
func NewList(maxAddressLen int) *List {
	return &List{maxAddressLen: maxAddressLen}
}

func (l *List) maxLen() int {
	if l.maxAddressLen <= 0 {
		return compose.DefaultMaxAddressLen
	}
	return l.maxAddressLen
}

// Add appends a row for e with e's default address and returns its index.
func (l *List) Add(e library.Entry) int {
	l.rows = append(l.rows, compose.Row{
		DisplayName: e.DisplayName,
		Address:     e.DefaultAddress,
		Component:   &e,
	})
	return len(l.rows) - 1
}

// Remove deletes row i.
func (l *List) Remove(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return nil
}

// Move relocates row from to index to, shifting the rows in between.
func (l *List) Move(from, to int) error {
	if err := l.check(from); err != nil {
		return err
	}
	if err := l.check(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	row := l.rows[from]
	l.rows = append(l.rows[:from], l.rows[from+1:]...)
	l.rows = append(l.rows[:to], append([]compose.Row{row}, l.rows[to:]...)...)
	return nil
}

// SetAddress assigns addr to row i. addr must be empty or digits only.
func (l *List) SetAddress(i int, addr string) error {
	if err := l.check(i); err != nil {
		return err
	}
	v := validate.New()
	v.Digits("address", addr, l.maxLen())
	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	l.rows[i].Address = addr
	return nil
}

// Rows returns a copy of the rows in order.
func (l *List) Rows() []compose.Row {
	out := make([]compose.Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Len returns the number of rows.
func (l *List) Len() int { return len(l.rows) }

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.rows) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.rows))
	}
	return nil
}
