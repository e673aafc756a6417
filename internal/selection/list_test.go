// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(l *List) []string {
	rows := l.Rows()
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.DisplayName
	}
	return out
}

func TestList_Add(t *testing.T) {
	var l List
	idx := l.Add(catalog[0])
	assert.Equal(t, 0, idx)
	idx = l.Add(catalog[0])
	assert.Equal(t, 1, idx)

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "X1", rows[0].DisplayName)
	assert.Equal(t, "12", rows[0].Address)
	require.NotNil(t, rows[0].Component)
	assert.Equal(t, "x1", rows[0].Component.ID)
	assert.NotSame(t, rows[0].Component, rows[1].Component)
}

func TestList_Remove(t *testing.T) {
	l := NewList(0)
	for _, e := range catalog {
		l.Add(e)
	}

	require.NoError(t, l.Remove(1))
	assert.Equal(t, []string{"X1", "ANALOG OUT"}, names(l))

	err := l.Remove(5)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.True(t, errors.Is(l.Remove(-1), ErrIndexOutOfRange))
	assert.Equal(t, 2, l.Len())
}

func TestList_Move(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"DIGITAL INPUT", "ANALOG OUT", "X1"}},
		{2, 0, []string{"ANALOG OUT", "X1", "DIGITAL INPUT"}},
		{1, 1, []string{"X1", "DIGITAL INPUT", "ANALOG OUT"}},
		{1, 2, []string{"X1", "ANALOG OUT", "DIGITAL INPUT"}},
	}

	for _, tt := range tests {
		l := NewList(0)
		for _, e := range catalog {
			l.Add(e)
		}
		require.NoError(t, l.Move(tt.from, tt.to))
		assert.Equal(t, tt.want, names(l), "move %d -> %d", tt.from, tt.to)
	}

	l := NewList(0)
	l.Add(catalog[0])
	assert.True(t, errors.Is(l.Move(0, 1), ErrIndexOutOfRange))
}

func TestList_SetAddress(t *testing.T) {
	l := NewList(0)
	l.Add(catalog[0])

	require.NoError(t, l.SetAddress(0, "34"))
	assert.Equal(t, "34", l.Rows()[0].Address)

	require.NoError(t, l.SetAddress(0, ""))
	assert.Equal(t, "", l.Rows()[0].Address)

	for _, bad := range []string{"12a", "-1", "123456", " 1"} {
		err := l.SetAddress(0, bad)
		assert.True(t, errors.Is(err, ErrInvalidAddress), "address %q", bad)
	}
	assert.Equal(t, "", l.Rows()[0].Address, "rejected addresses leave the row unchanged")

	assert.True(t, errors.Is(l.SetAddress(3, "1"), ErrIndexOutOfRange))

	wide := NewList(8)
	wide.Add(catalog[0])
	assert.NoError(t, wide.SetAddress(0, "12345678"))
}

func TestList_RowsIsACopy(t *testing.T) {
	l := NewList(0)
	l.Add(catalog[0])

	rows := l.Rows()
	rows[0].Address = "99"
	assert.Equal(t, "12", l.Rows()[0].Address)
}
