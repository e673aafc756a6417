// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCatalogEntries(t *testing.T) {
	SetCatalogEntries(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(catalogEntries))

	SetCatalogEntries(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(catalogEntries))
}

func TestIncCatalogScanError(t *testing.T) {
	before := testutil.ToFloat64(catalogScanErrors)
	IncCatalogScanError()
	assert.Equal(t, before+1, testutil.ToFloat64(catalogScanErrors))
}

func TestRecordGeneration(t *testing.T) {
	beforeOK := testutil.ToFloat64(generationsTotal.WithLabelValues(ResultSuccess))
	beforeInvalid := testutil.ToFloat64(generationsTotal.WithLabelValues(ResultValidation))

	RecordGeneration(ResultSuccess, 5*time.Millisecond)
	RecordGeneration(ResultValidation, 0)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(generationsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, beforeInvalid+1, testutil.ToFloat64(generationsTotal.WithLabelValues(ResultValidation)))
	assert.Equal(t, 1, testutil.CollectAndCount(generationDuration))
}

func TestCounters_IgnoreNonPositive(t *testing.T) {
	before := testutil.ToFloat64(fragmentsWritten)
	AddFragmentsWritten(3)
	AddFragmentsWritten(0)
	AddFragmentsWritten(-1)
	assert.Equal(t, before+3, testutil.ToFloat64(fragmentsWritten))

	before = testutil.ToFloat64(rowsSkipped)
	AddRowsSkipped(2)
	AddRowsSkipped(0)
	assert.Equal(t, before+2, testutil.ToFloat64(rowsSkipped))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "hwgen_test_total", Help: "test"})
	c.Add(4)
	reg.MustRegister(c)

	path := filepath.Join(t.TempDir(), "hwgen.prom")
	require.NoError(t, writeTextfile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hwgen_test_total 4")
}

func TestWriteTextfile_DefaultRegistry(t *testing.T) {
	SetCatalogEntries(3)

	path := filepath.Join(t.TempDir(), "hwgen.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hwgen_catalog_entries 3")
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	assert.Error(t, WriteTextfile(""))
}
