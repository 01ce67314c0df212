package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedSource(t *testing.T, content string) (*CachedSource, string) {
	t.Helper()
	path := writeTempCSV(t, content)
	return NewCachedSource(path, NewCSVSource(path)), path
}

func TestCachedSourceTable_ReusesTableWhileFileUnchanged(t *testing.T) {
	cached, _ := newCachedSource(t, sampleCSV)

	first, err := cached.Table(context.Background())
	require.NoError(t, err)

	second, err := cached.Table(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCachedSourceTable_ReloadsWhenFileChanges(t *testing.T) {
	cached, path := newCachedSource(t, sampleCSV)

	first, err := cached.Table(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, first.Len())

	extended := sampleCSV + "2024-03-15,Electronics,North,Consumer,Credit Card,Mouse,30.00,1,0.00,30.00\n"
	require.NoError(t, os.WriteFile(path, []byte(extended), 0o600))
	// Bump mtime past filesystem timestamp granularity
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(2*time.Second)))

	second, err := cached.Table(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 3, second.Len())
}

func TestCachedSourceInvalidate(t *testing.T) {
	cached, _ := newCachedSource(t, sampleCSV)

	first, err := cached.Table(context.Background())
	require.NoError(t, err)

	cached.Invalidate()
	assert.Equal(t, 0, cached.Status().Rows)

	second, err := cached.Table(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Records, second.Records)
}

func TestCachedSourceStatus(t *testing.T) {
	cached, path := newCachedSource(t, sampleCSV)

	status := cached.Status()
	assert.Equal(t, path, status.Path)
	assert.Zero(t, status.Rows)
	assert.True(t, status.LoadedAt.IsZero())

	_, err := cached.Table(context.Background())
	require.NoError(t, err)

	status = cached.Status()
	assert.Equal(t, 2, status.Rows)
	assert.Equal(t, int64(len(sampleCSV)), status.SizeBytes)
	assert.False(t, status.LoadedAt.IsZero())
}

func TestCachedSourceTable_MissingFile(t *testing.T) {
	cached := NewCachedSource("/nonexistent/sales_data.csv", NewCSVSource("/nonexistent/sales_data.csv"))

	_, err := cached.Table(context.Background())

	require.Error(t, err)
	assert.True(t, IsLoadError(err))
}
