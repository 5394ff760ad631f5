package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"unlocode/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingLoader struct {
	calls   int
	records []*types.Record
	err     error
}

func (l *countingLoader) load(_ context.Context, _ string) ([]*types.Record, error) {
	l.calls++
	return l.records, l.err
}

func TestGetOrLoad_LoadsOncePerWindow(t *testing.T) {
	loader := &countingLoader{records: []*types.Record{{Country: "US", Location: "NYC"}}}
	c := New(time.Hour, loader.load, testLogger())

	for i := 0; i < 3; i++ {
		records, ok := c.GetOrLoad(context.Background(), "US")
		require.True(t, ok)
		require.Len(t, records, 1)
	}

	assert.Equal(t, 1, loader.calls)
}

func TestGetOrLoad_ReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{records: []*types.Record{{Country: "US", Location: "NYC"}}}
	c := New(20*time.Millisecond, loader.load, testLogger())

	_, ok := c.GetOrLoad(context.Background(), "US")
	require.True(t, ok)
	require.Equal(t, 1, loader.calls)

	// An entry older than the expiry window must never be served.
	time.Sleep(50 * time.Millisecond)

	_, ok = c.GetOrLoad(context.Background(), "US")
	require.True(t, ok)
	assert.Equal(t, 2, loader.calls)
}

func TestGetOrLoad_LoaderFailureMeansAbsent(t *testing.T) {
	loader := &countingLoader{err: errors.New("no such file")}
	c := New(time.Hour, loader.load, testLogger())

	records, ok := c.GetOrLoad(context.Background(), "XX")
	assert.False(t, ok)
	assert.Nil(t, records)

	// Failures are not cached; the next access retries the loader.
	_, _ = c.GetOrLoad(context.Background(), "XX")
	assert.Equal(t, 2, loader.calls)
}

func TestGetOrLoad_KeysAreIndependent(t *testing.T) {
	loader := &countingLoader{records: []*types.Record{{Country: "US", Location: "NYC"}}}
	c := New(time.Hour, loader.load, testLogger())

	_, ok := c.GetOrLoad(context.Background(), "US")
	require.True(t, ok)
	_, ok = c.GetOrLoad(context.Background(), "GB")
	require.True(t, ok)

	assert.Equal(t, 2, loader.calls)
}
