package util

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func unreachableMC() *memcache.Client {
	// nothing listens on the discard port
	mc := memcache.New("127.0.0.1:9")
	mc.Timeout = 200 * time.Millisecond
	return mc
}

func TestAdjustCountLogsFailure(t *testing.T) {
	logs := captureLogs(t)
	ctx := context.Background()

	AdjustCount(ctx, unreachableMC(), "tag_count", 1)
	assert.Contains(t, logs.String(), "failed to adjust cached count")
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"key":"tag_count"`)

	logs.Reset()
	AdjustCount(ctx, unreachableMC(), "tag_count", -1)
	assert.Contains(t, logs.String(), "failed to adjust cached count")
}

func TestLoadCountFallsBack(t *testing.T) {
	logs := captureLogs(t)
	ctx := context.Background()

	count, err := LoadCount(ctx, unreachableMC(), "post_count", func() (int64, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.Contains(t, logs.String(), "failed to store cached count")

	_, err = LoadCount(ctx, unreachableMC(), "post_count", func() (int64, error) {
		return 0, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
}
