package util

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
)

// StoreCount caches a resource count under key
func StoreCount(ctx context.Context, mc *memcache.Client, key string, count int64) {
	err := mc.Set(&memcache.Item{Key: key, Value: []byte(strconv.FormatInt(count, 10))})
	if err != nil {
		slog.WarnContext(
			ctx, "failed to store cached count",
			slog.String("error", err.Error()),
			slog.String("module", "util"),
			slog.String("key", key),
		)
	}
}

// AdjustCount moves a cached count by delta.
// A missing key is left alone; LoadCount fills it on the next read.
func AdjustCount(ctx context.Context, mc *memcache.Client, key string, delta int64) {
	var err error
	if delta >= 0 {
		_, err = mc.Increment(key, uint64(delta))
	} else {
		_, err = mc.Decrement(key, uint64(-delta))
	}
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		slog.WarnContext(
			ctx, "failed to adjust cached count",
			slog.String("error", err.Error()),
			slog.String("module", "util"),
			slog.String("key", key),
		)
	}
}

// LoadCount reads a cached resource count. It falls back to load and refills the cache on a miss.
func LoadCount(ctx context.Context, mc *memcache.Client, key string, load func() (int64, error)) (int64, error) {
	item, err := mc.Get(key)
	if err == nil {
		count, err := strconv.ParseInt(string(item.Value), 10, 64)
		if err == nil {
			return count, nil
		}
	}

	count, err := load()
	if err != nil {
		return 0, err
	}

	StoreCount(ctx, mc, key, count)
	return count, nil
}
