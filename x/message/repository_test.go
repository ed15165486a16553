package message

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("miniredis unavailable: %v", err)
	}
	t.Cleanup(srv.Close)

	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return srv, rdb
}

func receive(t *testing.T, events <-chan core.Event) (core.Event, bool) {
	t.Helper()

	select {
	case event, ok := <-events:
		return event, ok
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return core.Event{}, false
	}
}

func TestRepositoryPubSub(t *testing.T) {
	srv, rdb := setupRedis(t)
	repo := NewRepository(nil, rdb, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Subscribe(ctx, Channel("u2"))
	assert.NoError(t, err)

	err = repo.Publish(ctx, Channel("u2"), core.Event{Type: "message", Action: "create", Resource: map[string]any{"content": "hi"}})
	assert.NoError(t, err)

	event, ok := receive(t, events)
	if assert.True(t, ok) {
		assert.Equal(t, "message", event.Type)
		assert.Equal(t, "create", event.Action)
		assert.Equal(t, map[string]any{"content": "hi"}, event.Resource)
	}

	// garbage on the channel is skipped
	srv.Publish(Channel("u2"), "not json")
	err = repo.Publish(ctx, Channel("u2"), core.Event{Type: "message", Action: "read"})
	assert.NoError(t, err)

	event, ok = receive(t, events)
	if assert.True(t, ok) {
		assert.Equal(t, "read", event.Action)
	}

	// other accounts' channels are not relayed
	err = repo.Publish(ctx, Channel("u3"), core.Event{Type: "message", Action: "create"})
	assert.NoError(t, err)

	cancel()
	for range events {
	}
}
