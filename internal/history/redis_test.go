package history

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, opts ...RedisOption) *RedisStore {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return NewRedisFromClient(client, opts...)
}

func TestRedisStore_AppendRecent(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	for _, cmd := range []string{"first", "second", "third"} {
		require.NoError(t, store.Append(ctx, Record{
			Command:   cmd,
			Success:   true,
			Timestamp: time.Now().UTC(),
		}))
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Command)
	assert.Equal(t, "second", recent[1].Command)
}

func TestRedisStore_CapTrimsOldest(t *testing.T) {
	store := newTestRedis(t, WithCap(2))
	ctx := context.Background()

	for _, cmd := range []string{"a", "b", "c"} {
		require.NoError(t, store.Append(ctx, Record{Command: cmd}))
	}

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Command)
	assert.Equal(t, "b", recent[1].Command)
}
