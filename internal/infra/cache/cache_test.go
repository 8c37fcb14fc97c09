//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"majestic-manor/internal/infra/cache"
)

type payload struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewFromClient(client), mr
}

func TestRedis_GetMissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var got payload
	found, err := c.Get(ctx, "rooms:list", &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := payload{ID: "r1", Count: 3}
	require.NoError(t, c.Set(ctx, "rooms:list", want, time.Minute))

	found, err = c.Get(ctx, "rooms:list", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestRedis_SetHonorsTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rooms:list", payload{ID: "r1"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got payload
	found, err := c.Get(ctx, "rooms:list", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedis_DelPrefix(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rooms:list:2026-09-10", payload{ID: "a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "rooms:id:r1", payload{ID: "r1"}, time.Minute))
	require.NoError(t, c.Set(ctx, "bookings:latest", payload{ID: "b"}, time.Minute))

	require.NoError(t, c.DelPrefix(ctx, "rooms:"))

	var got payload
	found, err := c.Get(ctx, "rooms:list:2026-09-10", &got)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = c.Get(ctx, "rooms:id:r1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Keys outside the prefix survive.
	found, err = c.Get(ctx, "bookings:latest", &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRedis_CorruptEntryFailsUnmarshal(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("rooms:list", "not-json"))

	var got payload
	_, err := c.Get(context.Background(), "rooms:list", &got)
	assert.Error(t, err)
}

func TestRedis_NilReceiverIsDisabled(t *testing.T) {
	var c *cache.Redis
	ctx := context.Background()

	var got payload
	found, err := c.Get(ctx, "rooms:list", &got)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, c.Set(ctx, "rooms:list", payload{ID: "r1"}, time.Minute))
	assert.NoError(t, c.DelPrefix(ctx, "rooms:"))
	assert.NoError(t, c.Close())
}

func TestNew_EmptyAddrDisables(t *testing.T) {
	assert.Nil(t, cache.New("", "", 0))
}
