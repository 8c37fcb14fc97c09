package readstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"majestic-manor/internal/infra/cache"
	"majestic-manor/internal/usecase/queries"

	"github.com/google/uuid"
)

const roomCachePrefix = "rooms:"

// CachedRoomReadStore layers the Redis catalog cache over the Postgres read
// store. Cache failures degrade to a direct read; a stale list is acceptable
// for the catalog but a broken one is not.
type CachedRoomReadStore struct {
	inner *RoomReadStore
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRoomReadStore(inner *RoomReadStore, c cache.Cache, ttl time.Duration) *CachedRoomReadStore {
	return &CachedRoomReadStore{inner: inner, cache: c, ttl: ttl}
}

func (r *CachedRoomReadStore) FindAvailable(ctx context.Context, q queries.AvailabilityQuery, mode queries.AvailabilityMode) ([]*queries.RoomView, error) {
	key := listCacheKey(q, mode)

	var cached []*queries.RoomView
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("room cache read failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	views, err := r.inner.FindAvailable(ctx, q, mode)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, views, r.ttl); err != nil {
		slog.Warn("room cache write failed", "key", key, "error", err)
	}
	return views, nil
}

func (r *CachedRoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	key := roomCachePrefix + "id:" + id.String()

	var cached queries.RoomView
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("room cache read failed", "key", key, "error", err)
	} else if hit {
		return &cached, nil
	}

	view, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, view, r.ttl); err != nil {
		slog.Warn("room cache write failed", "key", key, "error", err)
	}
	return view, nil
}

// Invalidate drops the whole catalog prefix. Writes are rare enough that
// rebuilding the few cached lists costs less than precise invalidation.
func (r *CachedRoomReadStore) Invalidate(ctx context.Context) error {
	return r.cache.DelPrefix(ctx, roomCachePrefix)
}

func listCacheKey(q queries.AvailabilityQuery, mode queries.AvailabilityMode) string {
	if mode == queries.AvailabilityOverlap {
		return fmt.Sprintf("%slist:%s:%s:%s:%s", roomCachePrefix,
			q.CheckIn.Format("2006-01-02"), q.CheckOut.Format("2006-01-02"), mode, q.Text)
	}
	return fmt.Sprintf("%slist:%s:%s:%s", roomCachePrefix,
		q.Date.Format("2006-01-02"), mode, q.Text)
}
