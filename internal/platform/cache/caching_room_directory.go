// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"chat_backend/internal/feature/chat/domain/entity"
	"chat_backend/internal/feature/chat/usecase"
)

// DefaultRoomNameTTL is used when NewCachingRoomDirectory receives a non-positive ttl.
const DefaultRoomNameTTL = 10 * time.Minute

// CachingRoomDirectory decorates a RoomDirectory with a Redis cache for room names.
// Room listings always go to the inner directory because activity changes constantly.
type CachingRoomDirectory struct {
	inner     usecase.RoomDirectory
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	group     singleflight.Group
}

var _ usecase.RoomDirectory = (*CachingRoomDirectory)(nil)

// NewCachingRoomDirectory decorates inner with Redis caching.
// If ttl is 0, it defaults to DefaultRoomNameTTL. If namespace is empty, it uses "rooms".
// A nil rdb disables caching entirely.
func NewCachingRoomDirectory(rdb *redis.Client, ttl time.Duration, inner usecase.RoomDirectory, namespace string) *CachingRoomDirectory {
	if ttl <= 0 {
		ttl = DefaultRoomNameTTL
	}
	if namespace == "" {
		namespace = "rooms"
	}
	return &CachingRoomDirectory{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListRooms delegates to the inner directory.
func (c *CachingRoomDirectory) ListRooms(ctx context.Context) ([]entity.Room, error) {
	return c.inner.ListRooms(ctx)
}

// GetRoomName checks the cache first, then falls back to the inner directory.
// Concurrent misses for the same room share a single inner call, and a caller
// giving up on its context does not fail the others.
// Errors from the inner directory (including not-found) are never cached.
func (c *CachingRoomDirectory) GetRoomName(ctx context.Context, roomID int64) (string, error) {
	if c.rdb == nil {
		return c.inner.GetRoomName(ctx, roomID)
	}

	key := c.nameKey(roomID)

	// 1) Check cache
	name, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		return name, nil
	}
	if err != redis.Nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("room name cache read failed")
	}

	// 2) Fallback to the store, collapsing concurrent misses.
	// The shared call must outlive any single waiter; each waiter still honours its own ctx.
	ch := c.group.DoChan(key, func() (any, error) {
		return c.inner.GetRoomName(context.WithoutCancel(ctx), roomID)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if res.Err != nil {
		return "", res.Err
	}
	name = res.Val.(string)

	// 3) Store in cache (best effort)
	if err := c.rdb.Set(ctx, key, name, c.ttl).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("room name cache write failed")
	}
	return name, nil
}

// nameKey generates the cache key for a room's name.
func (c *CachingRoomDirectory) nameKey(roomID int64) string {
	return c.namespace + ":name:" + strconv.FormatInt(roomID, 10)
}
