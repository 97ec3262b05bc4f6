// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"chat_backend/internal/feature/chat/usecase"
	"chat_backend/internal/platform/cache"
)

// NewRoomDirectory returns the RoomDirectory used by the room usecase.
// If Redis is available, room names are served through a Redis cache.
// Otherwise, the store is used directly.
func NewRoomDirectory(rdb *redis.Client, ttl time.Duration, store usecase.RoomDirectory) usecase.RoomDirectory {
	if rdb != nil {
		return cache.NewCachingRoomDirectory(rdb, ttl, store, "rooms")
	}
	return store
}
