package usecase

import (
	"context"

	"chat_backend/internal/feature/chat/domain/entity"
)

// UserStore abstracts persistence of user identity records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserStore interface {
	// UpsertUser writes the user, overwriting any row with the same ID.
	UpsertUser(ctx context.Context, user *entity.User) error

	// GetUserByAccessToken returns found=false with a nil error when no user owns the token.
	GetUserByAccessToken(ctx context.Context, accessToken string) (*entity.User, bool, error)

	// GetUserByAccessTokenOrFail returns domain.ErrUserNotFound when no user owns the token.
	GetUserByAccessTokenOrFail(ctx context.Context, accessToken string) (*entity.User, error)
}

// RoomDirectory abstracts read access to rooms and their activity.
type RoomDirectory interface {
	// ListRooms returns all rooms with their latest message time.
	ListRooms(ctx context.Context) ([]entity.Room, error)

	// GetRoomName returns domain.ErrRoomNotFound when the room does not exist.
	GetRoomName(ctx context.Context, roomID int64) (string, error)
}
