package usecase

import (
	"context"

	"chat_backend/internal/feature/chat/domain"
	"chat_backend/internal/feature/chat/domain/entity"
)

// mockUserStore is a mock implementation of UserStore.
type mockUserStore struct {
	UpsertUserFunc                 func(ctx context.Context, user *entity.User) error
	GetUserByAccessTokenFunc       func(ctx context.Context, accessToken string) (*entity.User, bool, error)
	GetUserByAccessTokenOrFailFunc func(ctx context.Context, accessToken string) (*entity.User, error)
}

func (m *mockUserStore) UpsertUser(ctx context.Context, user *entity.User) error {
	if m.UpsertUserFunc != nil {
		return m.UpsertUserFunc(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetUserByAccessToken(ctx context.Context, accessToken string) (*entity.User, bool, error) {
	if m.GetUserByAccessTokenFunc != nil {
		return m.GetUserByAccessTokenFunc(ctx, accessToken)
	}
	return nil, false, nil
}

func (m *mockUserStore) GetUserByAccessTokenOrFail(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.GetUserByAccessTokenOrFailFunc != nil {
		return m.GetUserByAccessTokenOrFailFunc(ctx, accessToken)
	}
	return nil, domain.ErrUserNotFound
}

// mockRoomDirectory is a mock implementation of RoomDirectory.
type mockRoomDirectory struct {
	ListRoomsFunc   func(ctx context.Context) ([]entity.Room, error)
	GetRoomNameFunc func(ctx context.Context, roomID int64) (string, error)
}

func (m *mockRoomDirectory) ListRooms(ctx context.Context) ([]entity.Room, error) {
	if m.ListRoomsFunc != nil {
		return m.ListRoomsFunc(ctx)
	}
	return []entity.Room{}, nil
}

func (m *mockRoomDirectory) GetRoomName(ctx context.Context, roomID int64) (string, error) {
	if m.GetRoomNameFunc != nil {
		return m.GetRoomNameFunc(ctx, roomID)
	}
	return "", domain.ErrRoomNotFound
}
