package usecase

import (
	"context"

	"chat_backend/internal/feature/chat/domain/entity"
)

// RoomUsecase provides read access to chat rooms.
type RoomUsecase struct {
	rooms RoomDirectory
}

// NewRoomUsecase creates a RoomUsecase with the given directory.
func NewRoomUsecase(rooms RoomDirectory) *RoomUsecase {
	return &RoomUsecase{rooms: rooms}
}

// ListRooms returns all rooms with their latest activity.
func (u *RoomUsecase) ListRooms(ctx context.Context) ([]entity.Room, error) {
	return u.rooms.ListRooms(ctx)
}

// RoomName returns the display name of a room.
func (u *RoomUsecase) RoomName(ctx context.Context, roomID int64) (string, error) {
	return u.rooms.GetRoomName(ctx, roomID)
}
