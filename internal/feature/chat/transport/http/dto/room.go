package dto

import "time"

// RoomItem represents a room in the GET /rooms response.
type RoomItem struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// RoomNameRes is the response body for GET /rooms/:id/name.
type RoomNameRes struct {
	Name string `json:"name"`
}

// ErrorRes is the common error body.
type ErrorRes struct {
	Error string `json:"error"`
}
