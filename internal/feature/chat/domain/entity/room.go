package entity

import "time"

// Room is a chat room together with its latest message activity.
type Room struct {
	ID   int64
	Name string

	// LastMessageAt is nil when the room has no messages yet.
	LastMessageAt *time.Time
}

// HasActivity reports whether any message has been posted in the room.
func (r Room) HasActivity() bool {
	return r.LastMessageAt != nil
}
