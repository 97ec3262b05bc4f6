// Package entity defines the domain entities for the chat feature.
package entity

// User is a chat participant identified by the upstream identity provider.
// ID is assigned by that provider, not by the store.
type User struct {
	// ID is the primary key.
	ID int64

	// UserName is the display name shown next to messages.
	UserName string

	// AvatarURL points to the user's profile picture.
	AvatarURL string

	// AccessToken is the opaque credential the user authenticates with.
	// It is unique across users and must never be echoed back to clients.
	AccessToken string `json:"-"`
}
