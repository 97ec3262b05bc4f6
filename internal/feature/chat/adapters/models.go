package adapters

import (
	"chat_backend/internal/feature/chat/domain/entity"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Username    string `gorm:"column:username;size:255;not null"`
	AvatarURL   string `gorm:"column:avatar_url;size:2048"`
	AccessToken string `gorm:"column:access_token;size:255;not null;uniqueIndex"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:          m.ID,
		UserName:    m.Username,
		AvatarURL:   m.AvatarURL,
		AccessToken: m.AccessToken,
	}
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:          u.ID,
		Username:    u.UserName,
		AvatarURL:   u.AvatarURL,
		AccessToken: u.AccessToken,
	}
}

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:255;not null"`
}

// TableName returns the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}

// RoomActivityModel maps a row of the rooms_with_activity view.
// The view is owned by the database; it is never migrated from here.
type RoomActivityModel struct {
	ID            int64         `gorm:"column:id"`
	Name          string        `gorm:"column:name"`
	LastMessageAt NullTimestamp `gorm:"column:last_message_at"`
}

// TableName returns the view name for GORM.
func (RoomActivityModel) TableName() string {
	return "rooms_with_activity"
}

// ToEntity converts the view row to a domain entity.
func (m *RoomActivityModel) ToEntity() entity.Room {
	return entity.Room{
		ID:            m.ID,
		Name:          m.Name,
		LastMessageAt: m.LastMessageAt.Ptr(),
	}
}
