// Package dto defines data transfer objects for the chat HTTP API.
package dto

// SignInReq is the request body for POST /users.
// It uses Gin's binding tags for validation.
type SignInReq struct {
	ID          int64  `json:"id" binding:"required,gt=0"`
	UserName    string `json:"user_name" binding:"required,max=255"`
	AvatarURL   string `json:"avatar_url" binding:"omitempty,url,max=2048"`
	AccessToken string `json:"access_token" binding:"required,max=255"`
}

// UserRes is the public view of a user. The access token is never included.
type UserRes struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	AvatarURL string `json:"avatar_url"`
}

// SessionRes is the response body for GET /session.
type SessionRes struct {
	Authenticated bool     `json:"authenticated"`
	User          *UserRes `json:"user,omitempty"`
}
