package router

import (
	"github.com/gin-gonic/gin"

	chathandler "chat_backend/internal/feature/chat/transport/handler"
	chatmw "chat_backend/internal/feature/chat/transport/middleware"
	"chat_backend/internal/platform/http/handler"
	platformmw "chat_backend/internal/platform/http/middleware"
)

func NewRouter(db handler.Pinger, auth chatmw.Authenticator,
	users *chathandler.UserHandler, rooms *chathandler.RoomHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), platformmw.RequestID(), platformmw.RequestLogger())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// DB疎通確認
	r.GET("/readyz", handler.Ready(db))
	// IDプロバイダから受け取ったユーザー情報を登録
	r.POST("/users", users.SignIn)
	// トークン任意: 認証済みかどうかを返す
	r.GET("/session", users.Session)

	// 認証必須のルート
	// → Authorization: Bearer <access token> が必要になる
	authed := r.Group("/")
	authed.Use(chatmw.AccessTokenRequired(auth))
	{
		authed.GET("/me", users.Me)
		authed.GET("/rooms", rooms.List)
		authed.GET("/rooms/:id/name", rooms.Name)
	}

	return r
}
