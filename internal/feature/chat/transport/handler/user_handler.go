// Package handler provides HTTP handlers for the chat feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"chat_backend/internal/feature/chat/domain/entity"
	"chat_backend/internal/feature/chat/transport/http/dto"
	"chat_backend/internal/feature/chat/transport/middleware"
	"chat_backend/internal/feature/chat/usecase"
)

// UserUsecase defines the user operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	SignIn(ctx context.Context, user entity.User) error
	Lookup(ctx context.Context, accessToken string) (*entity.User, bool, error)
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// SignIn stores the identity obtained from the identity provider.
//   - 400 on malformed body
//   - 500 when the store fails
//   - 204 on success
func (h *UserHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("remote_addr", c.ClientIP()).Msg("sign-in validation failed")
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	err := h.uc.SignIn(c.Request.Context(), entity.User{
		ID:          req.ID,
		UserName:    req.UserName,
		AvatarURL:   req.AvatarURL,
		AccessToken: req.AccessToken,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidUser) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to store user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
		return
	}
	c.JSON(http.StatusOK, dto.UserRes{ID: u.ID, UserName: u.UserName, AvatarURL: u.AvatarURL})
}

// Session reports whether the optional bearer token belongs to a user.
// An absent or unknown token is not an error: the response says authenticated=false.
func (h *UserHandler) Session(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusOK, dto.SessionRes{Authenticated: false})
		return
	}

	u, found, err := h.uc.Lookup(c.Request.Context(), token)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("session lookup failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to look up session"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, dto.SessionRes{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, dto.SessionRes{
		Authenticated: true,
		User:          &dto.UserRes{ID: u.ID, UserName: u.UserName, AvatarURL: u.AvatarURL},
	})
}
