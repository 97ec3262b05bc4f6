package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"chat_backend/internal/feature/chat/domain"
	"chat_backend/internal/feature/chat/domain/entity"
	"chat_backend/internal/feature/chat/transport/http/dto"
)

// RoomUsecase defines the room operations the handler depends on.
type RoomUsecase interface {
	ListRooms(ctx context.Context) ([]entity.Room, error)
	RoomName(ctx context.Context, roomID int64) (string, error)
}

// RoomHandler handles room-related HTTP requests.
type RoomHandler struct {
	uc RoomUsecase
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(uc RoomUsecase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// List returns every room with its latest activity.
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.uc.ListRooms(c.Request.Context())
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("list rooms failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to list rooms"})
		return
	}
	out := make([]dto.RoomItem, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, dto.RoomItem{ID: r.ID, Name: r.Name, LastMessageAt: r.LastMessageAt})
	}
	c.JSON(http.StatusOK, out)
}

// Name returns the name of the room given by the :id path parameter.
func (h *RoomHandler) Name(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid room id"})
		return
	}

	name, err := h.uc.RoomName(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "room not found"})
			return
		}
		log.Ctx(c.Request.Context()).Error().Err(err).Int64("room_id", id).Msg("get room name failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "failed to get room name"})
		return
	}
	c.JSON(http.StatusOK, dto.RoomNameRes{Name: name})
}
