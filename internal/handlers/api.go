package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers/dto"
	"github.com/example/studybud/internal/models"
)

// APIHandler serves the read-only JSON mirror of the room listing.
type APIHandler struct {
	db *database.Database
}

func NewAPIHandler(db *database.Database) *APIHandler {
	return &APIHandler{db: db}
}

func (h *APIHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, []string{
		"GET /api",
		"GET /api/room",
		"GET /api/room/:id",
	})
}

func (h *APIHandler) GetRooms(c *gin.Context) {
	rooms, err := h.db.SearchRooms("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rooms"})
		return
	}

	response := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		response[i] = formatRoomResponse(&rooms[i])
	}

	c.JSON(http.StatusOK, response)
}

func (h *APIHandler) GetRoom(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room))
}

func formatRoomResponse(room *models.Room) dto.RoomResponse {
	participants := make([]dto.UserSummary, len(room.Participants))
	for i, p := range room.Participants {
		participants[i] = formatUserSummary(&p)
	}

	return dto.RoomResponse{
		ID:           room.ID,
		Host:         formatUserSummary(&room.Host),
		Topic:        room.Topic.Name,
		Name:         room.Name,
		Description:  room.Description,
		Participants: participants,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

func formatUserSummary(user *models.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}
