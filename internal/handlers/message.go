package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/middleware"
)

type MessageHandler struct {
	db *database.Database
}

func NewMessageHandler(db *database.Database) *MessageHandler {
	return &MessageHandler{db: db}
}

// DeleteMessagePage shows the confirmation page. Only the author gets this
// far.
func (h *MessageHandler) DeleteMessagePage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		notFound(c, "message")
		return
	}

	if message.UserID != user.ID {
		accessDenied(c)
		return
	}

	render(c, http.StatusOK, "delete.html", gin.H{"obj": message.Body})
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	message, err := h.db.GetMessage(c.Param("id"))
	if err != nil {
		notFound(c, "message")
		return
	}

	if message.UserID != user.ID {
		accessDenied(c)
		return
	}

	if err := h.db.DeleteMessage(message.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "could not delete message")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
