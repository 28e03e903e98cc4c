package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/database"
)

type BrowseHandler struct {
	db *database.Database
}

func NewBrowseHandler(db *database.Database) *BrowseHandler {
	return &BrowseHandler{db: db}
}

// TopicsPage lists topics matching q plus the count of rooms under them.
func (h *BrowseHandler) TopicsPage(c *gin.Context) {
	q := c.Query("q")

	topics, err := h.db.SearchTopics(q)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load topics")
		return
	}

	roomCount, err := h.db.CountRoomsByTopic(q)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not count rooms")
		return
	}

	render(c, http.StatusOK, "topics.html", gin.H{
		"topics":    topics,
		"roomCount": roomCount,
	})
}

// ActivityPage lists messages from rooms whose name matches q.
func (h *BrowseHandler) ActivityPage(c *gin.Context) {
	q := c.Query("q")

	messages, err := h.db.SearchMessagesByRoomName(q)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load activity")
		return
	}

	render(c, http.StatusOK, "activity.html", gin.H{"roomMessages": messages})
}
