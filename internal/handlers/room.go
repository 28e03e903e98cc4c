package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers/dto"
	"github.com/example/studybud/internal/middleware"
	"github.com/example/studybud/internal/models"
)

type RoomHandler struct {
	db *database.Database
}

func NewRoomHandler(db *database.Database) *RoomHandler {
	return &RoomHandler{db: db}
}

// Home lists rooms matching the q search, the first five topics, and the
// activity feed of messages in matching topics.
func (h *RoomHandler) Home(c *gin.Context) {
	q := c.Query("q")

	rooms, err := h.db.SearchRooms(q)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load rooms")
		return
	}

	topics, err := h.db.ListTopics(5)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load topics")
		return
	}

	feed, err := h.db.SearchMessagesByRoomTopic(q)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load activity")
		return
	}

	render(c, http.StatusOK, "home.html", gin.H{
		"rooms":        rooms,
		"topics":       topics,
		"roomCount":    len(rooms),
		"roomMessages": feed,
	})
}

// Room shows a single room with its conversation, oldest message first.
func (h *RoomHandler) Room(c *gin.Context) {
	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	messages, err := h.db.GetRoomMessages(room.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load messages")
		return
	}

	render(c, http.StatusOK, "room.html", gin.H{
		"room":         room,
		"roomMessages": messages,
		"participants": room.Participants,
	})
}

// PostMessage appends a message to the room and records the author as a
// participant, then redirects back so a refresh cannot resubmit the form.
func (h *RoomHandler) PostMessage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	var form dto.MessageForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/room/"+room.ID.String())
		return
	}

	message := &models.Message{
		RoomID:    room.ID,
		UserID:    user.ID,
		Body:      form.Body,
		CreatedAt: time.Now(),
	}
	if err := h.db.SaveMessage(message); err != nil {
		c.String(http.StatusInternalServerError, "could not save message")
		return
	}

	if err := h.db.AddParticipant(room.ID.String(), user.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "could not join room")
		return
	}

	c.Redirect(http.StatusFound, "/room/"+room.ID.String())
}

func (h *RoomHandler) CreateRoomPage(c *gin.Context) {
	topics, err := h.db.ListTopics(0)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load topics")
		return
	}
	render(c, http.StatusOK, "room_form.html", gin.H{"topics": topics})
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var form dto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		h.roomFormFailed(c, nil)
		return
	}

	topic, _, err := h.db.GetOrCreateTopic(form.Topic)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not resolve topic")
		return
	}

	room := &models.Room{
		HostID:      user.ID,
		TopicID:     topic.ID,
		Name:        form.Name,
		Description: form.Description,
	}
	if err := h.db.CreateRoom(room); err != nil {
		c.String(http.StatusInternalServerError, "could not create room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *RoomHandler) UpdateRoomPage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	if room.HostID != user.ID {
		accessDenied(c)
		return
	}

	topics, err := h.db.ListTopics(0)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load topics")
		return
	}

	render(c, http.StatusOK, "room_form.html", gin.H{"room": room, "topics": topics})
}

func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	if room.HostID != user.ID {
		accessDenied(c)
		return
	}

	var form dto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		h.roomFormFailed(c, room)
		return
	}

	topic, _, err := h.db.GetOrCreateTopic(form.Topic)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not resolve topic")
		return
	}

	room.TopicID = topic.ID
	room.Topic = *topic
	room.Name = form.Name
	room.Description = form.Description

	if err := h.db.UpdateRoom(room); err != nil {
		c.String(http.StatusInternalServerError, "could not update room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *RoomHandler) roomFormFailed(c *gin.Context, room *models.Room) {
	topics, _ := h.db.ListTopics(0)
	data := gin.H{
		"topics":  topics,
		"notices": []string{"Please fill in the topic and room name."},
	}
	if room != nil {
		data["room"] = room
	}
	render(c, http.StatusOK, "room_form.html", data)
}

func (h *RoomHandler) DeleteRoomPage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	if room.HostID != user.ID {
		accessDenied(c)
		return
	}

	render(c, http.StatusOK, "delete.html", gin.H{"obj": room.Name})
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	room, err := h.db.GetRoom(c.Param("id"))
	if err != nil {
		notFound(c, "room")
		return
	}

	if room.HostID != user.ID {
		accessDenied(c)
		return
	}

	if err := h.db.DeleteRoom(room.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "could not delete room")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
