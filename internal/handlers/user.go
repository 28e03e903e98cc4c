package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers/dto"
	"github.com/example/studybud/internal/middleware"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// Profile shows a user's rooms and message history alongside the full topic
// list and the total room count.
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.db.GetUser(c.Param("id"))
	if err != nil {
		notFound(c, "user")
		return
	}

	rooms, err := h.db.GetUserRooms(profile.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load rooms")
		return
	}

	messages, err := h.db.GetUserMessages(profile.ID.String())
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load messages")
		return
	}

	topics, err := h.db.ListTopics(0)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load topics")
		return
	}

	roomCount, err := h.db.CountRooms()
	if err != nil {
		c.String(http.StatusInternalServerError, "could not count rooms")
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"profile":      profile,
		"rooms":        rooms,
		"roomMessages": messages,
		"topics":       topics,
		"roomCount":    roomCount,
	})
}

// EditUserPage pre-fills the profile form. Users can only edit themselves.
func (h *UserHandler) EditUserPage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if c.Param("id") != user.ID.String() {
		accessDenied(c)
		return
	}

	render(c, http.StatusOK, "edit-user.html", gin.H{"profile": user})
}

func (h *UserHandler) EditUser(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if c.Param("id") != user.ID.String() {
		accessDenied(c)
		return
	}

	var form dto.UserForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "edit-user.html", gin.H{
			"profile": user,
			"notices": []string{"Please fill in name, username and a valid email."},
		})
		return
	}

	user.Name = form.Name
	user.Username = strings.ToLower(form.Username)
	user.Email = strings.ToLower(form.Email)
	user.Bio = form.Bio
	user.AvatarURL = form.AvatarURL

	if err := h.db.UpdateUser(user); err != nil {
		render(c, http.StatusOK, "edit-user.html", gin.H{
			"profile": user,
			"notices": []string{"Could not update the profile."},
		})
		return
	}

	c.Redirect(http.StatusFound, "/user-profile/"+user.ID.String())
}
