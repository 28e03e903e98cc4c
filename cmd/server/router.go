package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers"
	"github.com/example/studybud/internal/middleware"
	"github.com/example/studybud/pkg/session"
)

type routeDeps struct {
	db       *database.Database
	sessions *session.Manager
	redis    *redis.Client

	auth     *handlers.AuthHandler
	rooms    *handlers.RoomHandler
	messages *handlers.MessageHandler
	users    *handlers.UserHandler
	browse   *handlers.BrowseHandler
	api      *handlers.APIHandler
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.Use(middleware.LoadUser(d.db, d.sessions, d.redis))

	// Public pages
	r.GET("/", d.rooms.Home)
	r.GET("/room/:id", d.rooms.Room)
	r.POST("/room/:id", middleware.RequireLogin(), d.rooms.PostMessage)
	r.GET("/topics-page", d.browse.TopicsPage)
	r.GET("/activity-page", d.browse.ActivityPage)

	// Session lifecycle
	r.GET("/login", d.auth.LoginPage)
	r.POST("/login", d.auth.Login)
	r.GET("/logout", d.auth.Logout)
	r.GET("/register", d.auth.RegisterPage)
	r.POST("/register", d.auth.Register)

	// Login-gated pages
	private := r.Group("/", middleware.RequireLogin())
	{
		private.GET("/create-room", d.rooms.CreateRoomPage)
		private.POST("/create-room", d.rooms.CreateRoom)
		private.GET("/update-room/:id", d.rooms.UpdateRoomPage)
		private.POST("/update-room/:id", d.rooms.UpdateRoom)
		private.GET("/delete-room/:id", d.rooms.DeleteRoomPage)
		private.POST("/delete-room/:id", d.rooms.DeleteRoom)
		private.GET("/delete-message/:id", d.messages.DeleteMessagePage)
		private.POST("/delete-message/:id", d.messages.DeleteMessage)
		private.GET("/user-profile/:id", d.users.Profile)
		private.GET("/edit-user/:id", d.users.EditUserPage)
		private.POST("/edit-user/:id", d.users.EditUser)
	}

	// Read-only JSON mirror
	api := r.Group("/api")
	{
		api.GET("", d.api.Routes)
		api.GET("/room", d.api.GetRooms)
		api.GET("/room/:id", d.api.GetRoom)
	}
}
