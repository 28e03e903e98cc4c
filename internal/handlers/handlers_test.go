package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/middleware"
	"github.com/example/studybud/internal/models"
	"github.com/example/studybud/pkg/session"
)

// setupTestApp builds the full route table against an in-memory SQLite
// database. Redis is absent; the session middleware treats it as optional.
func setupTestApp(t *testing.T) (*gin.Engine, *database.Database, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Topic{}, &models.Room{}, &models.Message{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db := database.NewDatabase(gdb)
	sessions := session.NewManager("test-secret", time.Hour)

	authH := NewAuthHandler(db, sessions, nil)
	roomH := NewRoomHandler(db)
	messageH := NewMessageHandler(db)
	userH := NewUserHandler(db)
	browseH := NewBrowseHandler(db)
	apiH := NewAPIHandler(db)

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.Use(middleware.LoadUser(db, sessions, nil))

	r.GET("/", roomH.Home)
	r.GET("/room/:id", roomH.Room)
	r.POST("/room/:id", middleware.RequireLogin(), roomH.PostMessage)
	r.GET("/topics-page", browseH.TopicsPage)
	r.GET("/activity-page", browseH.ActivityPage)

	r.GET("/login", authH.LoginPage)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)
	r.GET("/register", authH.RegisterPage)
	r.POST("/register", authH.Register)

	private := r.Group("/", middleware.RequireLogin())
	{
		private.GET("/create-room", roomH.CreateRoomPage)
		private.POST("/create-room", roomH.CreateRoom)
		private.GET("/update-room/:id", roomH.UpdateRoomPage)
		private.POST("/update-room/:id", roomH.UpdateRoom)
		private.GET("/delete-room/:id", roomH.DeleteRoomPage)
		private.POST("/delete-room/:id", roomH.DeleteRoom)
		private.GET("/delete-message/:id", messageH.DeleteMessagePage)
		private.POST("/delete-message/:id", messageH.DeleteMessage)
		private.GET("/user-profile/:id", userH.Profile)
		private.GET("/edit-user/:id", userH.EditUserPage)
		private.POST("/edit-user/:id", userH.EditUser)
	}

	api := r.Group("/api")
	{
		api.GET("", apiH.Routes)
		api.GET("/room", apiH.GetRooms)
		api.GET("/room/:id", apiH.GetRoom)
	}

	return r, db, sessions
}

func registerUser(t *testing.T, db *database.Database, username, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         username,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := db.SaveUser(user); err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func createRoom(t *testing.T, db *database.Database, host *models.User, topicName, name, description string) *models.Room {
	t.Helper()

	topic, _, err := db.GetOrCreateTopic(topicName)
	if err != nil {
		t.Fatalf("failed to resolve topic %q: %v", topicName, err)
	}

	room := &models.Room{
		HostID:      host.ID,
		TopicID:     topic.ID,
		Name:        name,
		Description: description,
	}
	if err := db.CreateRoom(room); err != nil {
		t.Fatalf("failed to create room %q: %v", name, err)
	}
	return room
}

func sessionCookie(t *testing.T, sessions *session.Manager, user *models.User) *http.Cookie {
	t.Helper()

	token, err := sessions.Generate(user.ID.String())
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
