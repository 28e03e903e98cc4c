package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers/dto"
	"github.com/example/studybud/internal/middleware"
	"github.com/example/studybud/internal/models"
	"github.com/example/studybud/pkg/session"
)

type AuthHandler struct {
	db       *database.Database
	sessions *session.Manager
	redis    *redis.Client
}

func NewAuthHandler(db *database.Database, sessions *session.Manager, rdb *redis.Client) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions, redis: rdb}
}

// LoginPage shows the login form. Authenticated visitors are sent home.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login_register.html", gin.H{"page": "login"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.loginFailed(c, "email or password incorrect.")
		return
	}

	user, err := h.db.FindUserByEmail(strings.ToLower(form.Email))
	if err != nil {
		// A miss stops here; there is no account to verify against.
		h.loginFailed(c, "User does not exist.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		h.loginFailed(c, "email or password incorrect.")
		return
	}

	if err := h.startSession(c, user.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "could not start session")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) loginFailed(c *gin.Context, notice string) {
	render(c, http.StatusOK, "login_register.html", gin.H{
		"page":    "login",
		"notices": []string{notice},
	})
}

// Logout revokes the session token until its natural expiry and clears the
// cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" && h.redis != nil {
		if exp, err := h.sessions.Expiry(token); err == nil {
			h.redis.Set(context.Background(), "blacklist:"+token, 1, time.Until(exp))
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login_register.html", gin.H{"page": "register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.registerFailed(c)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "cannot hash password")
		return
	}

	user := &models.User{
		Name:         form.Name,
		Username:     strings.ToLower(form.Username),
		Email:        strings.ToLower(form.Email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := h.db.SaveUser(user); err != nil {
		// Almost always a unique violation on username or email.
		h.registerFailed(c)
		return
	}

	if err := h.startSession(c, user.ID.String()); err != nil {
		c.String(http.StatusInternalServerError, "could not start session")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) registerFailed(c *gin.Context) {
	render(c, http.StatusOK, "login_register.html", gin.H{
		"page":    "register",
		"notices": []string{"An error occurred during registration."},
	})
}

func (h *AuthHandler) startSession(c *gin.Context, userID string) error {
	token, err := h.sessions.Generate(userID)
	if err != nil {
		return err
	}
	c.SetCookie(session.CookieName, token, h.sessions.MaxAge(), "/", "", false, true)
	return nil
}
