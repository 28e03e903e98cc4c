package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/models"
	"github.com/example/studybud/pkg/session"
)

const UserKey = "currentUser"

// LoadUser resolves the session cookie into a user and stores it in the
// request context. Any failure leaves the request anonymous; gating is
// RequireLogin's job. The Redis client is optional: without it revoked
// tokens are only invalidated by cookie removal.
func LoadUser(db *database.Database, sessions *session.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		if rdb != nil {
			exists, err := rdb.Exists(context.Background(), "blacklist:"+token).Result()
			if err != nil || exists > 0 {
				c.Next()
				return
			}
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := db.GetUser(claims.Subject)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(UserKey); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
