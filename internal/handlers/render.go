package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/studybud/internal/middleware"
)

// render wraps c.HTML, injecting the current user so every template can show
// the session state. Handlers put one-shot notices under "notices".
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["user"] = user
	}
	c.HTML(status, name, data)
}

func accessDenied(c *gin.Context) {
	c.String(http.StatusForbidden, "you do not have access.")
	c.Abort()
}

func notFound(c *gin.Context, what string) {
	c.String(http.StatusNotFound, "%s not found", what)
	c.Abort()
}
