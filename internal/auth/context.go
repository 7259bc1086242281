package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername    = "username"
	CtxDisplayName = "display_name"
)

// Username extracts the authenticated username from the Gin context.
// This is set by the session middleware.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}

// DisplayName extracts the authenticated user's display name from the Gin
// context.
func DisplayName(c *gin.Context) string {
	return c.GetString(CtxDisplayName)
}
