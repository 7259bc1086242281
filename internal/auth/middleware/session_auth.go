package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apihttp "github.com/projectpulse/project-pulse-backend/internal/api/http"
	"github.com/projectpulse/project-pulse-backend/internal/auth"
)

// RequireSession validates the session cookie and injects the authenticated
// identity into the Gin context. Requests without an active session are
// rejected with 401 before reaching the handler.
func RequireSession(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(auth.SessionCookie)
		if err != nil || sid == "" {
			apihttp.Fail(c, http.StatusUnauthorized, "please log in first")
			c.Abort()
			return
		}

		identity, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			apihttp.Fail(c, http.StatusUnauthorized, "session expired, please log in again")
			c.Abort()
			return
		}

		c.Set(auth.CtxUsername, identity.Username)
		c.Set(auth.CtxDisplayName, identity.Name)
		c.Next()
	}
}
