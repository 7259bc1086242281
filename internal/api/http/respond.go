package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail writes the error envelope. 400/403/404/500 responses additionally
// carry an error_code mirroring the HTTP status.
func Fail(c *gin.Context, status int, message string) {
	body := gin.H{"success": false, "message": message}
	switch status {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError:
		body["error_code"] = status
	}
	c.JSON(status, body)
}
