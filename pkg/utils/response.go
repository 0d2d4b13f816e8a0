package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse writes a plain-text error body. The API keeps the original
// site's convention of terse text errors for most endpoints.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// MessageResponse writes a {"message": ...} JSON body, used by the inquiry
// endpoints which respond in JSON throughout.
func MessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
