package auth

import "github.com/gin-gonic/gin"

const (
	ctxLoginID = "loginID"
	ctxRole    = "userRole"
)

// GetLoginID returns the authenticated user's login identifier or empty string.
func GetLoginID(c *gin.Context) string {
	if v, ok := c.Get(ctxLoginID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetRole returns the authenticated user's role or empty string.
func GetRole(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
