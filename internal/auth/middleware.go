package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookingms/booking-management-backend/internal/pkg/response"
	"github.com/bookingms/booking-management-backend/internal/user"
)

// Credential header fields presented on every request.
const (
	HeaderLoginID = "loginid"
	HeaderPasskey = "passkey"
)

// CredentialRequired is a Gin middleware that resolves the loginid/passkey
// headers against the user store and rejects the request when they do not
// match an active user.
func CredentialRequired(verifier *CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := verifier.Verify(c.Request.Context(), c.GetHeader(HeaderLoginID), c.GetHeader(HeaderPasskey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				response.ErrorResponse{Message: "internal server error"})
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorResponse{Message: "unauthorized"})
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(ctxLoginID, u.LoginID)
		c.Set(ctxRole, string(u.Role))

		c.Next()
	}
}

// AdminRequired ensures the authenticated user has the admin role.
// It MUST be used after CredentialRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorResponse{Message: "unauthorized"})
			return
		}
		c.Next()
	}
}
