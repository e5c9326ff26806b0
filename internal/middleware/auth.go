package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/pkg/jwt"
	"github.com/xyz-asif/hazardwatch/internal/pkg/response"
)

// SessionValidator reports whether a token's session is still live.
type SessionValidator interface {
	Valid(sessionID string) bool
}

// RequireAdmin accepts a bearer token signed with jwtSecret whose session is
// still the gate's current one. Logging out invalidates every earlier token.
func RequireAdmin(sessions SessionValidator, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(fields[1], jwtSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		if !sessions.Valid(claims.ID) {
			response.Unauthorized(c, "Session has ended", "SESSION_ENDED")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
