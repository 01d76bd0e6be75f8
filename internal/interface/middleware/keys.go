package middleware

import "github.com/gin-gonic/gin"

// Gin context keys set by this package.
const (
	UserIDKey    = "userID"
	RequestIDKey = "request_id"
	RealIPKey    = "real_ip"
)

const RequestIDHeader = "X-Request-ID"

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
