package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/response"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth requires an "Authorization: Bearer <token>" header and sets userID in
// the Gin context on success.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Fail(c, apperror.Authentication("authentication required"))
			return
		}
		uid, err := tokens.Verify(token)
		if err != nil || uid == "" {
			response.Fail(c, apperror.Authentication("invalid or expired token"))
			return
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
