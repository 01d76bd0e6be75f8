package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/response"
)

// Recovery turns a panic into the standard 500 body and logs the stack.
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"path":       c.Request.URL.Path,
			"panic":      recovered,
			"stack":      string(debug.Stack()),
		}).Error("panic recovered")
		response.Fail(c, apperror.Internal(errors.Errorf("panic: %v", recovered), c.Request.URL.Path))
	})
}
