package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/interface/middleware"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/response"
	"github.com/oksasatya/medlink-api/pkg/validation"
)

// writeError renders err as the standard error envelope. Internal faults are
// logged in full; clients only see the generic message.
func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	appErr := apperror.From(err)
	if appErr.Kind == apperror.KindInternal {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.FullPath(),
			"user_id":    middleware.UserID(c),
		}).Errorf("%+v", appErr.Cause)
	}
	response.Fail(c, appErr)
}

func bindError(c *gin.Context, err error) {
	response.Fail(c, apperror.Validation("invalid payload", validation.ToDetails(err)))
}
