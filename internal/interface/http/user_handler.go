package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/application"
	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/interface/middleware"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/response"
)

// ProfileUseCase is the part of the application layer the user routes need.
type ProfileUseCase interface {
	GetDashboard(ctx context.Context, authUserID string) (entity.Profile, error)
	EditUser(ctx context.Context, authUserID, targetUserID string, in application.EditInput) (entity.Profile, error)
	ChangePassword(ctx context.Context, authUserID string, in application.ChangePasswordInput) error
	Search(ctx context.Context, in application.SearchInput) ([]entity.DirectoryEntry, error)
}

type UserHandler struct {
	Svc    ProfileUseCase
	Logger logrus.FieldLogger
}

func NewUserHandler(svc ProfileUseCase, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	p, err := h.Svc.GetDashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(http.StatusOK, gin.H{"user": p}, "dashboard", nil))
}

// Edit checks ownership before reading the body, so a foreign target is
// refused whatever the payload looks like.
func (h *UserHandler) Edit(c *gin.Context) {
	authID, targetID := middleware.UserID(c), c.Param("userId")
	if targetID != authID {
		writeError(c, h.Logger, apperror.Authorization("you can only edit your own profile"))
		return
	}
	var req application.EditInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p, err := h.Svc.EditUser(c.Request.Context(), authID, targetID, req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(http.StatusOK, gin.H{"user": p}, "profile updated", nil))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req application.ChangePasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Svc.ChangePassword(c.Request.Context(), middleware.UserID(c), req); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success[any](http.StatusOK, nil, "password updated", nil))
}

type searchQuery struct {
	Q            string `form:"q"`
	Size         int    `form:"size"`
	ApprovedOnly bool   `form:"approvedOnly"`
}

func (h *UserHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	results, err := h.Svc.Search(c.Request.Context(), application.SearchInput{Query: q.Q, Size: q.Size, ApprovedOnly: q.ApprovedOnly})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(http.StatusOK, gin.H{"results": results}, "search results", gin.H{"count": len(results)}))
}
