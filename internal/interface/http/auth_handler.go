package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/medlink-api/internal/application"
	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/pkg/response"
)

// AuthUseCase is the part of the application layer the auth routes need.
type AuthUseCase interface {
	Signup(ctx context.Context, in application.SignupInput) (entity.Profile, error)
	Signin(ctx context.Context, in application.SigninInput) (*application.SigninResult, error)
}

type AuthHandler struct {
	Svc    AuthUseCase
	Logger logrus.FieldLogger
}

func NewAuthHandler(svc AuthUseCase, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req application.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.Svc.Signup(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(http.StatusCreated, gin.H{"user": user}, "user registered, pending approval", nil))
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req application.SigninInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Svc.Signin(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(http.StatusOK, res, "signin successful", nil))
}
