package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/medlink-api/pkg/apperror"
)

// APIResponse is the envelope for every JSON body. The request id is sent in
// the X-Request-ID header so identical failures produce identical bodies.
type APIResponse[T any] struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    T           `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func Success[T any](status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

func Error[T any](status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:  status,
		Success: false,
		Message: message,
		Error:   err,
	}
}

// JSON writes resp with its own status code.
func JSON[T any](c *gin.Context, resp APIResponse[T]) {
	c.JSON(resp.Status, resp)
}

// Abort writes resp and stops the handler chain.
func Abort[T any](c *gin.Context, resp APIResponse[T]) {
	c.AbortWithStatusJSON(resp.Status, resp)
}

// ErrorBody is the error field of a failed response.
type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Fail aborts the request with the status, message and code carried by err.
func Fail(c *gin.Context, err *apperror.Error) {
	Abort(c, Error[any](err.Kind.HTTPStatus(), err.Message, ErrorBody{Code: string(err.Kind), Details: err.Details}))
}
