package apperror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:         http.StatusBadRequest,
		KindDuplicateEmail:     http.StatusConflict,
		KindInvalidCredentials: http.StatusUnauthorized,
		KindAuthentication:     http.StatusUnauthorized,
		KindAuthorization:      http.StatusForbidden,
		KindNotFound:           http.StatusNotFound,
		KindInternal:           http.StatusInternalServerError,
		Kind("unknown"):        http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.HTTPStatus(), string(kind))
	}
}

func TestFrom(t *testing.T) {
	wrapped := errors.Wrap(NotFound("user not found"), "get dashboard")
	got := From(wrapped)
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "user not found", got.Message)

	plain := errors.New("connection reset")
	got = From(plain)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "internal server error", got.Message)
	assert.ErrorIs(t, got, plain)

	assert.Nil(t, From(nil))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")
	err := Internal(cause, "find user")

	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "find user")
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(errors.WithStack(DuplicateEmail()), KindDuplicateEmail))
	assert.False(t, IsKind(InvalidCredentials(), KindDuplicateEmail))
	assert.False(t, IsKind(errors.New("x"), KindInternal))
}
