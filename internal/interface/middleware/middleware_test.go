package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, error) {
	if uid, ok := s[token]; ok {
		return uid, nil
	}
	return "", errors.New("bad token")
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })
	return r
}

func do(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newEngine(Auth(stubVerifier{"good": "user-1"}))

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "authentication required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "authentication required"},
		{"empty token", "Bearer   ", http.StatusUnauthorized, "authentication required"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "invalid or expired token"},
		{"valid", "Bearer good", http.StatusOK, "user-1"},
		{"scheme case-insensitive", "bearer good", http.StatusOK, "user-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.header != "" {
				headers["Authorization"] = tc.header
			}
			w := do(r, "/me", headers)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	w := do(r, "/me", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	incoming := "0b6b7c4e-0f1c-4f5e-9b57-3c1f7f4b5e21"
	w = do(r, "/me", map[string]string{RequestIDHeader: incoming})
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = do(r, "/me", map[string]string{RequestIDHeader: "<script>"})
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	r := newEngine(RequestIDMiddleware(), Recovery(logger))

	w := do(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["message"])
	assert.Contains(t, buf.String(), "kaboom")
}

func TestRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RealIP())
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, ClientIP(c)) })

	w := do(r, "/ip", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
	assert.Equal(t, "203.0.113.7", w.Body.String())

	w = do(r, "/ip", map[string]string{"CF-Connecting-IP": "198.51.100.2", "X-Forwarded-For": "203.0.113.7"})
	assert.Equal(t, "198.51.100.2", w.Body.String())
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	r := newEngine(RequestIDMiddleware(), AccessLog(logger), Auth(stubVerifier{}))

	do(r, "/me", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.EqualValues(t, http.StatusUnauthorized, entry["status"])
	assert.Equal(t, "/me", entry["path"])
	assert.NotEmpty(t, entry["request_id"])
}
