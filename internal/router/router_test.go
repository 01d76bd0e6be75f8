package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/medlink-api/config"
	"github.com/oksasatya/medlink-api/internal/container"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

func newTestServer(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AppName:             "medlink-api",
		Env:                 "test",
		JWTSecret:           "test-secret",
		JWTIssuer:           "medlink-api",
		AccessTTL:           time.Hour,
		BcryptCost:          bcrypt.MinCost,
		CORSAllowedOrigins:  "http://localhost:3000",
		DebugMetricsEnabled: true,
	}
	c := container.New(cfg, helpers.NewDiscardLogger(), container.Infra{})
	return NewEngine(c), c
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func signupBody(email string) map[string]any {
	return map[string]any{
		"firstName":         "Ada",
		"lastName":          "Lovelace",
		"email":             email,
		"password":          "s3cret-pass",
		"phone":             "+44 20 7946 0000",
		"country":           "UK",
		"city":              "London",
		"bio":               "Cardiologist.",
		"specialization":    []string{"cardiology"},
		"yearsOfExperience": 12,
		"licenseNumber":     "GMC-123456",
		"licenseCountry":    "UK",
		"languages":         []string{"en"},
		"approved":          true,
	}
}

type signinData struct {
	User struct {
		ID       string `json:"id"`
		Approved bool   `json:"approved"`
	} `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func signupAndSignin(t *testing.T, r http.Handler, email string) signinData {
	t.Helper()
	w, _ := call(t, r, http.MethodPost, "/api/auth/signup", "", signupBody(email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := call(t, r, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": email, "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data signinData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func TestSignup_CreatedUnapprovedWithoutSecrets(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := call(t, r, http.MethodPost, "/api/auth/signup", "", signupBody("ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var data struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, false, data.User["approved"])
	assert.NotContains(t, data.User, "password")
	assert.NotContains(t, data.User, "passwordHash")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := call(t, r, http.MethodPost, "/api/auth/signup", "", signupBody("ada@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	body := signupBody("ADA@example.com")
	body["firstName"] = "Other"
	w, env := call(t, r, http.MethodPost, "/api/auth/signup", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user with this email already exists", env.Message)
}

func TestSignup_ValidationDetails(t *testing.T) {
	r, _ := newTestServer(t)
	body := signupBody("ada@example.com")
	delete(body, "licenseNumber")

	w, env := call(t, r, http.MethodPost, "/api/auth/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "is required", env.Error.Details["licenseNumber"])
}

func TestSignup_MultibytePasswordOverBcryptLimit(t *testing.T) {
	r, _ := newTestServer(t)
	body := signupBody("ada@example.com")
	body["password"] = strings.Repeat("€", 30)

	w, env := call(t, r, http.MethodPost, "/api/auth/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "password")
}

func TestSignup_MalformedJSON(t *testing.T) {
	r, _ := newTestServer(t)
	w, env := call(t, r, http.MethodPost, "/api/auth/signup", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid payload", env.Message)
}

func TestSignin_ErrorsAreByteIdentical(t *testing.T) {
	r, _ := newTestServer(t)
	signupAndSignin(t, r, "ada@example.com")

	wrong, _ := call(t, r, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "ada@example.com", "password": "wrong-password"})
	unknown, _ := call(t, r, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "ghost@example.com", "password": "s3cret-pass"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.Bytes(), unknown.Body.Bytes())
}

func TestSignin_MissingFields(t *testing.T) {
	r, _ := newTestServer(t)
	w, _ := call(t, r, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard(t *testing.T) {
	r, _ := newTestServer(t)
	session := signupAndSignin(t, r, "ada@example.com")

	w, _ := call(t, r, http.MethodGet, "/api/user/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = call(t, r, http.MethodGet, "/api/user/dashboard", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := call(t, r, http.MethodGet, "/api/user/dashboard", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, session.User.ID, data.User["id"])
	assert.Equal(t, "GMC-123456", data.User["licenseNumber"])
	assert.Equal(t, []any{map[string]any{"day": "mon", "from": "09:00", "to": "17:00"}}, data.User["availability"])
	assert.NotContains(t, data.User, "passwordHash")
}

func TestEdit(t *testing.T) {
	r, _ := newTestServer(t)
	me := signupAndSignin(t, r, "ada@example.com")
	other := signupAndSignin(t, r, "grace@example.com")

	t.Run("other user forbidden", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPut, "/api/user/edit/"+other.User.ID, me.Token, map[string]string{"city": "Paris"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("other user forbidden even with malformed body", func(t *testing.T) {
		w, env := call(t, r, http.MethodPut, "/api/user/edit/"+other.User.ID, me.Token, `{"yearsOfExperience":"x"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("only filtered keys", func(t *testing.T) {
		w, env := call(t, r, http.MethodPut, "/api/user/edit/"+me.User.ID, me.Token, map[string]any{"approved": true, "email": "x@y.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no valid fields to update", env.Message)
	})

	t.Run("single digit hour rejected", func(t *testing.T) {
		body := map[string]any{"availability": []map[string]string{{"day": "mon", "from": "9:00", "to": "17:00"}}}
		w, env := call(t, r, http.MethodPut, "/api/user/edit/"+me.User.ID, me.Token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error.Details, "availability[0]")
	})

	t.Run("valid update", func(t *testing.T) {
		body := map[string]any{
			"availability": []map[string]string{{"day": "mon", "from": "09:00", "to": "17:00"}},
			"city":         "Paris",
			"approved":     true,
		}
		w, env := call(t, r, http.MethodPut, "/api/user/edit/"+me.User.ID, me.Token, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var data struct {
			User map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Paris", data.User["city"])
		assert.Equal(t, false, data.User["approved"])
	})

	t.Run("requires token", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPut, "/api/user/edit/"+me.User.ID, "", map[string]string{"city": "Rome"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestChangePassword(t *testing.T) {
	r, _ := newTestServer(t)
	me := signupAndSignin(t, r, "ada@example.com")

	w, _ := call(t, r, http.MethodPut, "/api/user/password", me.Token, map[string]string{"currentPassword": "nope-nope", "newPassword": "brand-new-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = call(t, r, http.MethodPut, "/api/user/password", me.Token, map[string]string{"currentPassword": "s3cret-pass", "newPassword": "brand-new-pass"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(t, r, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "ada@example.com", "password": "brand-new-pass"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePassword_MultibyteOverBcryptLimit(t *testing.T) {
	r, _ := newTestServer(t)
	me := signupAndSignin(t, r, "ada@example.com")

	w, env := call(t, r, http.MethodPut, "/api/user/password", me.Token, map[string]string{"currentPassword": "s3cret-pass", "newPassword": strings.Repeat("€", 30)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error.Details, "newPassword")
}

func TestSearch_WithoutIndex(t *testing.T) {
	r, _ := newTestServer(t)
	me := signupAndSignin(t, r, "ada@example.com")

	w, env := call(t, r, http.MethodGet, "/api/user/search?q=cardio&size=5", me.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, string(env.Data))

	w, _ = call(t, r, http.MethodGet, "/api/user/search?size=lots", me.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndDebug(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := call(t, r, http.MethodGet, "/api/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", env.Message)

	signupAndSignin(t, r, "ada@example.com")
	w, _ = call(t, r, http.MethodGet, "/api/debug/vars", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vars map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
	assert.Contains(t, vars, "medlink")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := call(t, r, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.False(t, env.Success)
}

func TestAccessLog_OnAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := logtest.NewNullLogger()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTIssuer:          "medlink-api",
		AccessTTL:          time.Hour,
		BcryptCost:         bcrypt.MinCost,
		CORSAllowedOrigins: "http://localhost:3000",
		HTTPLogEnabled:     true,
	}
	r := NewEngine(container.New(cfg, logger, container.Infra{}))
	hook.Reset()

	w, _ := call(t, r, http.MethodGet, "/api/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var paths []any
	for _, e := range hook.AllEntries() {
		if e.Message == "request" {
			paths = append(paths, e.Data["path"])
		}
	}
	assert.Equal(t, []any{"/api/healthz"}, paths)
}
