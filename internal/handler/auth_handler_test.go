package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"job-tracker/internal/config"
	"job-tracker/internal/handler"
	"job-tracker/internal/middleware"
	"job-tracker/internal/model"
	"job-tracker/internal/repository"
	"job-tracker/internal/router"
	"job-tracker/internal/service"
	"job-tracker/internal/session"
	"job-tracker/internal/token"
)

// stubHealth stands in for the database pool behind the health route.
type stubHealth struct {
	err error
}

func (s *stubHealth) Health(context.Context) error { return s.err }

type testServer struct {
	handler http.Handler
	tokens  *token.Service
	users   *repository.MockUserRepository
	apps    *repository.MockApplicationRepository
	health  *stubHealth
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "5000",
		RequestTimeout:   5 * time.Second,
		Environment:      "development",
		DatabaseURL:      "postgres://unused",
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		CookieName:       "jwt",
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	require.NoError(t, cfg.Validate())

	users := new(repository.MockUserRepository)
	apps := new(repository.MockApplicationRepository)
	health := &stubHealth{}

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)
	cookie := session.NewCookie(cfg.CookieName, tokens.TTL(), cfg.IsProduction())
	gate := middleware.NewAuth(tokens, users, cookie)

	h := router.New(cfg, health, gate,
		handler.NewAuthHandler(service.NewAuthService(users), tokens, cookie),
		handler.NewApplicationHandler(service.NewApplicationService(apps)))

	return &testServer{handler: h, tokens: tokens, users: users, apps: apps, health: health}
}

func (s *testServer) do(t *testing.T, method string, path string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		r.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, r)
	return rec
}

// sessionCookie mints a valid session cookie for an already-known user.
func (s *testServer) sessionCookie(t *testing.T, principalID string) *http.Cookie {
	t.Helper()
	raw, err := s.tokens.Issue(principalID)
	require.NoError(t, err)
	return &http.Cookie{Name: "jwt", Value: raw}
}

func jwtCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterThenMe(t *testing.T) {
	srv := newTestServer(t)

	var created model.User
	srv.users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(model.User{}, model.ErrUserNotFound)
	srv.users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.User) }).
		Return(nil)

	rec := srv.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := jwtCookie(t, rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The fresh cookie immediately authenticates a get-principal call.
	srv.users.On("FindByID", mock.Anything, created.ID).Return(created, nil)

	rec = srv.do(t, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "a@x.com", body["user"].(map[string]any)["email"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	srv.users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: "existing", Email: "a@x.com"}, nil)

	rec := srv.do(t, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already registered", body["message"])
	assert.Nil(t, jwtCookie(t, rec))
}

func TestRegisterMissingFields(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/register", `{"name":"A"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide name, email, and password", decodeBody(t, rec)["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	srv.users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	rec := srv.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["message"])
	assert.Nil(t, jwtCookie(t, rec), "no session cookie on failed login")
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	srv := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	srv.users.On("FindByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}, nil)

	rec := srv.do(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := jwtCookie(t, rec)
	require.NotNil(t, cookie)

	// The cookie value is a verifiable token for the principal.
	id, err := srv.tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestLogoutClearsCookie(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := jwtCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	// Idempotent: a second logout behaves identically.
	rec = srv.do(t, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMeWithoutCookie(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized: no token provided", decodeBody(t, rec)["message"])
}
