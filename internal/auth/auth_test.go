package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"Plenum/internal/repo"
)

// stubRepo is an in-memory Repository covering the auth handlers.
type stubRepo struct {
	users map[string]string // login -> password hash
}

func (s *stubRepo) CreateUser(_ context.Context, login, _, passwordHash string) (int, error) {
	if s.users == nil {
		s.users = make(map[string]string)
	}
	s.users[login] = passwordHash
	return len(s.users), nil
}

func (s *stubRepo) GetByLogin(_ context.Context, login string) (int, string, error) {
	hash, ok := s.users[login]
	if !ok {
		return 0, "", nil
	}
	return 1, hash, nil
}

func (s *stubRepo) GetProfileByID(context.Context, int) (repo.Profile, error) {
	return repo.Profile{}, nil
}

func (s *stubRepo) UpdateProfile(context.Context, int, string, string) error { return nil }

func (s *stubRepo) UpdateDesignDefaults(context.Context, int, string, float64, float64) error {
	return nil
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter23")))
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)
	handler := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client IP gets its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func signedToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key")}
	var gotID int
	var gotLogin string
	handler := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotLogin, _ = UserLogin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	token := signedToken(t, env.JWTKey, jwt.MapClaims{
		"user_id": 42,
		"login":   "ada",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, gotID)
		assert.Equal(t, "ada", gotLogin)
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		bad := signedToken(t, []byte("other-key"), jwt.MapClaims{
			"user_id": 42, "login": "ada", "exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+bad)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired", func(t *testing.T) {
		stale := signedToken(t, env.JWTKey, jwt.MapClaims{
			"user_id": 42, "login": "ada", "exp": time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+stale)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing claims", func(t *testing.T) {
		anon := signedToken(t, env.JWTKey, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+anon)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func sessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == "session_token" {
			return c
		}
	}
	return nil
}

func TestRegisterIssuesSession(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key"), Repo: &stubRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"login":"ada","email":"ada@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	env.RegisterHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	cookie := sessionCookie(t, rec.Result().Cookies())
	require.NotNil(t, cookie, "register must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, cookie.Value, body["token"])

	parsed, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		return env.JWTKey, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestLoginIssuesSession(t *testing.T) {
	store := &stubRepo{}
	env := &Env{JWTKey: []byte("test-key"), Repo: store}

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), "ada", "ada@example.com", hash)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"login":"ada","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	env.LoginHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NotNil(t, sessionCookie(t, rec.Result().Cookies()))

	wrong := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"login":"ada","password":"hunter23"}`))
	rec = httptest.NewRecorder()
	env.LoginHandler(rec, wrong)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
