package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripturalzealous/zealous-api/pkg/util"
)

type stubAuthRepo struct {
	admins map[int]bool
}

func (s *stubAuthRepo) CreateUser(ctx context.Context, user User) (*User, error) { return nil, nil }
func (s *stubAuthRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return nil, ErrUserNotFound
}
func (s *stubAuthRepo) GetUserByID(ctx context.Context, userID int) (*User, error) {
	return nil, ErrUserNotFound
}
func (s *stubAuthRepo) IsAdmin(ctx context.Context, userID int) (bool, error) {
	isAdmin, ok := s.admins[userID]
	if !ok {
		return false, ErrUserNotFound
	}
	return isAdmin, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func bearerRequest(t *testing.T, userID int) *http.Request {
	t.Helper()
	token, err := util.GenerateJWT(userID, "jordan@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec := httptest.NewRecorder()
	AuthMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	AuthMiddleware(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotID int
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r)
		require.True(t, ok)
		gotID = id
	})

	rec := httptest.NewRecorder()
	AuthMiddleware(inner).ServeHTTP(rec, bearerRequest(t, 42))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, gotID)
}

func TestOptionalAuthMiddlewareLetsAnonymousThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var hadUser bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadUser = GetUserIDFromContext(r)
	})

	rec := httptest.NewRecorder()
	OptionalAuthMiddleware(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hadUser)

	rec = httptest.NewRecorder()
	OptionalAuthMiddleware(inner).ServeHTTP(rec, bearerRequest(t, 7))
	assert.True(t, hadUser)
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &stubAuthRepo{admins: map[int]bool{1: true, 2: false}}
	handler := AuthMiddleware(AdminMiddleware(repo)(okHandler()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, 1))
	assert.Equal(t, http.StatusOK, rec.Code, "admin passes")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, 2))
	assert.Equal(t, http.StatusForbidden, rec.Code, "non-admin is denied")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, 3))
	assert.Equal(t, http.StatusForbidden, rec.Code, "unknown user is denied")
}
