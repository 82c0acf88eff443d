package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resumer-backend/internal/delivery/http/middleware"
	"resumer-backend/internal/delivery/http/response"
	"resumer-backend/internal/domain"
	"resumer-backend/pkg/auth"
	"resumer-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

// stubAuthUC serves users from a fixed map, standing in for the credential store.
type stubAuthUC struct {
	users map[string]*domain.User
}

func (s *stubAuthUC) Signup(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthUC) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthUC) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users[id], nil
}

func newTestRouter(users map[string]*domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	tokens := auth.NewManager(testSecret)
	r := gin.New()

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(tokens, &stubAuthUC{users: users}))

	recruiterOnly := protected.Group("")
	recruiterOnly.Use(middleware.RequireRole(domain.RoleRecruiter))
	recruiterOnly.GET("/search", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", gin.H{
			"user_id": c.GetString(string(domain.KeyUserID)),
		})
	})

	return r
}

func issueToken(t *testing.T, secret string, user *domain.User) string {
	t.Helper()
	token, err := auth.NewManager(secret).Issue(user)
	assert.NoError(t, err)
	return token
}

func doSearch(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	recruiter := &domain.User{ID: "rec1", Email: "rec@example.com", Role: domain.RoleRecruiter}
	candidate := &domain.User{ID: "can1", Email: "can@example.com", Role: domain.RoleCandidate}
	router := newTestRouter(map[string]*domain.User{
		recruiter.ID: recruiter,
		candidate.ID: candidate,
	})

	t.Run("missing token is unauthenticated", func(t *testing.T) {
		w := doSearch(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is unauthenticated", func(t *testing.T) {
		w := doSearch(router, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is unauthenticated", func(t *testing.T) {
		token := issueToken(t, "other_secret", recruiter)
		w := doSearch(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is unauthenticated", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
			Role: recruiter.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   recruiter.ID,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte(testSecret))
		assert.NoError(t, err)

		w := doSearch(router, "Bearer "+tokenString)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token for a deleted account is unauthenticated", func(t *testing.T) {
		gone := &domain.User{ID: "ghost", Role: domain.RoleRecruiter}
		token := issueToken(t, testSecret, gone)
		w := doSearch(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("recruiter reaches the guarded route", func(t *testing.T) {
		token := issueToken(t, testSecret, recruiter)
		w := doSearch(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"rec1"`)
	})
}

func TestRequireRole(t *testing.T) {
	recruiter := &domain.User{ID: "rec1", Email: "rec@example.com", Role: domain.RoleRecruiter}
	candidate := &domain.User{ID: "can1", Email: "can@example.com", Role: domain.RoleCandidate}
	router := newTestRouter(map[string]*domain.User{
		recruiter.ID: recruiter,
		candidate.ID: candidate,
	})

	t.Run("authenticated candidate is forbidden, not unauthenticated", func(t *testing.T) {
		token := issueToken(t, testSecret, candidate)
		w := doSearch(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role comes from the store, not the token claim", func(t *testing.T) {
		// Token claims recruiter, but the live account is a candidate.
		impersonator := &domain.User{ID: candidate.ID, Role: domain.RoleRecruiter}
		token := issueToken(t, testSecret, impersonator)
		w := doSearch(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
