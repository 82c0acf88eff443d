package middleware

import (
	"context"
	"net/http"
	"strings"

	"resumer-backend/internal/delivery/http/response"
	"resumer-backend/internal/domain"
	"resumer-backend/pkg/auth"
	"resumer-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller's identity from a bearer token.
// The token only locates the subject; role and the account itself are
// re-read from the database on every request so role changes or account
// deletion take effect without waiting for token expiry.
func AuthMiddleware(tokens *auth.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Missing access token", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to resolve user", nil)
			c.Abort()
			return
		}
		if user == nil {
			// Valid token but the subject is gone: treat as unauthenticated.
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// The usecases read identity from the request context with typed
		// keys, so mirror it there too.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route group to accounts with the given role.
// Missing identity is unauthenticated; a role mismatch is forbidden -
// the two rejections are deliberately distinct.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get(string(domain.KeyUserRole))
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}
		if current != role {
			response.Error(c, http.StatusForbidden, "Forbidden for this role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
