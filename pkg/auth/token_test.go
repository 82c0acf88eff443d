package auth_test

import (
	"testing"
	"time"

	"resumer-backend/internal/domain"
	"resumer-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := auth.NewManager("secret")
	user := &domain.User{ID: "u1", Role: domain.RoleRecruiter}

	token, err := m.Issue(user)
	assert.NoError(t, err)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, domain.RoleRecruiter, claims.Role)

	// Expiry sits seven days out from issuance.
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewManager("secret-a").Issue(&domain.User{ID: "u1", Role: domain.RoleCandidate})
	assert.NoError(t, err)

	_, err = auth.NewManager("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Role: domain.RoleCandidate,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenString, err := expired.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = auth.NewManager("secret").Parse(tokenString)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := auth.NewManager("secret").Parse("definitely.not.jwt")
	assert.Error(t, err)
}
