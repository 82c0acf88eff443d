package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resumer-backend/internal/domain"
)

// tokenTTL is the fixed validity window for issued tokens. There is no
// server-side revocation; expiry is the only termination mechanism.
const tokenTTL = 7 * 24 * time.Hour

// Claims carries the account id as the registered subject plus the role at
// issuance time. The role claim is informational only: authorization always
// re-checks the live account record.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer tokens with a server-held HMAC secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Issue produces a signed HS256 token for the account, expiring 7 days from
// the issuance instant.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	return token.SignedString(m.secret)
}

// Parse verifies the signature and expiry of a token string and returns its
// claims. Any malformed, unsigned, wrongly signed or expired token fails.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
