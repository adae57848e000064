package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenClaims is the payload carried by a session token.
type TokenClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the stateless HS256 bearer tokens used
// for admin sessions. There is no server-side session table and no
// revocation list: a token stays valid until its expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for a verified admin.
func (m *TokenManager) Issue(admin *domain.Admin) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates the signature and expiry of a token string and returns
// its claims. Any failure, including tampering, yields
// domain.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
