package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// =============================================================================
// SESSION TOKENS
// =============================================================================

// TokenManager mints and verifies the signed session tokens handed out at
// login. HS256 with a shared secret is enough for a single-binary service.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// sessionClaims extends the registered claims with the account role and
// display name.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role Role   `json:"role"`
	Name string `json:"name,omitempty"`
}

// Issue signs a token for the account with the username as subject.
func (m *TokenManager) Issue(a Account) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.Username,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: a.Role,
		Name: a.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Session is the verified identity carried on authenticated requests.
type Session struct {
	Username string
	Name     string
	Role     Role
}

// Verify parses and validates a session token.
func (m *TokenManager) Verify(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != m.issuer {
		return Session{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}
	if !claims.Role.Valid() {
		return Session{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	return Session{Username: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
