package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// SessionCookieName is the cookie the browser client carries the session in.
const SessionCookieName = "fm_session"

// Claims are the JWT claims of a session token. The user id travels in the
// standard subject field.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionUser is the verified identity extracted from a session token.
type SessionUser struct {
	ID    int64
	Email string
	Name  string
}

// SessionManager issues and verifies session tokens. It is the identity
// provider for the ledger: everything downstream only sees the user id.
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secret),
		ttl:       ttl,
	}
}

// TTL returns the lifetime of issued tokens.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed session token for a user.
func (m *SessionManager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify validates a session token and returns the identity it carries.
func (m *SessionManager) Verify(tokenString string) (*SessionUser, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidToken
	}

	return &SessionUser{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
