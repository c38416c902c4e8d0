// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/your-org/printmart/internal/config"
)

const sessionTokenType = "session"

// Claims represents the session token claims. The subject is the session id.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// SessionManager signs and validates session tokens
type SessionManager struct {
	config *config.Config
	now    func() time.Time
}

// Option configures a SessionManager
type Option func(*SessionManager)

// WithClock overrides the clock used to issue and check tokens
func WithClock(now func() time.Time) Option {
	return func(m *SessionManager) { m.now = now }
}

// NewSessionManager creates a new session token manager
func NewSessionManager(cfg *config.Config, opts ...Option) *SessionManager {
	m := &SessionManager{
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewSession generates a session id and its signed token
func (m *SessionManager) NewSession() (string, string, error) {
	sessionID := uuid.New().String()
	token, err := m.GenerateToken(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// GenerateToken signs a token for an existing session id
func (m *SessionManager) GenerateToken(sessionID string) (string, error) {
	now := m.now().UTC()

	claims := &Claims{
		TokenType: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.Session.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a session token and returns its session id
func (m *SessionManager) ValidateToken(tokenString string) (string, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ParseToken verifies a session token and returns its claims
func (m *SessionManager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Session.Secret), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.TokenType != sessionTokenType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", sessionTokenType, claims.TokenType)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	return claims, nil
}

// NeedsRefresh reports whether less than half of the token's lifetime is
// left. Refreshed tokens keep an active session alive as long as the server
// side store, which expires only after a full TTL of inactivity.
func (m *SessionManager) NeedsRefresh(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Sub(m.now()) < m.config.Session.TTL/2
}
