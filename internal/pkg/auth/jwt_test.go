package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/printmart/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "PrintMart"},
		Session: config.SessionConfig{
			Secret: "0123456789abcdef0123456789abcdef",
			TTL:    time.Hour,
		},
	}
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager(testConfig())

	id, token, err := m.NewSession()
	require.NoError(t, err)
	assert.Len(t, id, 36)

	got, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestValidateTokenRejects(t *testing.T) {
	cfg := testConfig()
	m := NewSessionManager(cfg)
	_, token, err := m.NewSession()
	require.NoError(t, err)

	other := testConfig()
	other.Session.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = NewSessionManager(other).ValidateToken(token)
	assert.Error(t, err, "wrong secret")

	_, err = m.ValidateToken("not-a-token")
	assert.Error(t, err)

	expired := testConfig()
	expired.Session.TTL = -time.Minute
	stale, err := NewSessionManager(expired).GenerateToken("5f0c7c4e-6b7e-4f4e-9a53-3f1a2b1c0d9e")
	require.NoError(t, err)
	_, err = m.ValidateToken(stale)
	assert.Error(t, err, "expired")

	badSubject, err := m.GenerateToken("not-a-uuid")
	require.NoError(t, err)
	_, err = m.ValidateToken(badSubject)
	assert.ErrorContains(t, err, "invalid session id")

	wrongType := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "5f0c7c4e-6b7e-4f4e-9a53-3f1a2b1c0d9e",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := wrongType.SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)
	_, err = m.ValidateToken(signed)
	assert.ErrorContains(t, err, "invalid token type")
}

func TestNeedsRefresh(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	m := NewSessionManager(cfg, WithClock(func() time.Time { return now }))

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"fresh", 0, false},
		{"under half", 20 * time.Minute, false},
		{"past half", 40 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := NewSessionManager(cfg, WithClock(func() time.Time { return now.Add(-tt.age) }))
			token, err := issuer.GenerateToken("5f0c7c4e-6b7e-4f4e-9a53-3f1a2b1c0d9e")
			require.NoError(t, err)

			claims, err := m.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.NeedsRefresh(claims))
		})
	}
}

func TestParseTokenUsesClock(t *testing.T) {
	cfg := testConfig()
	now := time.Now()
	token, err := NewSessionManager(cfg, WithClock(func() time.Time { return now })).GenerateToken("5f0c7c4e-6b7e-4f4e-9a53-3f1a2b1c0d9e")
	require.NoError(t, err)

	later := NewSessionManager(cfg, WithClock(func() time.Time { return now.Add(2 * time.Hour) }))
	_, err = later.ParseToken(token)
	assert.Error(t, err, "expired by the manager's clock")
}
