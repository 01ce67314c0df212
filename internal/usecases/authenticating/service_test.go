package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmisra/sales-dashboard-api/internal/config"
	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.Secret = "test-signing-secret"
	cfg.Auth.Username = "operator"
	cfg.Auth.PasswordHash = string(hash)
	cfg.Auth.TokenTTLHours = 1
	return cfg
}

func TestLoginAndValidateToken(t *testing.T) {
	service := NewService(testConfig(t))

	token, err := service.Login("operator", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	service := NewService(testConfig(t))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "operator", password: "wrong"},
		{name: "unknown user", username: "intruder", password: "s3cret"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_DisabledWithoutPasswordHash(t *testing.T) {
	cfg := testConfig(t)
	cfg.Auth.PasswordHash = ""

	service := NewService(cfg)

	_, err := service.Login("operator", "s3cret")

	assert.ErrorIs(t, err, ErrLoginDisabled)
}

func TestValidateToken_Invalid(t *testing.T) {
	cfg := testConfig(t)
	service := NewService(cfg)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		claims := &domain.Claims{
			Username: "operator",
			Role:     domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := &domain.Claims{
			Username: "operator",
			Role:     domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.Secret))
		require.NoError(t, err)

		_, err = service.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
