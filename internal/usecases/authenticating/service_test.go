package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/expense-insights-api/internal/config"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{Enabled: true, Secret: secret}})
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newTestService("top-secret")

	token, err := service.GenerateToken("user-42", "dev@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "dev@example.com", claims.UserEmail)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService("top-secret")
	otherService := newTestService("another-secret")

	expired, err := service.GenerateToken("user-42", "", -time.Minute)
	require.NoError(t, err)

	foreign, err := otherService.GenerateToken("user-42", "", time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "vazio", token: "", want: ErrMissingToken},
		{name: "malformado", token: "not-a-jwt", want: ErrInvalidToken},
		{name: "expirado", token: expired, want: ErrInvalidToken},
		{name: "outro segredo", token: foreign, want: ErrInvalidToken},
		{name: "sem assinatura", token: unsigned, want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
