package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := NewService("segredo")

	token, err := service.GenerateToken("ops@loja.com", domain.RoleOperator, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@loja.com", claims.Subject)
	assert.Equal(t, domain.RoleOperator, claims.Role)
}

func TestService_ValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) (string, *Service)
		wantErr error
	}{
		{
			name: "Token expirado",
			setup: func(t *testing.T) (string, *Service) {
				service := NewService("segredo")
				service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
				token, err := service.GenerateToken("ops", domain.RoleViewer, time.Hour)
				require.NoError(t, err)
				return token, NewService("segredo")
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "Assinado com outro segredo",
			setup: func(t *testing.T) (string, *Service) {
				token, err := NewService("outro").GenerateToken("ops", domain.RoleViewer, time.Hour)
				require.NoError(t, err)
				return token, NewService("segredo")
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "Algoritmo none é rejeitado",
			setup: func(t *testing.T) (string, *Service) {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Subject: "ops", Role: domain.RoleOperator}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return token, NewService("segredo")
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "Lixo no lugar do token",
			setup: func(t *testing.T) (string, *Service) {
				return "abc.def", NewService("segredo")
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "Sem segredo configurado",
			setup: func(t *testing.T) (string, *Service) {
				return "abc", NewService("")
			},
			wantErr: ErrMissingSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, service := tt.setup(t)

			claims, err := service.ValidateToken(token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_GenerateToken_Validation(t *testing.T) {
	service := NewService("segredo")

	_, err := service.GenerateToken("", domain.RoleOperator, time.Hour)
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = service.GenerateToken("ops", domain.Role("admin"), time.Hour)
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	assert.True(t, IsAuthorizationError(NewAuthError(ErrExpiredToken, "", "")))
}
