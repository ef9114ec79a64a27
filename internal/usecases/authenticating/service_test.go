package authenticating_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgm-source/cliente-davi-gomez/internal/config"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/authenticating"
)

const testSecret = "segredo-de-teste"

func newTestService() authenticating.Authenticator {
	return authenticating.NewService(&config.Config{
		Auth: config.Auth{Secret: testSecret},
	})
}

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		AccountID:    "conta-1",
		AccountEmail: "operador@exemplo.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestValidateToken(t *testing.T) {
	service := newTestService()

	tokenString := signToken(t, testSecret, time.Now().Add(time.Hour))

	claims, err := service.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "conta-1", claims.AccountID)
	assert.Equal(t, "operador@exemplo.com", claims.AccountEmail)
}

func TestValidateTokenExpirado(t *testing.T) {
	service := newTestService()

	tokenString := signToken(t, testSecret, time.Now().Add(-time.Hour))

	_, err := service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, authenticating.ErrExpiredToken)
}

func TestValidateTokenAssinaturaInvalida(t *testing.T) {
	service := newTestService()

	tokenString := signToken(t, "outro-segredo", time.Now().Add(time.Hour))

	_, err := service.ValidateToken(tokenString)
	assert.ErrorIs(t, err, authenticating.ErrInvalidToken)
}

func TestValidateTokenMalformado(t *testing.T) {
	service := newTestService()

	_, err := service.ValidateToken("nao-é-um-jwt")
	assert.ErrorIs(t, err, authenticating.ErrInvalidToken)
}
