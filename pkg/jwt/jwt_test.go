package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	token, err := Generate("secreto", "user_1", "role_admin", "deposito", 5)
	require.NoError(t, err)

	claims, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "role_admin", claims.RoleID)
	assert.Equal(t, "deposito", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto", "user_1", "role_admin", "deposito", 5)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secreto", "user_1", "role_admin", "deposito", -1)
	require.NoError(t, err)

	_, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := Generate("", "user_1", "role_admin", "deposito", 5)
	assert.Error(t, err)
}
