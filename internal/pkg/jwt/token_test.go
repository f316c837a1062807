package jwt

import (
	"testing"
	"time"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "trucktrack",
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("owner-1", "owner", testConfig)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, testConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims["user_id"])
	assert.Equal(t, "owner", claims["role"])
	assert.Equal(t, "trucktrack", claims["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("owner-1", "owner", testConfig)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testConfig.Secret)
	assert.Error(t, err)
}
