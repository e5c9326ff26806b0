package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	cfg := DefaultConfig("s3cret", time.Hour)

	token, expiresAt, err := GenerateToken("admin", "sess-1", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken(token, "s3cret")
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "hazardwatch-api", claims.Issuer)
	require.Equal(t, "sess-1", claims.ID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("admin", "", DefaultConfig("one", time.Hour))
	require.NoError(t, err)

	_, err = ValidateToken(token, "two")
	require.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	cfg := DefaultConfig("s3cret", time.Hour)
	cfg.AccessExpiry = -time.Minute

	token, _, err := GenerateToken("admin", "", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "s3cret")
	require.Error(t, err)
}

func TestGenerateRequiresConfig(t *testing.T) {
	_, _, err := GenerateToken("admin", "", nil)
	require.Error(t, err)
}
