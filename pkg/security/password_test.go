package security_test

import (
	"strings"
	"testing"

	"github.com/openmarket-kr/openmarket-backend/pkg/config"
	"github.com/openmarket-kr/openmarket-backend/pkg/security"
	"github.com/stretchr/testify/require"
)

func lightParams() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashRoundTrip(t *testing.T) {
	hash, err := security.HashPassword("passw0rd123", lightParams())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "unexpected format: %q", hash)

	ok, err := security.VerifyPassword("passw0rd123", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = security.VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashesAreSalted(t *testing.T) {
	first, err := security.HashPassword("passw0rd123", lightParams())
	require.NoError(t, err)
	second, err := security.HashPassword("passw0rd123", lightParams())
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA",
	} {
		_, err := security.VerifyPassword("irrelevant", encoded)
		require.ErrorIs(t, err, security.ErrInvalidHash, "encoded=%q", encoded)
	}
}

func TestEmptyPasswordRejected(t *testing.T) {
	_, err := security.HashPassword("", lightParams())
	require.Error(t, err)
}
