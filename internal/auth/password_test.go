package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/auth"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/config"
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

// fastPasswordConfig keeps argon2 cheap in tests
func fastPasswordConfig() *auth.PasswordConfig {
	return &auth.PasswordConfig{
		Memory:      constants.DevPasswordHashMemory,
		Iterations:  constants.DevPasswordHashIterations,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	cfg := fastPasswordConfig()

	hash, salt, err := auth.HashPassword("Secret123!", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, salt)
	assert.NotEqual(t, "Secret123!", hash, "stored hash must never equal the plaintext")

	ok, err := auth.VerifyPassword("Secret123!", hash, salt, cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = auth.VerifyPassword("Secret123?", hash, salt, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	cfg := fastPasswordConfig()

	hash1, salt1, err := auth.HashPassword("same-password", cfg)
	require.NoError(t, err)
	hash2, salt2, err := auth.HashPassword("same-password", cfg)
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword_BadEncoding(t *testing.T) {
	cfg := fastPasswordConfig()

	_, err := auth.VerifyPassword("pw", "%%%", "c2FsdA==", cfg)
	assert.Error(t, err)

	_, err = auth.VerifyPassword("pw", "aGFzaA==", "%%%", cfg)
	assert.Error(t, err)
}

func TestPasswordConfigFrom(t *testing.T) {
	cfg := auth.PasswordConfigFrom(config.HashSettings{Memory: 1024, Iterations: 2})

	assert.EqualValues(t, 1024, cfg.Memory)
	assert.EqualValues(t, 2, cfg.Iterations)
	assert.EqualValues(t, constants.DefaultPasswordHashParallelism, cfg.Parallelism)
	assert.EqualValues(t, constants.DefaultPasswordHashSaltLength, cfg.SaltLength)
	assert.EqualValues(t, constants.DefaultPasswordHashKeyLength, cfg.KeyLength)
}
