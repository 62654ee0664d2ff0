package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/blog-platform/internal/auth"
)

func TestHashAndVerify(t *testing.T) {
	h := auth.NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("strongpassword")
	require.NoError(t, err)
	require.NotEqual(t, "strongpassword", digest)

	ok, err := h.Verify("strongpassword", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrongpassword", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyCorruptDigest(t *testing.T) {
	h := auth.NewHasher(bcrypt.MinCost)

	ok, err := h.Verify("whatever", "not-a-bcrypt-digest")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestHashesAreSalted(t *testing.T) {
	h := auth.NewHasher(bcrypt.MinCost)

	first, err := h.Hash("samepassword")
	require.NoError(t, err)
	second, err := h.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestInvalidCostFallsBack(t *testing.T) {
	h := auth.NewHasher(99)

	digest, err := h.Hash("password")
	require.NoError(t, err)

	ok, err := h.Verify("password", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}
