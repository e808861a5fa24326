package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, Verify("Password123!", hash))
	assert.False(t, Verify("Password124!", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("Password123!")
	require.NoError(t, err)
	second, err := Hash("Password123!")
	require.NoError(t, err)

	// hashes never repeat, so equality checks must go through Verify
	assert.NotEqual(t, first, second)
	assert.True(t, Verify("Password123!", first))
	assert.True(t, Verify("Password123!", second))
}
