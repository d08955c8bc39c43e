package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, svc.Verify(hash, "secret123"))
	assert.False(t, svc.Verify(hash, "secret124"))
}

func TestPasswordHashIsSalted(t *testing.T) {
	svc := NewPasswordService()

	h1, err := svc.Hash("secret123")
	require.NoError(t, err)
	h2, err := svc.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
