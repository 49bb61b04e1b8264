package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	err = VerifyPassword("wrong password", hash)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRoleGates(t *testing.T) {
	assert.True(t, CanSplit([]string{RoleAdmin}))
	assert.True(t, CanSplit([]string{RoleUser}))
	assert.False(t, CanSplit([]string{"guest"}))
	assert.True(t, CanRecover([]string{RoleUser}))
}
