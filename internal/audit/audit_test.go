package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	key := []byte("test-key")
	logger := NewLogger(path, key)

	require.NoError(t, logger.Log("split", "prod-db", "alice", "n=5 k=3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSuffix(string(data), "\n")
	assert.True(t, Verify(line, key))
	assert.False(t, Verify(line, []byte("wrong-key")))
}

func TestVerifyRejectsTamperedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	key := []byte("k")
	logger := NewLogger(path, key)
	require.NoError(t, logger.Log("recover", "prod-db", "bob", "m=3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tampered := strings.Replace(strings.TrimSuffix(string(data), "\n"), "bob", "mallory", 1)
	assert.False(t, Verify(tampered, key))
}
