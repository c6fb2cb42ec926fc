package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FINANCE_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("FINANCE_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINANCE_TEST_UNSET_VALUE", "fallback"))
}

func TestFindEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	assert.Equal(t, "", FindEnvFile())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1\n"), 0600))
	assert.Equal(t, ".env", FindEnvFile())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FINANCE_ENV_NEW=fromfile\nFINANCE_ENV_KEPT=fromfile\n"), 0600))
	t.Setenv("FINANCE_ENV_KEPT", "fromenv")
	t.Setenv("FINANCE_ENV_NEW", "")
	require.NoError(t, os.Unsetenv("FINANCE_ENV_NEW"))
	t.Cleanup(func() { _ = os.Unsetenv("FINANCE_ENV_NEW") })

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "fromfile", os.Getenv("FINANCE_ENV_NEW"))
	assert.Equal(t, "fromenv", os.Getenv("FINANCE_ENV_KEPT"))
}
