package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GO_ENV", "MAX_FILE_SIZE", "HUFFPACK_PROGRESS", "HUFFPACK_LOG_PREFIX"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, int64(defaultMaxFileSize), cfg.MaxFileSize)
	require.False(t, cfg.ShowProgress)
	require.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("HUFFPACK_PROGRESS", "true")
	t.Setenv("HUFFPACK_LOG_PREFIX", "test ")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.IsProduction())
	require.Equal(t, int64(1024), cfg.MaxFileSize)
	require.True(t, cfg.ShowProgress)
	require.Equal(t, "test ", cfg.LogPrefix)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("HUFFPACK_PROGRESS", "maybe")
	cfg := Load()
	require.Equal(t, int64(defaultMaxFileSize), cfg.MaxFileSize)
	require.False(t, cfg.ShowProgress)

	t.Setenv("MAX_FILE_SIZE", "-5")
	require.Equal(t, int64(defaultMaxFileSize), Load().MaxFileSize)
}
