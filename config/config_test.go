package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 50, cfg.HistoryPageSize)
	assert.Equal(t, "test", cfg.Environment)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/peakedge")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("HISTORY_PAGE_SIZE", "25")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/peakedge", cfg.DatabaseURL)
	assert.Equal(t, "super-secret", cfg.SessionSecret)
	assert.Equal(t, 25, cfg.HistoryPageSize)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "super-secret")

	_, err := load()
	assert.Error(t, err)
}
