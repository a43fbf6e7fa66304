package config_test

import (
	"os"
	"testing"

	"github.com/cleansweep/cleansweep/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "cleansweep", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.VERSION, cfg.Version)
}

func TestLoadWithOptions_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "cleansweep_test")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := config.LoadWithOptions(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cleansweep_test", cfg.Database.DBName)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithOptions_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "99999")

	_, err := config.LoadWithOptions(config.LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DB_PORT")
}

func TestLoadWithOptions_MissingEnvFileIsFine(t *testing.T) {
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoFileExists(t, dir+"/.env.does-not-exist")

	_, err = config.LoadWithOptions(config.LoadOptions{EnvFile: ".env.does-not-exist"})
	require.NoError(t, err)
}
