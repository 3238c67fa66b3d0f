package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "Two-Tier Web Application", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "webappdb", cfg.Database.DBName)
	assert.Equal(t, 10, cfg.Database.ConnectTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.App.InstanceID, "instance id must be generated when not configured")
}

func TestNewConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DATABASE_HOST", "db.prod.internal")
	t.Setenv("DATABASE_USER", "webapp")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_DBNAME", "proddb")
	t.Setenv("APP_INSTANCE_ID", "i-0abc123")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.prod.internal", cfg.Database.Host)
	assert.Equal(t, "webapp", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "proddb", cfg.Database.DBName)
	assert.Equal(t, "i-0abc123", cfg.App.InstanceID)
}

func TestEnvHelpers(t *testing.T) {
	dev := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{App: AppConfig{Env: "production"}}
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
