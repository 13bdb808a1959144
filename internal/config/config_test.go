package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DSN", "user:pass@tcp(localhost:3306)/dsofts")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 7*24*time.Hour, cfg.TokenLifetime())
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
dsn: "file-dsn"
env: production
token_ttl: 12h
`), 0o644))

	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file-dsn", cfg.DSN)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 12*time.Hour, cfg.TokenLifetime())
}

func TestLoadRequiresDSN(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestParseLifetime(t *testing.T) {
	d, err := ParseLifetime("7d")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)

	d, err = ParseLifetime("36h")
	require.NoError(t, err)
	assert.Equal(t, 36*time.Hour, d)

	d, err = ParseLifetime("1.5d")
	require.NoError(t, err)
	assert.Equal(t, 36*time.Hour, d)

	_, err = ParseLifetime("")
	assert.Error(t, err)
	_, err = ParseLifetime("-1h")
	assert.Error(t, err)
	_, err = ParseLifetime("soon")
	assert.Error(t, err)
}

func TestS3Configured(t *testing.T) {
	assert.False(t, S3Options{}.Configured())
	assert.True(t, S3Options{
		Bucket:          "images",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}.Configured())
}
