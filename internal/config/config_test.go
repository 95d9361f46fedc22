package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "hunter2")

	path := filepath.Join(t.TempDir(), "config.test.yaml")
	content := `
app:
  env: test
  port: 9090
database:
  host: db.internal
  port: 3306
  user: studioflow
  password: ${TEST_DB_PASSWORD}
  name: studioflow
jwt:
  secret: s3cret
  expiry: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry.Std())
	assert.Contains(t, cfg.DSN(), "studioflow:hunter2@tcp(db.internal:3306)/studioflow?")
}

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  env: test\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry.Std())
	assert.Equal(t, 10, cfg.Redis.PoolSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("configs/config.nope.yaml")
	assert.Error(t, err)
}
