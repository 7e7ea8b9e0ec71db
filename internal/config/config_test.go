package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "ecobin"
  password: "pw"
  database: "ecobin_test"
  ssl_mode: "disable"
smtp:
  host: "localhost"
  port: 1025
  from: "noreply@ecobin.dev"
jwt:
  secret: "test-secret-0123456789abcdef0123456789"
storage:
  upload_dir: "./uploads"
  base_url: "http://localhost:8080"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	// Points schedule defaults
	assert.Equal(t, int32(50), cfg.Points.Plastic)
	assert.Equal(t, int32(30), cfg.Points.Metal)
	assert.Equal(t, int32(20), cfg.Points.Paper)
	assert.Equal(t, int32(40), cfg.Points.Glass)
	assert.Equal(t, int32(25), cfg.Points.Organic)

	// Redemption defaults
	assert.Equal(t, 12, cfg.Redemption.CodeLength)
	assert.Equal(t, 5, cfg.Redemption.MaxCodeAttempts)
	assert.Equal(t, 3, cfg.Redemption.MaxMutationRetry)

	// Scheduler defaults
	assert.Equal(t, "0 0 1 * * *", cfg.Scheduler.ExpireRedemptions)
	assert.NotEmpty(t, cfg.Scheduler.AuditBalances)
}

func TestLoad_PointsOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig+`
points:
  plastic: 75
  metal: 10
`))
	require.NoError(t, err)

	assert.Equal(t, int32(75), cfg.Points.Plastic)
	assert.Equal(t, int32(10), cfg.Points.Metal)
	// Unset categories still default
	assert.Equal(t, int32(20), cfg.Points.Paper)
}

func TestPointsConfig_ValueFor(t *testing.T) {
	p := PointsConfig{Plastic: 50, Metal: 30, Paper: 20, Glass: 40, Organic: 25}

	assert.Equal(t, int32(50), p.ValueFor("plastic"))
	assert.Equal(t, int32(25), p.ValueFor("organic"))
	assert.Equal(t, int32(0), p.ValueFor("styrofoam"))
}

func TestLoad_RejectsShortRedemptionCode(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
redemption:
  code_length: 6
`))
	assert.Error(t, err)
}

func TestLoad_RejectsShortJWTSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "ecobin"
  database: "ecobin_test"
smtp:
  host: "localhost"
  port: 1025
jwt:
  secret: "short"
storage:
  upload_dir: "./uploads"
`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "postgres://ecobin:pw@localhost:5432/ecobin_test?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
}
