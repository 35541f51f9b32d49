package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalYAML = `
chain:
  loan_contract: "0xd880112AeC1307eBE2886e4fB0daec82564f3a65"
  token_address: "0x637A1259C6afd7E3AdF63993cA7E58BB438aB1B1"
`

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, minimalYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8799, cfg.Server.Port)
	assert.Equal(t, uint64(421614), cfg.Chain.ChainID)
	assert.Equal(t, 30*time.Second, cfg.Monitor.PollInterval)
	assert.Equal(t, 15, cfg.Monitor.ConfirmAttempts)
	assert.Equal(t, time.Second, cfg.Monitor.ConfirmInterval)
	assert.Equal(t, "noop", cfg.Device.Backend)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfigFile(t, minimalYAML+`
monitor:
  poll_interval: 10s
  confirm_attempts: 5
device:
  backend: exec
  pin_cmd: "kioskctl pin"
log:
  level: debug
  pretty: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Monitor.PollInterval)
	assert.Equal(t, 5, cfg.Monitor.ConfirmAttempts)
	assert.Equal(t, "exec", cfg.Device.Backend)
	assert.Equal(t, "kioskctl pin", cfg.Device.PinCmd)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, minimalYAML)
	t.Setenv("LEA_CHAIN_RPC_URL", "http://localhost:8545")
	t.Setenv("LEA_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_MissingContractAddresses(t *testing.T) {
	path := writeConfigFile(t, `
chain:
  loan_contract: ""
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan_contract")
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	path := writeConfigFile(t, minimalYAML+`
monitor:
  poll_interval: 0s
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "agent", Password: "pw",
		DBName: "enforcement", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://agent:pw@db:5433/enforcement?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
