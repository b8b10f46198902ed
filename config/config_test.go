package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, "testnet", cfg.Network)
	assert.NotEmpty(t, cfg.StoreDSN)
	assert.NotEmpty(t, cfg.LedgerGRPCURLs)
	assert.Equal(t, 10, cfg.PollIntervalSeconds)
	require.NotEmpty(t, cfg.Chains)
	for _, c := range cfg.Chains {
		assert.NotZero(t, c.ChainID)
		assert.NotEmpty(t, c.ContractAddress)
		assert.NotZero(t, c.BatchSize)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err, "an explicit path must never fall back to defaults")
	assert.Nil(t, cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"network": "mainnet",
		"store_dsn": "postgres://localhost/intentsync",
		"chains": [{"chain_id": 1, "contract_address": "0xabc"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mainnet", cfg.Network)
	assert.Equal(t, "postgres://localhost/intentsync", cfg.StoreDSN)
	// Unset knobs take defaults.
	assert.Equal(t, 10, cfg.PollIntervalSeconds)
	assert.Equal(t, uint64(50), cfg.BackfillPageSize)
	require.Len(t, cfg.Chains, 1)
	assert.Equal(t, uint64(2000), cfg.Chains[0].BatchSize)
}

func TestValidateRejectsBadValues(t *testing.T) {
	err := validateConfig(&Config{LogLevel: 9})
	assert.Error(t, err)

	err = validateConfig(&Config{LogFormat: "xml"})
	assert.Error(t, err)

	err = validateConfig(&Config{Chains: []ChainConfig{{ChainID: 0}}})
	assert.Error(t, err)

	err = validateConfig(&Config{Chains: []ChainConfig{{ChainID: 1}}})
	assert.Error(t, err, "contract address is required")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INTENTSYNC_NETWORK", "devnet")
	t.Setenv("INTENTSYNC_STORE_DSN", "override.db")
	t.Setenv("INTENTSYNC_LEDGER_GRPC_URLS", "a:9090, b:9090")
	t.Setenv("INTENTSYNC_POLL_INTERVAL", "30")
	t.Setenv("INTENTSYNC_RPC_11155111", "https://rpc.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "devnet", cfg.Network)
	assert.Equal(t, "override.db", cfg.StoreDSN)
	assert.Equal(t, []string{"a:9090", "b:9090"}, cfg.LedgerGRPCURLs)
	assert.Equal(t, 30, cfg.PollIntervalSeconds)

	for _, c := range cfg.Chains {
		if c.ChainID == 11155111 {
			assert.Equal(t, "https://rpc.example.com", c.RPCURL)
		}
	}
}
