package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	if cfg.LogLevel < -1 || cfg.LogLevel > 5 {
		return fmt.Errorf("log level must be between -1 and 5")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	if cfg.Network == "" {
		cfg.Network = "testnet"
	}

	if len(cfg.LedgerGRPCURLs) == 0 {
		cfg.LedgerGRPCURLs = []string{"localhost:9090"}
	}

	if cfg.PollIntervalSeconds == 0 {
		cfg.PollIntervalSeconds = 10
	}
	if cfg.BackfillPageSize == 0 {
		cfg.BackfillPageSize = 50
	}
	if cfg.BackfillPageDelayMs == 0 {
		cfg.BackfillPageDelayMs = 250
	}
	if cfg.SnapshotLimit == 0 {
		cfg.SnapshotLimit = 1000
	}
	if cfg.TxSearchPageLimit == 0 {
		cfg.TxSearchPageLimit = 100
	}
	if cfg.EvmBatchDelayMs == 0 {
		cfg.EvmBatchDelayMs = 200
	}
	if cfg.LinkBatchSize == 0 {
		cfg.LinkBatchSize = 1000
	}
	if cfg.StatusPort == 0 {
		cfg.StatusPort = 8080
	}

	for i := range cfg.Chains {
		c := &cfg.Chains[i]
		if c.ChainID == 0 {
			return fmt.Errorf("chain at index %d has no chain_id", i)
		}
		if c.ContractAddress == "" {
			return fmt.Errorf("chain %d has no contract_address", c.ChainID)
		}
		if c.BatchSize == 0 {
			c.BatchSize = 2000
		}
	}

	return nil
}

// Load reads the config file at path, then applies environment overrides
// and validates. Only an empty path selects the embedded defaults; an
// explicitly given path that cannot be read is an error, never a silent
// fallback.
func Load(path string) (*Config, error) {
	data := defaultConfigJSON
	if path != "" {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		data = b
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON.
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides layers environment variables over the file config:
//
//	INTENTSYNC_NETWORK          network selector
//	INTENTSYNC_STORE_DSN        store connection string
//	INTENTSYNC_LEDGER_GRPC_URLS comma-separated ledger endpoints
//	INTENTSYNC_POLL_INTERVAL    poll interval in seconds
//	INTENTSYNC_RPC_<CHAIN_ID>   per-chain RPC endpoint override
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INTENTSYNC_NETWORK"); v != "" {
		cfg.Network = v
	}
	if v := os.Getenv("INTENTSYNC_STORE_DSN"); v != "" {
		cfg.StoreDSN = v
	}
	if v := os.Getenv("INTENTSYNC_LEDGER_GRPC_URLS"); v != "" {
		parts := strings.Split(v, ",")
		urls := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				urls = append(urls, p)
			}
		}
		if len(urls) > 0 {
			cfg.LedgerGRPCURLs = urls
		}
	}
	if v := os.Getenv("INTENTSYNC_POLL_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PollIntervalSeconds = n
		}
	}
	for i := range cfg.Chains {
		key := fmt.Sprintf("INTENTSYNC_RPC_%d", cfg.Chains[i].ChainID)
		if v := os.Getenv(key); v != "" {
			cfg.Chains[i].RPCURL = v
		}
	}
}
