package config

// ChainConfig describes one monitored EVM chain.
type ChainConfig struct {
	// ChainID is the numeric EVM chain id.
	ChainID uint64 `json:"chain_id"`
	// RPCURL is the JSON-RPC endpoint for the chain.
	RPCURL string `json:"rpc_url"`
	// ContractAddress is the intent gateway contract emitting Fill/Deposit logs.
	ContractAddress string `json:"contract_address"`
	// DeploymentBlock bounds the earliest block ever scanned. Sync never
	// starts before it, even with no persisted cursor.
	DeploymentBlock uint64 `json:"deployment_block"`
	// BatchSize is the maximum width of one getLogs window.
	BatchSize uint64 `json:"batch_size"`
}

// Config is the full runtime configuration of the mirror process.
type Config struct {
	// Network selects which monitored network this process runs for
	// (e.g. "testnet", "mainnet"). Informational, attached to log context.
	Network string `json:"network"`

	LogLevel   int    `json:"log_level"`
	LogFormat  string `json:"log_format"`
	LogSampler bool   `json:"log_sampler"`

	// StoreDSN selects the relational store. postgres:// DSNs open the
	// postgres driver; anything else is treated as a SQLite path.
	StoreDSN string `json:"store_dsn"`

	// LedgerGRPCURLs are the intent ledger gRPC endpoints, tried in
	// round-robin order.
	LedgerGRPCURLs []string `json:"ledger_grpc_urls"`

	// PollIntervalSeconds is the orchestrator tick interval.
	PollIntervalSeconds int `json:"poll_interval_seconds"`

	// BackfillPageSize is the intent page size used during gap backfill.
	BackfillPageSize uint64 `json:"backfill_page_size"`
	// BackfillPageDelayMs is the pause between backfill pages.
	BackfillPageDelayMs int `json:"backfill_page_delay_ms"`

	// SnapshotLimit bounds the remote snapshot fetched by the pending
	// reconciler.
	SnapshotLimit uint64 `json:"snapshot_limit"`

	// TxSearchPageLimit bounds one settlement transaction-search page.
	TxSearchPageLimit uint64 `json:"tx_search_page_limit"`

	// EvmBatchDelayMs is the pause between consecutive getLogs windows on
	// one chain.
	EvmBatchDelayMs int `json:"evm_batch_delay_ms"`

	// LinkBatchSize bounds how many unlinked events one linker pass scans.
	LinkBatchSize int `json:"link_batch_size"`

	// StatusPort is the HTTP port for /health, /api/v1/status and /metrics.
	StatusPort int `json:"status_port"`

	// Chains lists the monitored EVM chains.
	Chains []ChainConfig `json:"chains"`
}
