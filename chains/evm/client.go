// Package evm reads intent settlement events from EVM chains. Each
// configured chain gets a client over its JSON-RPC endpoint and a syncer
// that walks the log history forward behind a persisted block cursor.
package evm

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/chains/common"
	"github.com/arcana-labs/intentsync/logger"
)

// RPC is the subset of the Ethereum JSON-RPC surface the syncer needs.
// ethclient.Client satisfies it; tests substitute a fake.
type RPC interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Client wraps an EVM RPC endpoint with retry handling.
type Client struct {
	rpc    RPC
	retry  *common.RetryManager
	logger zerolog.Logger
}

// Dial connects to an EVM JSON-RPC endpoint.
func Dial(rpcURL string, log zerolog.Logger) (*Client, error) {
	ec, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}
	return NewClient(ec, log), nil
}

// NewClient builds a Client over an existing RPC implementation.
func NewClient(rpc RPC, log zerolog.Logger) *Client {
	return &Client{
		rpc:    rpc,
		retry:  common.NewRetryManager(nil, log),
		logger: logger.Component(log, "evm_client"),
	}
}

// LatestBlock returns the chain head block number.
func (c *Client) LatestBlock(ctx context.Context) (uint64, error) {
	var latest uint64
	err := c.retry.ExecuteWithRetry(ctx, "get_latest_block", func() error {
		var innerErr error
		latest, innerErr = c.rpc.BlockNumber(ctx)
		return innerErr
	})
	return latest, err
}

// FilterLogs fetches logs for the query, retrying transient RPC failures.
func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := c.retry.ExecuteWithRetry(ctx, "filter_logs", func() error {
		var innerErr error
		logs, innerErr = c.rpc.FilterLogs(ctx, q)
		return innerErr
	})
	return logs, err
}
