package evm

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/config"
	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/store"
)

// Syncer walks one chain's settlement contract logs forward from the
// persisted cursor to the current head. Events and cursor advance are
// committed together per window, so a crash mid-sync resumes at the last
// fully stored window and replays nothing visible.
type Syncer struct {
	chain      config.ChainConfig
	client     *Client
	parser     *EventParser
	store      *store.Store
	contract   ethcommon.Address
	batchDelay time.Duration
	logger     zerolog.Logger
}

// SyncResult summarizes one SyncOnce pass.
type SyncResult struct {
	Fills    int
	Deposits int
	Windows  int
	ToBlock  uint64
}

// NewSyncer creates a syncer for one configured chain.
func NewSyncer(
	chain config.ChainConfig,
	client *Client,
	st *store.Store,
	batchDelay time.Duration,
	log zerolog.Logger,
) *Syncer {
	return &Syncer{
		chain:      chain,
		client:     client,
		parser:     NewEventParser(chain.ChainID, log),
		store:      st,
		contract:   ethcommon.HexToAddress(chain.ContractAddress),
		batchDelay: batchDelay,
		logger:     logger.Component(log, "evm_syncer").With().Uint64("chain_id", chain.ChainID).Logger(),
	}
}

// ChainID returns the chain this syncer watches.
func (s *Syncer) ChainID() uint64 {
	return s.chain.ChainID
}

// SyncOnce advances the chain cursor to the current head in windows of at
// most the configured batch size. A fresh chain starts at the contract
// deployment block; a caught-up chain is a no-op.
func (s *Syncer) SyncOnce(ctx context.Context) (*SyncResult, error) {
	latest, err := s.client.LatestBlock(ctx)
	if err != nil {
		return nil, err
	}

	cursor, found, err := s.store.GetCursor(s.chain.ChainID)
	if err != nil {
		return nil, err
	}

	fromBlock := s.chain.DeploymentBlock
	if found {
		fromBlock = cursor + 1
	}

	result := &SyncResult{ToBlock: cursor}
	if fromBlock > latest {
		return result, nil
	}

	for fromBlock <= latest {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		toBlock := fromBlock + s.chain.BatchSize - 1
		if toBlock > latest {
			toBlock = latest
		}

		fills, deposits, err := s.syncWindow(ctx, fromBlock, toBlock)
		if err != nil {
			return result, err
		}

		result.Fills += len(fills)
		result.Deposits += len(deposits)
		result.Windows++
		result.ToBlock = toBlock

		if len(fills) > 0 || len(deposits) > 0 {
			s.logger.Info().
				Uint64("from_block", fromBlock).
				Uint64("to_block", toBlock).
				Int("fills", len(fills)).
				Int("deposits", len(deposits)).
				Msg("stored settlement events")
		}

		fromBlock = toBlock + 1

		if fromBlock <= latest && s.batchDelay > 0 {
			select {
			case <-time.After(s.batchDelay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	return result, nil
}

// syncWindow fetches, decodes and stores one block window. The cursor only
// advances after every log in the window decoded cleanly.
func (s *Syncer) syncWindow(ctx context.Context, fromBlock, toBlock uint64) ([]store.EvmFillEvent, []store.EvmDepositEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []ethcommon.Address{s.contract},
		Topics:    [][]ethcommon.Hash{s.parser.Topics()},
	}

	logs, err := s.client.FilterLogs(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	var fills []store.EvmFillEvent
	var deposits []store.EvmDepositEvent
	for i := range logs {
		fill, deposit, err := s.parser.Parse(&logs[i])
		if err != nil {
			return nil, nil, err
		}
		if fill != nil {
			fills = append(fills, *fill)
		}
		if deposit != nil {
			deposits = append(deposits, *deposit)
		}
	}

	if err := s.store.SaveEventBatch(s.chain.ChainID, toBlock, fills, deposits); err != nil {
		return nil, nil, err
	}
	return fills, deposits, nil
}
