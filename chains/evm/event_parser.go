package evm

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/store"
	"github.com/arcana-labs/intentsync/utils"
)

// Event signatures of the intent settlement contract. The request hash is
// the only indexed parameter on both events.
var (
	// Fill(bytes32 indexed requestHash, address solver, address from)
	FillTopic = crypto.Keccak256Hash([]byte("Fill(bytes32,address,address)"))
	// Deposit(bytes32 indexed requestHash, address from, bool gasRefunded)
	DepositTopic = crypto.Keccak256Hash([]byte("Deposit(bytes32,address,bool)"))
)

// EventParser decodes settlement contract logs into storage rows.
type EventParser struct {
	chainID uint64
	logger  zerolog.Logger
}

// NewEventParser creates a parser for one chain's settlement contract.
func NewEventParser(chainID uint64, log zerolog.Logger) *EventParser {
	return &EventParser{
		chainID: chainID,
		logger:  logger.Component(log, "evm_event_parser").With().Uint64("chain_id", chainID).Logger(),
	}
}

// Topics returns the event topics the syncer filters on.
func (ep *EventParser) Topics() []ethcommon.Hash {
	return []ethcommon.Hash{FillTopic, DepositTopic}
}

// Parse decodes one log. Exactly one of the returned rows is non-nil on
// success. A log carrying a known topic but a malformed shape is a hard
// error: the contract never emits such logs, so treating it as skippable
// would hide data corruption behind an advancing cursor.
func (ep *EventParser) Parse(log *types.Log) (*store.EvmFillEvent, *store.EvmDepositEvent, error) {
	if len(log.Topics) == 0 {
		return nil, nil, fmt.Errorf("log %s:%d has no topics", log.TxHash.Hex(), log.Index)
	}

	switch log.Topics[0] {
	case FillTopic:
		fill, err := ep.parseFill(log)
		return fill, nil, err
	case DepositTopic:
		deposit, err := ep.parseDeposit(log)
		return nil, deposit, err
	default:
		// Not ours; the filter query should exclude these.
		return nil, nil, nil
	}
}

func (ep *EventParser) parseFill(log *types.Log) (*store.EvmFillEvent, error) {
	if len(log.Topics) < 2 {
		return nil, fmt.Errorf("fill log %s:%d missing request hash topic", log.TxHash.Hex(), log.Index)
	}
	if len(log.Data) < 64 {
		return nil, fmt.Errorf("fill log %s:%d data too short: %d bytes", log.TxHash.Hex(), log.Index, len(log.Data))
	}

	return &store.EvmFillEvent{
		TxHash:        log.TxHash.Hex(),
		LogIndex:      log.Index,
		RequestHash:   log.Topics[1].Hex(),
		ChainID:       ep.chainID,
		BlockNumber:   log.BlockNumber,
		SolverAddress: utils.HexAddress(log.Data[:32]),
		FromAddress:   utils.HexAddress(log.Data[32:64]),
	}, nil
}

func (ep *EventParser) parseDeposit(log *types.Log) (*store.EvmDepositEvent, error) {
	if len(log.Topics) < 2 {
		return nil, fmt.Errorf("deposit log %s:%d missing request hash topic", log.TxHash.Hex(), log.Index)
	}
	if len(log.Data) < 64 {
		return nil, fmt.Errorf("deposit log %s:%d data too short: %d bytes", log.TxHash.Hex(), log.Index, len(log.Data))
	}

	return &store.EvmDepositEvent{
		TxHash:      log.TxHash.Hex(),
		LogIndex:    log.Index,
		RequestHash: log.Topics[1].Hex(),
		ChainID:     ep.chainID,
		BlockNumber: log.BlockNumber,
		FromAddress: utils.HexAddress(log.Data[:32]),
		GasRefunded: log.Data[63] != 0,
	}, nil
}
