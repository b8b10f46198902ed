// Package store contains the GORM models and repository operations backing
// the intent mirror. The schema here is the contract with the read path:
// column names and nullability are load-bearing.
//
// Tables:
//
//	intents               one row per remote intent, id assigned remotely
//	intent_sources        funding legs, replaced wholesale on re-upsert
//	intent_destinations   payout legs, replaced wholesale on re-upsert
//	intent_signatures     per-universe authorization, carries the link hash
//	fill_transactions     Cosmos-layer fill evidence, immutable
//	deposit_transactions  Cosmos-layer deposit evidence, immutable
//	evm_fill_events       on-chain fill logs, intent_id linked after the fact
//	evm_deposit_events    on-chain deposit logs, intent_id linked after the fact
//	evm_sync_states       one block cursor per EVM chain
package store

import (
	"time"
)

// Status is the derived display state of an intent. It is computed on read
// and never stored; the three lifecycle booleans are the source of truth.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDeposited Status = "deposited"
	StatusFulfilled Status = "fulfilled"
	StatusRefunded  Status = "refunded"
	StatusFailed    Status = "failed"
)

// Intent mirrors one remote intent. The id is remote-assigned and never
// generated locally. Deposited/Fulfilled/Refunded are independent booleans,
// not an enum; only those, FulfilledBy and FulfilledAt ever change after
// first insert.
type Intent struct {
	ID                  uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserAddress         string
	Expiry              int64
	CreationBlock       uint64
	DestinationChainID  uint64
	DestinationUniverse string
	Nonce               uint64 `gorm:"uniqueIndex"`
	Deposited           bool
	Fulfilled           bool
	Refunded            bool
	FulfilledBy         *string
	FulfilledAt         int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DisplayStatus derives the user-facing status. Priority order is fixed:
// fulfilled > refunded > failed (expired) > deposited > pending.
func (i *Intent) DisplayStatus(now time.Time) Status {
	switch {
	case i.Fulfilled:
		return StatusFulfilled
	case i.Refunded:
		return StatusRefunded
	case now.Unix() > i.Expiry:
		return StatusFailed
	case i.Deposited:
		return StatusDeposited
	default:
		return StatusPending
	}
}

// IsPending reports whether the intent is still open for reconciliation:
// not fulfilled, not refunded, not past expiry.
func (i *Intent) IsPending(now time.Time) bool {
	return !i.Fulfilled && !i.Refunded && now.Unix() <= i.Expiry
}

// IntentSource is one funding leg of an intent. Rows are immutable
// snapshots; insertion order (the autoincrement id) is the leg order.
type IntentSource struct {
	ID           uint   `gorm:"primaryKey"`
	IntentID     uint64 `gorm:"index"`
	Universe     string
	ChainID      uint64
	TokenAddress string
	// Value is a decimal-string big integer.
	Value       string
	Status      uint32
	RequiredFee string
}

// IntentDestination is one payout leg of an intent.
type IntentDestination struct {
	ID           uint   `gorm:"primaryKey"`
	IntentID     uint64 `gorm:"index"`
	TokenAddress string
	Value        string
}

// IntentSignature carries the per-universe authorization of an intent.
// Hash is the content hash the linker matches EVM event request hashes
// against.
type IntentSignature struct {
	ID        uint   `gorm:"primaryKey"`
	IntentID  uint64 `gorm:"index"`
	Universe  string
	Signer    string
	Signature string
	Hash      string `gorm:"index"`
}

// FillTransaction is Cosmos-layer fill evidence, keyed by the settlement
// transaction hash. Rows are append-only and never mutated.
type FillTransaction struct {
	CosmosHash    string `gorm:"primaryKey"`
	IntentID      uint64 `gorm:"index"`
	ChainID       uint64
	Universe      string
	FillerAddress string
	TxHash        string
	CreatedAt     time.Time
}

// DepositTransaction is Cosmos-layer deposit evidence, keyed by the
// settlement transaction hash. Rows are append-only and never mutated.
type DepositTransaction struct {
	CosmosHash  string `gorm:"primaryKey"`
	IntentID    uint64 `gorm:"index"`
	ChainID     uint64
	Universe    string
	GasRefunded bool
	CreatedAt   time.Time
}

// EvmFillEvent is one decoded Fill log. IntentID starts NULL and is set
// exclusively by the linker; it is the only mutable field.
type EvmFillEvent struct {
	ID            uint    `gorm:"primaryKey"`
	TxHash        string  `gorm:"uniqueIndex:idx_fill_tx_log"`
	LogIndex      uint    `gorm:"uniqueIndex:idx_fill_tx_log"`
	RequestHash   string  `gorm:"index"`
	ChainID       uint64  `gorm:"index"`
	BlockNumber   uint64
	FromAddress   string
	SolverAddress string
	IntentID      *uint64 `gorm:"index"`
	CreatedAt     time.Time
}

// EvmDepositEvent is one decoded Deposit log. IntentID starts NULL and is
// set exclusively by the linker; it is the only mutable field.
type EvmDepositEvent struct {
	ID          uint    `gorm:"primaryKey"`
	TxHash      string  `gorm:"uniqueIndex:idx_deposit_tx_log"`
	LogIndex    uint    `gorm:"uniqueIndex:idx_deposit_tx_log"`
	RequestHash string  `gorm:"index"`
	ChainID     uint64  `gorm:"index"`
	BlockNumber uint64
	FromAddress string
	GasRefunded bool
	IntentID    *uint64 `gorm:"index"`
	CreatedAt   time.Time
}

// EvmSyncState is the per-chain block cursor. LastCheckedBlock only ever
// advances; it is the sole authority for where sync resumes after restart.
type EvmSyncState struct {
	ChainID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	LastCheckedBlock uint64
	UpdatedAt        time.Time
}
