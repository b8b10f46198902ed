package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store provides the repository operations used by the sync engine. All
// mutation is expressed as idempotent upserts keyed by natural identity, so
// overlapping runs converge without explicit locking.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open gorm client.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// IntentBundle is one intent plus its full child set, written atomically.
type IntentBundle struct {
	Intent       Intent
	Sources      []IntentSource
	Destinations []IntentDestination
	Signatures   []IntentSignature
}

// intentMutableColumns are the only columns an intent upsert may change
// once the row exists. Everything else is immutable after first sight.
var intentMutableColumns = []string{
	"deposited", "fulfilled", "refunded", "fulfilled_by", "fulfilled_at", "updated_at",
}

// UpsertIntent inserts the intent or, on id conflict, updates only the
// mutable status columns. The child rows are immutable snapshots: they are
// unconditionally deleted and reinserted rather than diffed. The whole step
// is one transaction.
func (s *Store) UpsertIntent(b *IntentBundle) error {
	if b == nil || b.Intent.ID == 0 {
		return errors.New("intent bundle requires a remote-assigned id")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(intentMutableColumns),
		}).Create(&b.Intent).Error; err != nil {
			return fmt.Errorf("failed to upsert intent %d: %w", b.Intent.ID, err)
		}

		if err := tx.Where("intent_id = ?", b.Intent.ID).Delete(&IntentSource{}).Error; err != nil {
			return fmt.Errorf("failed to clear sources for intent %d: %w", b.Intent.ID, err)
		}
		if err := tx.Where("intent_id = ?", b.Intent.ID).Delete(&IntentDestination{}).Error; err != nil {
			return fmt.Errorf("failed to clear destinations for intent %d: %w", b.Intent.ID, err)
		}
		if err := tx.Where("intent_id = ?", b.Intent.ID).Delete(&IntentSignature{}).Error; err != nil {
			return fmt.Errorf("failed to clear signatures for intent %d: %w", b.Intent.ID, err)
		}

		for i := range b.Sources {
			b.Sources[i].ID = 0
			b.Sources[i].IntentID = b.Intent.ID
		}
		for i := range b.Destinations {
			b.Destinations[i].ID = 0
			b.Destinations[i].IntentID = b.Intent.ID
		}
		for i := range b.Signatures {
			b.Signatures[i].ID = 0
			b.Signatures[i].IntentID = b.Intent.ID
		}

		if len(b.Sources) > 0 {
			if err := tx.Create(&b.Sources).Error; err != nil {
				return fmt.Errorf("failed to insert sources for intent %d: %w", b.Intent.ID, err)
			}
		}
		if len(b.Destinations) > 0 {
			if err := tx.Create(&b.Destinations).Error; err != nil {
				return fmt.Errorf("failed to insert destinations for intent %d: %w", b.Intent.ID, err)
			}
		}
		if len(b.Signatures) > 0 {
			if err := tx.Create(&b.Signatures).Error; err != nil {
				return fmt.Errorf("failed to insert signatures for intent %d: %w", b.Intent.ID, err)
			}
		}
		return nil
	})
}

// MaxIntentID returns the highest locally mirrored intent id, 0 when the
// table is empty.
func (s *Store) MaxIntentID() (uint64, error) {
	var max *uint64
	if err := s.db.Model(&Intent{}).Select("MAX(id)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to query max intent id: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// GetIntent fetches one intent by id.
func (s *Store) GetIntent(id uint64) (*Intent, error) {
	var intent Intent
	if err := s.db.First(&intent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &intent, nil
}

// PendingIntents returns all intents still open for reconciliation:
// not fulfilled, not refunded, not past expiry at now.
func (s *Store) PendingIntents(now time.Time) ([]Intent, error) {
	var intents []Intent
	if err := s.db.
		Where("fulfilled = ? AND refunded = ? AND expiry >= ?", false, false, now.Unix()).
		Order("id ASC").
		Find(&intents).Error; err != nil {
		return nil, fmt.Errorf("failed to query pending intents: %w", err)
	}
	return intents, nil
}

// OpenIntents returns all intents with no terminal flag yet: not fulfilled
// and not refunded, expired or not. The reconciler counts the expired ones
// without ever fetching them remotely.
func (s *Store) OpenIntents() ([]Intent, error) {
	var intents []Intent
	if err := s.db.
		Where("fulfilled = ? AND refunded = ?", false, false).
		Order("id ASC").
		Find(&intents).Error; err != nil {
		return nil, fmt.Errorf("failed to query open intents: %w", err)
	}
	return intents, nil
}

// SourcesByIntent returns the funding legs of an intent in insertion order.
func (s *Store) SourcesByIntent(intentID uint64) ([]IntentSource, error) {
	var rows []IntentSource
	err := s.db.Where("intent_id = ?", intentID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// DestinationsByIntent returns the payout legs of an intent in insertion order.
func (s *Store) DestinationsByIntent(intentID uint64) ([]IntentDestination, error) {
	var rows []IntentDestination
	err := s.db.Where("intent_id = ?", intentID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// SignaturesByIntent returns the signature rows of an intent.
func (s *Store) SignaturesByIntent(intentID uint64) ([]IntentSignature, error) {
	var rows []IntentSignature
	err := s.db.Where("intent_id = ?", intentID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// InsertFillTransaction records Cosmos-layer fill evidence. Rows are
// immutable: a hash conflict is a no-op.
func (s *Store) InsertFillTransaction(t *FillTransaction) error {
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cosmos_hash"}},
		DoNothing: true,
	}).Create(t).Error; err != nil {
		return fmt.Errorf("failed to insert fill transaction %s: %w", t.CosmosHash, err)
	}
	return nil
}

// InsertDepositTransaction records Cosmos-layer deposit evidence. Rows are
// immutable: a hash conflict is a no-op.
func (s *Store) InsertDepositTransaction(t *DepositTransaction) error {
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cosmos_hash"}},
		DoNothing: true,
	}).Create(t).Error; err != nil {
		return fmt.Errorf("failed to insert deposit transaction %s: %w", t.CosmosHash, err)
	}
	return nil
}

// FillTransactionsByIntent returns the Cosmos fill evidence for an intent.
func (s *Store) FillTransactionsByIntent(intentID uint64) ([]FillTransaction, error) {
	var rows []FillTransaction
	err := s.db.Where("intent_id = ?", intentID).Order("cosmos_hash ASC").Find(&rows).Error
	return rows, err
}

// DepositTransactionsByIntent returns the Cosmos deposit evidence for an intent.
func (s *Store) DepositTransactionsByIntent(intentID uint64) ([]DepositTransaction, error) {
	var rows []DepositTransaction
	err := s.db.Where("intent_id = ?", intentID).Order("cosmos_hash ASC").Find(&rows).Error
	return rows, err
}

// evmEventConflict builds the on-conflict clause for event upserts. A
// re-synced event must not clobber a previously linked intent_id with NULL,
// so intent_id takes the incoming value only when it is non-null.
func evmEventConflict(table string, extraColumns []string) clause.OnConflict {
	assignments := clause.Assignments(map[string]interface{}{
		"intent_id": gorm.Expr(fmt.Sprintf("COALESCE(excluded.intent_id, %s.intent_id)", table)),
	})
	assignments = append(assignments, clause.AssignmentColumns(extraColumns)...)
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoUpdates: assignments,
	}
}

// SaveEventBatch durably stores one window's worth of decoded events and
// then advances the chain cursor, all in a single transaction. The cursor
// only moves forward; replaying an already-stored window is a no-op thanks
// to the (tx_hash, log_index) keys.
func (s *Store) SaveEventBatch(chainID, toBlock uint64, fills []EvmFillEvent, deposits []EvmDepositEvent) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if len(fills) > 0 {
			conflict := evmEventConflict("evm_fill_events",
				[]string{"request_hash", "chain_id", "block_number", "from_address", "solver_address"})
			if err := tx.Clauses(conflict).Create(&fills).Error; err != nil {
				return fmt.Errorf("failed to upsert fill events: %w", err)
			}
		}
		if len(deposits) > 0 {
			conflict := evmEventConflict("evm_deposit_events",
				[]string{"request_hash", "chain_id", "block_number", "from_address", "gas_refunded"})
			if err := tx.Clauses(conflict).Create(&deposits).Error; err != nil {
				return fmt.Errorf("failed to upsert deposit events: %w", err)
			}
		}
		return advanceCursor(tx, chainID, toBlock)
	})
}

// GetCursor returns the persisted cursor for a chain. found is false when
// the chain has never synced.
func (s *Store) GetCursor(chainID uint64) (block uint64, found bool, err error) {
	var state EvmSyncState
	result := s.db.First(&state, "chain_id = ?", chainID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to query sync state for chain %d: %w", chainID, result.Error)
	}
	return state.LastCheckedBlock, true, nil
}

// AdvanceCursor moves the chain cursor forward. Lower values are ignored,
// which keeps the cursor monotonic under duplicate or racing writers.
func (s *Store) AdvanceCursor(chainID, block uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return advanceCursor(tx, chainID, block)
	})
}

func advanceCursor(tx *gorm.DB, chainID, block uint64) error {
	var state EvmSyncState
	result := tx.First(&state, "chain_id = ?", chainID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			state = EvmSyncState{ChainID: chainID, LastCheckedBlock: block}
			if err := tx.Create(&state).Error; err != nil {
				return fmt.Errorf("failed to create sync state for chain %d: %w", chainID, err)
			}
			return nil
		}
		return fmt.Errorf("failed to query sync state for chain %d: %w", chainID, result.Error)
	}

	if block > state.LastCheckedBlock {
		state.LastCheckedBlock = block
		if err := tx.Save(&state).Error; err != nil {
			return fmt.Errorf("failed to advance cursor for chain %d: %w", chainID, err)
		}
	}
	return nil
}

// UnlinkedFillEvents returns fill events with no intent yet, oldest first.
func (s *Store) UnlinkedFillEvents(limit int) ([]EvmFillEvent, error) {
	var events []EvmFillEvent
	if err := s.db.
		Where("intent_id IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query unlinked fill events: %w", err)
	}
	return events, nil
}

// UnlinkedDepositEvents returns deposit events with no intent yet, oldest first.
func (s *Store) UnlinkedDepositEvents(limit int) ([]EvmDepositEvent, error) {
	var events []EvmDepositEvent
	if err := s.db.
		Where("intent_id IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to query unlinked deposit events: %w", err)
	}
	return events, nil
}

// CountUnlinkedFillEvents counts fill events still awaiting linkage.
func (s *Store) CountUnlinkedFillEvents() (int64, error) {
	var n int64
	err := s.db.Model(&EvmFillEvent{}).Where("intent_id IS NULL").Count(&n).Error
	return n, err
}

// CountUnlinkedDepositEvents counts deposit events still awaiting linkage.
func (s *Store) CountUnlinkedDepositEvents() (int64, error) {
	var n int64
	err := s.db.Model(&EvmDepositEvent{}).Where("intent_id IS NULL").Count(&n).Error
	return n, err
}

// IntentIDBySignatureHash resolves an on-chain request hash to the owning
// intent via the signature table. found is false when no signature row
// carries the hash.
func (s *Store) IntentIDBySignatureHash(hash string) (intentID uint64, found bool, err error) {
	var sig IntentSignature
	result := s.db.First(&sig, "hash = ?", hash)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to look up signature hash: %w", result.Error)
	}
	return sig.IntentID, true, nil
}

// LinkFillEvent sets the intent id on a fill event. This is the only
// permitted mutation of an event row.
func (s *Store) LinkFillEvent(eventID uint, intentID uint64) error {
	if err := s.db.Model(&EvmFillEvent{}).
		Where("id = ?", eventID).
		Update("intent_id", intentID).Error; err != nil {
		return fmt.Errorf("failed to link fill event %d: %w", eventID, err)
	}
	return nil
}

// LinkDepositEvent sets the intent id on a deposit event. This is the only
// permitted mutation of an event row.
func (s *Store) LinkDepositEvent(eventID uint, intentID uint64) error {
	if err := s.db.Model(&EvmDepositEvent{}).
		Where("id = ?", eventID).
		Update("intent_id", intentID).Error; err != nil {
		return fmt.Errorf("failed to link deposit event %d: %w", eventID, err)
	}
	return nil
}

// CursorSnapshot returns all chain cursors, for the status endpoint.
func (s *Store) CursorSnapshot() ([]EvmSyncState, error) {
	var states []EvmSyncState
	err := s.db.Order("chain_id ASC").Find(&states).Error
	return states, err
}
