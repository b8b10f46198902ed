package sync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/store"
)

// LinkResult summarizes one linking pass.
type LinkResult struct {
	LinkedFills       int
	LinkedDeposits    int
	RemainingFills    int64
	RemainingDeposits int64
}

// Linker attaches stored EVM events to their intents by matching the
// event's request hash against the intent signature hashes. Events whose
// intent has not been mirrored yet simply stay unlinked until a later pass.
type Linker struct {
	store     *store.Store
	batchSize int
	logger    zerolog.Logger
}

// NewLinker creates a linker. Each pass processes at most batchSize events
// of each kind, oldest first.
func NewLinker(st *store.Store, batchSize int, log zerolog.Logger) *Linker {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Linker{
		store:     st,
		batchSize: batchSize,
		logger:    logger.Component(log, "linker"),
	}
}

// Link processes one batch of unlinked events of each kind and reports how
// many remain. Setting intent_id is the only mutation; an event with no
// matching signature hash is left untouched, never marked.
func (l *Linker) Link(ctx context.Context) (*LinkResult, error) {
	result := &LinkResult{}

	fills, err := l.store.UnlinkedFillEvents(l.batchSize)
	if err != nil {
		return nil, err
	}
	for i := range fills {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		intentID, found, err := l.store.IntentIDBySignatureHash(fills[i].RequestHash)
		if err != nil {
			return result, err
		}
		if !found {
			continue
		}
		if err := l.store.LinkFillEvent(fills[i].ID, intentID); err != nil {
			return result, err
		}
		result.LinkedFills++
	}

	deposits, err := l.store.UnlinkedDepositEvents(l.batchSize)
	if err != nil {
		return nil, err
	}
	for i := range deposits {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		intentID, found, err := l.store.IntentIDBySignatureHash(deposits[i].RequestHash)
		if err != nil {
			return result, err
		}
		if !found {
			continue
		}
		if err := l.store.LinkDepositEvent(deposits[i].ID, intentID); err != nil {
			return result, err
		}
		result.LinkedDeposits++
	}

	if result.RemainingFills, err = l.store.CountUnlinkedFillEvents(); err != nil {
		return result, err
	}
	if result.RemainingDeposits, err = l.store.CountUnlinkedDepositEvents(); err != nil {
		return result, err
	}

	if result.LinkedFills > 0 || result.LinkedDeposits > 0 {
		l.logger.Info().
			Int("linked_fills", result.LinkedFills).
			Int("linked_deposits", result.LinkedDeposits).
			Int64("remaining_fills", result.RemainingFills).
			Int64("remaining_deposits", result.RemainingDeposits).
			Msg("linked settlement events")
	}

	return result, nil
}
