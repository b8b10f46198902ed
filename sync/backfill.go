// Package sync implements the four reconciliation passes that keep the
// local mirror converged with the intent ledger: backfill of new intents,
// refresh of open intents, settlement transaction scan, and linking of
// on-chain events to intents. Every pass is idempotent; re-running against
// an already converged store changes nothing.
package sync

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/store"
)

// LedgerClient is the ledger surface the sync passes depend on.
// ledger.Client satisfies it; tests substitute a fake.
type LedgerClient interface {
	LatestIntentID(ctx context.Context) (uint64, error)
	IntentsPage(ctx context.Context, offset, limit uint64) ([]*intentspb.Intent, error)
	LatestIntents(ctx context.Context, limit uint64) ([]*intentspb.Intent, error)
	Intent(ctx context.Context, id uint64) (*intentspb.Intent, error)
	SearchSettlementTxs(ctx context.Context) ([]ledger.SettlementTx, error)
}

// BackfillResult summarizes one backfill pass.
type BackfillResult struct {
	LocalMax  uint64
	RemoteMax uint64
	Fetched   int
	Inserted  int
	Failed    int
}

// Backfiller pulls intents the mirror has never seen, in ascending id
// order, page by page.
type Backfiller struct {
	ledger    LedgerClient
	store     *store.Store
	pageSize  uint64
	pageDelay time.Duration
	logger    zerolog.Logger
}

// NewBackfiller creates a backfiller.
func NewBackfiller(lc LedgerClient, st *store.Store, pageSize uint64, pageDelay time.Duration, log zerolog.Logger) *Backfiller {
	if pageSize == 0 {
		pageSize = 50
	}
	return &Backfiller{
		ledger:    lc,
		store:     st,
		pageSize:  pageSize,
		pageDelay: pageDelay,
		logger:    logger.Component(log, "backfiller"),
	}
}

// Compare returns the highest intent id on each side without mutating
// anything.
func (b *Backfiller) Compare(ctx context.Context) (localMax, remoteMax uint64, err error) {
	localMax, err = b.store.MaxIntentID()
	if err != nil {
		return 0, 0, err
	}
	remoteMax, err = b.ledger.LatestIntentID(ctx)
	if err != nil {
		return 0, 0, err
	}
	return localMax, remoteMax, nil
}

// Backfill mirrors every intent with an id above the local maximum. The
// listing offset is sought from the ledger itself rather than assumed from
// the local maximum, so id gaps on the remote side never skip unseen
// intents. Individual intent failures are counted and skipped; only page
// fetch failures abort the pass.
func (b *Backfiller) Backfill(ctx context.Context) (*BackfillResult, error) {
	localMax, remoteMax, err := b.Compare(ctx)
	if err != nil {
		return nil, err
	}

	result := &BackfillResult{LocalMax: localMax, RemoteMax: remoteMax}
	if remoteMax <= localMax {
		return result, nil
	}

	b.logger.Info().
		Uint64("local_max", localMax).
		Uint64("remote_max", remoteMax).
		Msg("backfill starting")

	offset, err := b.seekOffset(ctx, localMax)
	if err != nil {
		return result, err
	}
	now := time.Now()

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		page, err := b.ledger.IntentsPage(ctx, offset, b.pageSize)
		if err != nil {
			return result, err
		}
		if len(page) == 0 {
			break
		}

		for _, in := range page {
			if in.GetId() <= localMax {
				continue
			}
			result.Fetched++

			bundle := ledger.ToBundle(in, now)
			if err := b.store.UpsertIntent(bundle); err != nil {
				result.Failed++
				b.logger.Error().
					Err(err).
					Uint64("intent_id", in.GetId()).
					Msg("failed to store intent; skipping")
				continue
			}
			result.Inserted++
		}

		offset += uint64(len(page))
		if page[len(page)-1].GetId() >= remoteMax {
			break
		}

		if b.pageDelay > 0 {
			select {
			case <-time.After(b.pageDelay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	b.logger.Info().
		Int("fetched", result.Fetched).
		Int("inserted", result.Inserted).
		Int("failed", result.Failed).
		Msg("backfill finished")

	return result, nil
}

// seekOffset finds the listing offset of the first intent with an id above
// localMax. Ids are distinct and start at one, so the entry at offset
// localMax can never carry an id at or below localMax; finding exactly
// localMax+1 there proves every earlier entry is at or below localMax, and
// a single lookup settles it. With remote-side gaps the boundary sits
// earlier, and the ascending listing lets a binary search locate it.
func (b *Backfiller) seekOffset(ctx context.Context, localMax uint64) (uint64, error) {
	if localMax == 0 {
		return 0, nil
	}

	id, err := b.firstIDAt(ctx, localMax)
	if err != nil {
		return 0, err
	}
	if id == localMax+1 {
		return localMax, nil
	}

	lo, hi := uint64(0), localMax
	for lo < hi {
		mid := lo + (hi-lo)/2
		id, err := b.firstIDAt(ctx, mid)
		if err != nil {
			return 0, err
		}
		if id != 0 && id <= localMax {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// firstIDAt returns the id of the listing entry at the given offset, or 0
// when the offset is past the end.
func (b *Backfiller) firstIDAt(ctx context.Context, offset uint64) (uint64, error) {
	page, err := b.ledger.IntentsPage(ctx, offset, 1)
	if err != nil {
		return 0, err
	}
	if len(page) == 0 {
		return 0, nil
	}
	return page[0].GetId(), nil
}
