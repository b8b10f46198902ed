package sync

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/store"
)

// ReconcileResult summarizes one reconciliation pass.
type ReconcileResult struct {
	Checked  int
	Updated  int
	Expired  int
	NotFound int
}

// Reconciler refreshes every open local intent against the ledger so that
// fulfillment, refund and deposit flags converge. It works from a bulk
// snapshot of the newest intents and falls back to targeted single-intent
// queries for anything older than the snapshot window.
type Reconciler struct {
	ledger        LedgerClient
	store         *store.Store
	snapshotLimit uint64
	logger        zerolog.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(lc LedgerClient, st *store.Store, snapshotLimit uint64, log zerolog.Logger) *Reconciler {
	if snapshotLimit == 0 {
		snapshotLimit = 1000
	}
	return &Reconciler{
		ledger:        lc,
		store:         st,
		snapshotLimit: snapshotLimit,
		logger:        logger.Component(log, "reconciler"),
	}
}

// Reconcile checks every open intent. An intent past its expiry is counted
// expired and skipped outright, with no remote lookup: the expired set only
// grows over a deployment's lifetime and must never translate into per-tick
// ledger load. A live intent missing from the snapshot gets a targeted
// refetch before it is declared not found, since the snapshot is bounded
// and absence there proves nothing.
func (r *Reconciler) Reconcile(ctx context.Context, now time.Time) (*ReconcileResult, error) {
	open, err := r.store.OpenIntents()
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{}
	if len(open) == 0 {
		return result, nil
	}

	snapshot, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for i := range open {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		local := &open[i]
		result.Checked++

		if now.Unix() > local.Expiry {
			result.Expired++
			continue
		}

		remote, ok := snapshot[local.ID]
		if !ok {
			remote, err = r.ledger.Intent(ctx, local.ID)
			if err != nil {
				if errors.Is(err, ledger.ErrIntentNotFound) {
					result.NotFound++
					r.logger.Warn().
						Uint64("intent_id", local.ID).
						Msg("locally mirrored intent unknown to ledger")
					continue
				}
				return result, err
			}
		}

		if flagsDiffer(local, remote) {
			bundle := ledger.ToBundle(remote, now)
			if err := r.store.UpsertIntent(bundle); err != nil {
				return result, err
			}
			result.Updated++
		}
	}

	r.logger.Debug().
		Int("checked", result.Checked).
		Int("updated", result.Updated).
		Int("expired", result.Expired).
		Int("not_found", result.NotFound).
		Msg("reconcile finished")

	return result, nil
}

// snapshot bulk-fetches the newest intents into an id-keyed map.
func (r *Reconciler) snapshot(ctx context.Context) (map[uint64]*intentspb.Intent, error) {
	latest, err := r.ledger.LatestIntents(ctx, r.snapshotLimit)
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]*intentspb.Intent, len(latest))
	for _, in := range latest {
		m[in.GetId()] = in
	}
	return m, nil
}

func flagsDiffer(local *store.Intent, remote *intentspb.Intent) bool {
	return local.Deposited != remote.GetDeposited() ||
		local.Fulfilled != remote.GetFulfilled() ||
		local.Refunded != remote.GetRefunded()
}
