package sync_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/store"
	"github.com/arcana-labs/intentsync/sync"
)

func TestReconcilePicksUpFulfillment(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)

	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	for id := uint64(1); id <= 3; id++ {
		fl.intents[id] = pbIntent(id, expiry)
	}

	st := newTestStore(t)
	for id := uint64(1); id <= 3; id++ {
		require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[id], now)))
	}

	// Intent 2 settles remotely after the mirror last looked.
	fl.intents[2].Fulfilled = true
	fl.intents[2].FulfilledBy = []byte{0xaa}
	fl.intents[2].FulfilledAt = uint64(now.Unix())

	r := sync.NewReconciler(fl, st, 100, zerolog.Nop())
	res, err := r.Reconcile(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Checked)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Expired)
	assert.Equal(t, 0, res.NotFound)
	assert.Equal(t, 0, fl.intentCalls, "snapshot covers everything; no targeted refetch")

	got, err := st.GetIntent(2)
	require.NoError(t, err)
	assert.Equal(t, store.StatusFulfilled, got.DisplayStatus(now))
}

func TestReconcileFallsBackToTargetedFetch(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)

	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	for id := uint64(1); id <= 10; id++ {
		fl.intents[id] = pbIntent(id, expiry)
	}
	fl.intents[1].Refunded = true

	st := newTestStore(t)
	for id := uint64(1); id <= 10; id++ {
		in := pbIntent(id, expiry) // local copy without the refund flag
		require.NoError(t, st.UpsertIntent(ledger.ToBundle(in, now)))
	}

	// Snapshot window of 5 misses intents 1..5; they need targeted fetches.
	r := sync.NewReconciler(fl, st, 5, zerolog.Nop())
	res, err := r.Reconcile(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Checked)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 5, fl.intentCalls)

	got, err := st.GetIntent(1)
	require.NoError(t, err)
	assert.True(t, got.Refunded)
}

func TestReconcileCountsExpiredAndNotFound(t *testing.T) {
	now := time.Now()

	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{
		1: pbIntent(1, now.Add(-time.Hour)), // expired, still unsettled
	}}

	st := newTestStore(t)
	require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[1], now)))

	// Intent 2 exists locally but the ledger has never heard of it.
	orphan := pbIntent(2, now.Add(time.Hour))
	require.NoError(t, st.UpsertIntent(ledger.ToBundle(orphan, now)))

	r := sync.NewReconciler(fl, st, 100, zerolog.Nop())
	res, err := r.Reconcile(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Checked)
	assert.Equal(t, 1, res.Expired)
	assert.Equal(t, 1, res.NotFound)
	assert.Equal(t, 1, fl.intentCalls, "only the live orphan is fetched")

	got, err := st.GetIntent(1)
	require.NoError(t, err)
	assert.Equal(t, store.StatusFailed, got.DisplayStatus(now))
}

func TestReconcileSkipsExpiredWithoutRemoteLookup(t *testing.T) {
	now := time.Now()
	st := newTestStore(t)

	// A backlog of long-expired, never-settled intents, far larger than the
	// snapshot window. The ledger has forgotten all of them.
	for id := uint64(1); id <= 50; id++ {
		in := pbIntent(id, now.Add(-365*24*time.Hour))
		require.NoError(t, st.UpsertIntent(ledger.ToBundle(in, now)))
	}
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}

	r := sync.NewReconciler(fl, st, 5, zerolog.Nop())
	for pass := 0; pass < 3; pass++ {
		res, err := r.Reconcile(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, 50, res.Checked)
		assert.Equal(t, 50, res.Expired)
		assert.Equal(t, 0, res.NotFound)
		assert.Equal(t, 0, res.Updated)
	}
	assert.Equal(t, 0, fl.intentCalls, "expired backlog must generate no ledger load")
}

func TestReconcileNothingOpen(t *testing.T) {
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	st := newTestStore(t)

	r := sync.NewReconciler(fl, st, 100, zerolog.Nop())
	res, err := r.Reconcile(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Checked)
}
