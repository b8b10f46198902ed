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
	"github.com/arcana-labs/intentsync/sync"
)

func TestBackfillFromEmptyMirror(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	for id := uint64(1); id <= 5; id++ {
		fl.intents[id] = pbIntent(id, expiry)
	}
	st := newTestStore(t)

	b := sync.NewBackfiller(fl, st, 2, 0, zerolog.Nop())
	res, err := b.Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(0), res.LocalMax)
	assert.Equal(t, uint64(5), res.RemoteMax)
	assert.Equal(t, 5, res.Fetched)
	assert.Equal(t, 5, res.Inserted)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 3, fl.pageCalls, "page size 2 over 5 intents")

	max, err := st.MaxIntentID()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), max)
}

func TestBackfillPicksUpOnlyMissingIntents(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	for id := uint64(1); id <= 103; id++ {
		fl.intents[id] = pbIntent(id, expiry)
	}
	fl.intents[102].Fulfilled = true

	st := newTestStore(t)
	// Mirror already holds 1..100.
	now := time.Now()
	for id := uint64(1); id <= 100; id++ {
		require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[id], now)))
	}

	b := sync.NewBackfiller(fl, st, 50, 0, zerolog.Nop())
	res, err := b.Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(100), res.LocalMax)
	assert.Equal(t, uint64(103), res.RemoteMax)
	assert.Equal(t, 3, res.Fetched)
	assert.Equal(t, 3, res.Inserted)

	got, err := st.GetIntent(102)
	require.NoError(t, err)
	assert.True(t, got.Fulfilled, "backfilled intent carries remote flags")
}

func TestBackfillSurvivesRemoteIDGaps(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	// The ledger never minted intent 2, so listing offsets and ids diverge.
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{
		1: pbIntent(1, expiry),
		3: pbIntent(3, expiry),
		4: pbIntent(4, expiry),
	}}

	st := newTestStore(t)
	now := time.Now()
	require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[1], now)))
	require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[3], now)))

	b := sync.NewBackfiller(fl, st, 50, 0, zerolog.Nop())
	res, err := b.Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(3), res.LocalMax)
	assert.Equal(t, uint64(4), res.RemoteMax)
	assert.Equal(t, 1, res.Fetched)
	assert.Equal(t, 1, res.Inserted)

	_, err = st.GetIntent(4)
	require.NoError(t, err, "intent above the gap must be mirrored")
}

func TestBackfillNoopWhenConverged(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{
		1: pbIntent(1, expiry),
	}}
	st := newTestStore(t)
	require.NoError(t, st.UpsertIntent(ledger.ToBundle(fl.intents[1], time.Now())))

	b := sync.NewBackfiller(fl, st, 50, 0, zerolog.Nop())
	res, err := b.Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Fetched)
	assert.Equal(t, 0, fl.pageCalls)
}

func TestBackfillEmptyLedger(t *testing.T) {
	fl := &fakeLedger{intents: map[uint64]*intentspb.Intent{}}
	st := newTestStore(t)

	b := sync.NewBackfiller(fl, st, 50, 0, zerolog.Nop())
	res, err := b.Backfill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.RemoteMax)
	assert.Equal(t, 0, res.Fetched)
}
