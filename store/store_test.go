package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/db"
	"github.com/arcana-labs/intentsync/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	database, err := db.OpenInMemory(true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return store.New(database.Client())
}

func testBundle(id uint64) *store.IntentBundle {
	return &store.IntentBundle{
		Intent: store.Intent{
			ID:                  id,
			UserAddress:         "0x1111111111111111111111111111111111111111",
			Expiry:              time.Now().Unix() + 3600,
			CreationBlock:       100,
			DestinationChainID:  11155111,
			DestinationUniverse: "evm",
			Nonce:               id,
		},
		Sources: []store.IntentSource{
			{Universe: "evm", ChainID: 421614, TokenAddress: "0xaaaa", Value: "1000", Status: 1, RequiredFee: "10"},
			{Universe: "svm", ChainID: 0, TokenAddress: "0xbbbb", Value: "2000", Status: 1, RequiredFee: "20"},
		},
		Destinations: []store.IntentDestination{
			{TokenAddress: "0xcccc", Value: "2900"},
		},
		Signatures: []store.IntentSignature{
			{Universe: "evm", Signer: "0x2222", Signature: "0xdead", Hash: "0xhash1"},
		},
	}
}

func TestUpsertIntentInsertsBundle(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertIntent(testBundle(1)))

	got, err := s.GetIntent(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)
	assert.False(t, got.Fulfilled)

	sources, err := s.SourcesByIntent(1)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	// Insertion order is leg order.
	assert.Equal(t, "1000", sources[0].Value)
	assert.Equal(t, "2000", sources[1].Value)

	dests, err := s.DestinationsByIntent(1)
	require.NoError(t, err)
	assert.Len(t, dests, 1)

	sigs, err := s.SignaturesByIntent(1)
	require.NoError(t, err)
	assert.Len(t, sigs, 1)
}

func TestUpsertIntentIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.UpsertIntent(testBundle(1)))
	require.NoError(t, s.UpsertIntent(testBundle(1)))

	sources, err := s.SourcesByIntent(1)
	require.NoError(t, err)
	assert.Len(t, sources, 2, "children must be replaced, not duplicated")

	max, err := s.MaxIntentID()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), max)
}

func TestUpsertIntentUpdatesOnlyMutableColumns(t *testing.T) {
	s := newTestStore(t)

	first := testBundle(1)
	require.NoError(t, s.UpsertIntent(first))

	solver := "0x3333333333333333333333333333333333333333"
	second := testBundle(1)
	second.Intent.UserAddress = "0x9999999999999999999999999999999999999999"
	second.Intent.Nonce = 42
	second.Intent.Fulfilled = true
	second.Intent.FulfilledBy = &solver
	second.Intent.FulfilledAt = 12345
	require.NoError(t, s.UpsertIntent(second))

	got, err := s.GetIntent(1)
	require.NoError(t, err)

	assert.True(t, got.Fulfilled)
	require.NotNil(t, got.FulfilledBy)
	assert.Equal(t, solver, *got.FulfilledBy)
	assert.Equal(t, int64(12345), got.FulfilledAt)

	// Immutable columns keep their first-seen values.
	assert.Equal(t, first.Intent.UserAddress, got.UserAddress)
	assert.Equal(t, first.Intent.Nonce, got.Nonce)
}

func TestMaxIntentIDEmpty(t *testing.T) {
	s := newTestStore(t)

	max, err := s.MaxIntentID()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), max)
}

func TestOpenAndPendingIntents(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()

	open := testBundle(1)
	require.NoError(t, s.UpsertIntent(open))

	expired := testBundle(2)
	expired.Intent.Nonce = 2
	expired.Intent.Expiry = now.Unix() - 100
	require.NoError(t, s.UpsertIntent(expired))

	done := testBundle(3)
	done.Intent.Nonce = 3
	done.Intent.Fulfilled = true
	require.NoError(t, s.UpsertIntent(done))

	pending, err := s.PendingIntents(now)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint64(1), pending[0].ID)

	// Expired intents stay open until a terminal flag arrives.
	openSet, err := s.OpenIntents()
	require.NoError(t, err)
	require.Len(t, openSet, 2)
	assert.Equal(t, uint64(1), openSet[0].ID)
	assert.Equal(t, uint64(2), openSet[1].ID)
}

func TestInsertFillTransactionConflictIsNoop(t *testing.T) {
	s := newTestStore(t)

	first := &store.FillTransaction{
		CosmosHash:    "ABC123",
		IntentID:      7,
		ChainID:       11155111,
		Universe:      "evm",
		FillerAddress: "0xsolver",
		TxHash:        "0xtx",
	}
	require.NoError(t, s.InsertFillTransaction(first))

	conflicting := &store.FillTransaction{
		CosmosHash:    "ABC123",
		IntentID:      7,
		FillerAddress: "0xother",
	}
	require.NoError(t, s.InsertFillTransaction(conflicting))

	rows, err := s.FillTransactionsByIntent(7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0xsolver", rows[0].FillerAddress, "conflicting insert must not overwrite")
}

func TestInsertDepositTransactionConflictIsNoop(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.InsertDepositTransaction(&store.DepositTransaction{
		CosmosHash: "DEF456", IntentID: 9, ChainID: 1, Universe: "evm", GasRefunded: true,
	}))
	require.NoError(t, s.InsertDepositTransaction(&store.DepositTransaction{
		CosmosHash: "DEF456", IntentID: 9, GasRefunded: false,
	}))

	rows, err := s.DepositTransactionsByIntent(9)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].GasRefunded)
}

func TestCursorMonotonic(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.GetCursor(1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.AdvanceCursor(1, 100))
	block, found, err := s.GetCursor(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(100), block)

	// Lower values never move the cursor backwards.
	require.NoError(t, s.AdvanceCursor(1, 50))
	block, _, err = s.GetCursor(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), block)

	require.NoError(t, s.AdvanceCursor(1, 150))
	block, _, err = s.GetCursor(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), block)
}

func TestSaveEventBatchAndResume(t *testing.T) {
	s := newTestStore(t)

	fills := []store.EvmFillEvent{
		{TxHash: "0xt1", LogIndex: 0, RequestHash: "0xh1", ChainID: 1, BlockNumber: 10, SolverAddress: "0xs", FromAddress: "0xf"},
	}
	deposits := []store.EvmDepositEvent{
		{TxHash: "0xt1", LogIndex: 1, RequestHash: "0xh1", ChainID: 1, BlockNumber: 10, FromAddress: "0xf", GasRefunded: true},
	}

	require.NoError(t, s.SaveEventBatch(1, 20, fills, deposits))

	block, found, err := s.GetCursor(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(20), block)

	// Replaying the same window changes nothing visible.
	require.NoError(t, s.SaveEventBatch(1, 20, fills, deposits))

	unlinked, err := s.UnlinkedFillEvents(10)
	require.NoError(t, err)
	assert.Len(t, unlinked, 1)

	unlinkedDeposits, err := s.UnlinkedDepositEvents(10)
	require.NoError(t, err)
	assert.Len(t, unlinkedDeposits, 1)
}

func TestEventUpsertNeverClobbersLink(t *testing.T) {
	s := newTestStore(t)

	fills := []store.EvmFillEvent{
		{TxHash: "0xt1", LogIndex: 0, RequestHash: "0xh1", ChainID: 1, BlockNumber: 10},
	}
	require.NoError(t, s.SaveEventBatch(1, 10, fills, nil))

	unlinked, err := s.UnlinkedFillEvents(10)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	require.NoError(t, s.LinkFillEvent(unlinked[0].ID, 7))

	// Re-sync the same event with no intent id; the link must survive.
	require.NoError(t, s.SaveEventBatch(1, 10, fills, nil))

	remaining, err := s.UnlinkedFillEvents(10)
	require.NoError(t, err)
	assert.Empty(t, remaining, "re-synced event must keep its intent link")

	n, err := s.CountUnlinkedFillEvents()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestLinkBySignatureHash(t *testing.T) {
	s := newTestStore(t)

	b := testBundle(5)
	b.Signatures[0].Hash = "0xreq5"
	require.NoError(t, s.UpsertIntent(b))

	id, found, err := s.IntentIDBySignatureHash("0xreq5")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(5), id)

	_, found, err = s.IntentIDBySignatureHash("0xunknown")
	require.NoError(t, err)
	assert.False(t, found)
}
