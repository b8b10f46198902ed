package sync_test

import (
	"context"
	"encoding/binary"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/db"
	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/store"
)

// fakeLedger serves a fixed intent set, listed in ascending id order. Ids
// need not be dense.
type fakeLedger struct {
	intents map[uint64]*intentspb.Intent
	txs     []ledger.SettlementTx

	pageCalls   int
	intentCalls int
}

func (f *fakeLedger) maxID() uint64 {
	var max uint64
	for id := range f.intents {
		if id > max {
			max = id
		}
	}
	return max
}

func (f *fakeLedger) sortedIDs() []uint64 {
	ids := make([]uint64, 0, len(f.intents))
	for id := range f.intents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *fakeLedger) LatestIntentID(ctx context.Context) (uint64, error) {
	return f.maxID(), nil
}

func (f *fakeLedger) IntentsPage(ctx context.Context, offset, limit uint64) ([]*intentspb.Intent, error) {
	f.pageCalls++
	ids := f.sortedIDs()
	if offset >= uint64(len(ids)) {
		return nil, nil
	}
	end := offset + limit
	if end > uint64(len(ids)) {
		end = uint64(len(ids))
	}
	var out []*intentspb.Intent
	for _, id := range ids[offset:end] {
		out = append(out, f.intents[id])
	}
	return out, nil
}

func (f *fakeLedger) LatestIntents(ctx context.Context, limit uint64) ([]*intentspb.Intent, error) {
	ids := f.sortedIDs()
	var out []*intentspb.Intent
	for i := len(ids) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		out = append(out, f.intents[ids[i]])
	}
	return out, nil
}

func (f *fakeLedger) Intent(ctx context.Context, id uint64) (*intentspb.Intent, error) {
	f.intentCalls++
	in, ok := f.intents[id]
	if !ok {
		return nil, ledger.ErrIntentNotFound
	}
	return in, nil
}

func (f *fakeLedger) SearchSettlementTxs(ctx context.Context) ([]ledger.SettlementTx, error) {
	return f.txs, nil
}

// pbIntent builds a wire intent with one EVM signature whose hash encodes
// the id.
func pbIntent(id uint64, expiry time.Time) *intentspb.Intent {
	return &intentspb.Intent{
		Id:                  id,
		UserAddress:         []byte{0x11, 0x22},
		Expiry:              uint64(expiry.Unix()),
		CreationBlock:       id * 10,
		DestinationChainId:  11155111,
		DestinationUniverse: intentspb.Universe_UNIVERSE_EVM,
		Nonce:               id,
		Sources: []*intentspb.Source{
			{Universe: intentspb.Universe_UNIVERSE_EVM, ChainId: 421614, Value: []byte{0x0f}, Status: 1},
		},
		Destinations: []*intentspb.Destination{
			{Value: []byte{0x0e}},
		},
		SignatureData: []*intentspb.SignatureData{
			{Universe: intentspb.Universe_UNIVERSE_EVM, Hash: requestHash(id)},
		},
	}
}

func requestHash(id uint64) []byte {
	h := make([]byte, 32)
	binary.BigEndian.PutUint64(h[24:], id)
	return h
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	database, err := db.OpenInMemory(true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return store.New(database.Client())
}
