package evm_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/chains/evm"
	"github.com/arcana-labs/intentsync/config"
	"github.com/arcana-labs/intentsync/db"
	"github.com/arcana-labs/intentsync/store"
)

// fakeRPC serves a fixed head and a canned log set, recording the windows
// it was queried with.
type fakeRPC struct {
	head    uint64
	logs    []types.Log
	windows [][2]uint64
}

func (f *fakeRPC) BlockNumber(ctx context.Context) (uint64, error) {
	return f.head, nil
}

func (f *fakeRPC) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	from := q.FromBlock.Uint64()
	to := q.ToBlock.Uint64()
	f.windows = append(f.windows, [2]uint64{from, to})

	var out []types.Log
	for _, l := range f.logs {
		if l.BlockNumber >= from && l.BlockNumber <= to {
			out = append(out, l)
		}
	}
	return out, nil
}

func newSyncer(t *testing.T, rpc *fakeRPC, chain config.ChainConfig) (*evm.Syncer, *store.Store) {
	t.Helper()
	database, err := db.OpenInMemory(true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	st := store.New(database.Client())
	client := evm.NewClient(rpc, zerolog.Nop())
	return evm.NewSyncer(chain, client, st, 0, zerolog.Nop()), st
}

func testChain() config.ChainConfig {
	return config.ChainConfig{
		ChainID:         11155111,
		ContractAddress: "0x61B6F9A1eAeB0e169246d4C8Ed73f183c6fC63bA",
		DeploymentBlock: 100,
		BatchSize:       50,
	}
}

func makeFillLog(block uint64, index uint) types.Log {
	data := make([]byte, 64)
	return types.Log{
		Topics:      []ethcommon.Hash{evm.FillTopic, ethcommon.HexToHash("0xabcd")},
		Data:        data,
		TxHash:      ethcommon.BigToHash(ethcommon.Big1),
		Index:       index,
		BlockNumber: block,
	}
}

func TestSyncOnceStartsAtDeploymentBlock(t *testing.T) {
	rpc := &fakeRPC{head: 120, logs: []types.Log{makeFillLog(110, 0)}}
	syncer, st := newSyncer(t, rpc, testChain())

	res, err := syncer.SyncOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Fills)
	assert.Equal(t, uint64(120), res.ToBlock)
	require.Len(t, rpc.windows, 1)
	assert.Equal(t, [2]uint64{100, 120}, rpc.windows[0])

	block, found, err := st.GetCursor(11155111)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(120), block)
}

func TestSyncOnceResumesAfterCursor(t *testing.T) {
	rpc := &fakeRPC{head: 300}
	syncer, st := newSyncer(t, rpc, testChain())

	require.NoError(t, st.AdvanceCursor(11155111, 200))

	res, err := syncer.SyncOnce(context.Background())
	require.NoError(t, err)

	// Windows of batch size 50 from cursor+1 to head.
	assert.Equal(t, [][2]uint64{{201, 250}, {251, 300}}, rpc.windows)
	assert.Equal(t, 2, res.Windows)
	assert.Equal(t, uint64(300), res.ToBlock)
}

func TestSyncOnceNoopWhenCaughtUp(t *testing.T) {
	rpc := &fakeRPC{head: 200}
	syncer, st := newSyncer(t, rpc, testChain())

	require.NoError(t, st.AdvanceCursor(11155111, 200))

	res, err := syncer.SyncOnce(context.Background())
	require.NoError(t, err)

	assert.Empty(t, rpc.windows)
	assert.Equal(t, 0, res.Windows)
	assert.Equal(t, uint64(200), res.ToBlock)

	block, _, err := st.GetCursor(11155111)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), block, "cursor must not move on a no-op pass")
}

func TestSyncOnceMalformedLogHaltsWithoutAdvancing(t *testing.T) {
	bad := types.Log{
		Topics:      []ethcommon.Hash{evm.FillTopic}, // missing request hash
		BlockNumber: 110,
	}
	rpc := &fakeRPC{head: 120, logs: []types.Log{bad}}
	syncer, st := newSyncer(t, rpc, testChain())

	_, err := syncer.SyncOnce(context.Background())
	require.Error(t, err)

	_, found, err := st.GetCursor(11155111)
	require.NoError(t, err)
	assert.False(t, found, "cursor must not advance past a malformed log")
}

func TestSyncOnceStoredEventsSurviveRerun(t *testing.T) {
	rpc := &fakeRPC{head: 120, logs: []types.Log{makeFillLog(110, 0)}}
	chain := testChain()
	syncer, st := newSyncer(t, rpc, chain)

	_, err := syncer.SyncOnce(context.Background())
	require.NoError(t, err)

	// Second pass with the same head is a no-op and duplicates nothing.
	_, err = syncer.SyncOnce(context.Background())
	require.NoError(t, err)

	n, err := st.CountUnlinkedFillEvents()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Wait until the head moves, then only the new window is scanned.
	rpc.head = 140
	res, err := syncer.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{121, 140}, rpc.windows[len(rpc.windows)-1])
	assert.Equal(t, uint64(140), res.ToBlock)
}
