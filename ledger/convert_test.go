package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/envelope"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
)

func TestUniverseName(t *testing.T) {
	assert.Equal(t, "evm", UniverseName(intentspb.Universe_UNIVERSE_EVM))
	assert.Equal(t, "svm", UniverseName(intentspb.Universe_UNIVERSE_SVM))
	assert.Equal(t, "wasm", UniverseName(intentspb.Universe_UNIVERSE_WASM))
	assert.Equal(t, "unspecified", UniverseName(intentspb.Universe_UNIVERSE_UNSPECIFIED))
	assert.Equal(t, "unspecified", UniverseName(intentspb.Universe(99)))
}

func TestToBundle(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	solver := make([]byte, 20)
	solver[19] = 0x05

	in := &intentspb.Intent{
		Id:                  7,
		UserAddress:         []byte{0xaa},
		Expiry:              uint64(now.Unix() + 100),
		CreationBlock:       55,
		DestinationChainId:  11155111,
		DestinationUniverse: intentspb.Universe_UNIVERSE_EVM,
		Nonce:               7,
		Fulfilled:           true,
		FulfilledBy:         solver,
		FulfilledAt:         uint64(now.Unix()),
		Sources: []*intentspb.Source{
			{Universe: intentspb.Universe_UNIVERSE_SVM, ChainId: 0, Value: []byte{0x01, 0x00}, Status: 2, RequiredFee: []byte{0x0a}},
		},
		Destinations: []*intentspb.Destination{
			{TokenAddress: []byte{0xbb}, Value: []byte{0xff}},
		},
		SignatureData: []*intentspb.SignatureData{
			{Universe: intentspb.Universe_UNIVERSE_EVM, Signer: []byte{0xcc}, Signature: []byte{0x01, 0x02}, Hash: []byte{0x09}},
		},
	}

	b := ToBundle(in, now)

	assert.Equal(t, uint64(7), b.Intent.ID)
	assert.Equal(t, "evm", b.Intent.DestinationUniverse)
	assert.Equal(t, now.Unix()+100, b.Intent.Expiry)
	assert.True(t, b.Intent.Fulfilled)
	require.NotNil(t, b.Intent.FulfilledBy)
	assert.Equal(t, "0x0000000000000000000000000000000000000005", *b.Intent.FulfilledBy)

	require.Len(t, b.Sources, 1)
	assert.Equal(t, "svm", b.Sources[0].Universe)
	assert.Equal(t, "256", b.Sources[0].Value)
	assert.Equal(t, "10", b.Sources[0].RequiredFee)
	assert.Equal(t, uint64(7), b.Sources[0].IntentID)

	require.Len(t, b.Destinations, 1)
	assert.Equal(t, "255", b.Destinations[0].Value)

	require.Len(t, b.Signatures, 1)
	assert.Equal(t, "0x0102", b.Signatures[0].Signature)
	assert.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000000009",
		b.Signatures[0].Hash)
}

func TestToBundleWithoutSolver(t *testing.T) {
	b := ToBundle(&intentspb.Intent{Id: 1}, time.Now())
	assert.Nil(t, b.Intent.FulfilledBy)
}

func TestSettlementRows(t *testing.T) {
	fill := FillRow("HASH1", &envelope.SettlementPacket{
		Kind:            envelope.PacketFill,
		IntentID:        3,
		ChainID:         1,
		Universe:        intentspb.Universe_UNIVERSE_EVM,
		FillerAddress:   []byte{0x01},
		TransactionHash: []byte{0x02},
	})
	assert.Equal(t, "HASH1", fill.CosmosHash)
	assert.Equal(t, uint64(3), fill.IntentID)
	assert.Equal(t, "evm", fill.Universe)
	assert.Equal(t, "0x0000000000000000000000000000000000000001", fill.FillerAddress)

	dep := DepositRow("HASH2", &envelope.SettlementPacket{
		Kind:        envelope.PacketDeposit,
		IntentID:    4,
		GasRefunded: true,
	})
	assert.Equal(t, "HASH2", dep.CosmosHash)
	assert.True(t, dep.GasRefunded)
}
