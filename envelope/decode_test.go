package envelope

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcana-labs/intentsync/pkg/intentspb"
)

func settleAny(t *testing.T, msg *intentspb.MsgSettle) *codectypes.Any {
	t.Helper()
	bz, err := msg.Marshal()
	require.NoError(t, err)
	return &codectypes.Any{TypeUrl: MsgSettleTypeURL, Value: bz}
}

func rawTx(t *testing.T, msgs ...*codectypes.Any) []byte {
	t.Helper()
	body := sdktx.TxBody{Messages: msgs}
	bodyBz, err := body.Marshal()
	require.NoError(t, err)
	raw := sdktx.TxRaw{BodyBytes: bodyBz}
	bz, err := raw.Marshal()
	require.NoError(t, err)
	return bz
}

func TestDecodeFillPacket(t *testing.T) {
	msg := &intentspb.MsgSettle{
		Signer:     "cosmos1abc",
		TxChainId:  11155111,
		TxUniverse: intentspb.Universe_UNIVERSE_EVM,
		Packet: &intentspb.MsgSettle_Fill{Fill: &intentspb.FillPacket{
			Id:              42,
			FillerAddress:   []byte{0xaa, 0xbb},
			TransactionHash: []byte{0x01, 0x02},
		}},
	}

	packets := Decode(rawTx(t, settleAny(t, msg)))
	require.Len(t, packets, 1)

	p := packets[0]
	assert.Equal(t, PacketFill, p.Kind)
	assert.Equal(t, uint64(42), p.IntentID)
	assert.Equal(t, "cosmos1abc", p.Signer)
	assert.Equal(t, uint64(11155111), p.ChainID)
	assert.Equal(t, intentspb.Universe_UNIVERSE_EVM, p.Universe)
	assert.Equal(t, []byte{0xaa, 0xbb}, p.FillerAddress)
	assert.Equal(t, []byte{0x01, 0x02}, p.TransactionHash)
}

func TestDecodeDepositPacket(t *testing.T) {
	msg := &intentspb.MsgSettle{
		Signer:     "cosmos1abc",
		TxChainId:  421614,
		TxUniverse: intentspb.Universe_UNIVERSE_EVM,
		Packet: &intentspb.MsgSettle_Deposit{Deposit: &intentspb.DepositPacket{
			Id:          7,
			GasRefunded: true,
		}},
	}

	packets := Decode(rawTx(t, settleAny(t, msg)))
	require.Len(t, packets, 1)

	p := packets[0]
	assert.Equal(t, PacketDeposit, p.Kind)
	assert.Equal(t, uint64(7), p.IntentID)
	assert.True(t, p.GasRefunded)
}

func TestDecodeFullTxEnvelope(t *testing.T) {
	msg := &intentspb.MsgSettle{
		TxChainId: 1,
		Packet:    &intentspb.MsgSettle_Fill{Fill: &intentspb.FillPacket{Id: 1}},
	}

	full := sdktx.Tx{Body: &sdktx.TxBody{Messages: []*codectypes.Any{settleAny(t, msg)}}}
	bz, err := full.Marshal()
	require.NoError(t, err)

	packets := Decode(bz)
	require.Len(t, packets, 1)
	assert.Equal(t, uint64(1), packets[0].IntentID)
}

func TestDecodeSkipsForeignMessages(t *testing.T) {
	settle := &intentspb.MsgSettle{
		Packet: &intentspb.MsgSettle_Fill{Fill: &intentspb.FillPacket{Id: 3}},
	}
	foreign := &codectypes.Any{TypeUrl: "/cosmos.bank.v1beta1.MsgSend", Value: []byte{0x0a, 0x00}}

	packets := Decode(rawTx(t, foreign, settleAny(t, settle)))
	require.Len(t, packets, 1)
	assert.Equal(t, uint64(3), packets[0].IntentID)
}

func TestDecodeNeverErrors(t *testing.T) {
	assert.Nil(t, Decode(nil))
	assert.Nil(t, Decode([]byte{}))
	assert.Nil(t, Decode([]byte("not a transaction at all")))
	assert.Nil(t, Decode([]byte{0xff, 0xff, 0xff, 0xff}))

	// Well-formed envelope carrying a corrupt settle payload.
	corrupt := &codectypes.Any{TypeUrl: MsgSettleTypeURL, Value: []byte{0xff, 0xff}}
	assert.Nil(t, Decode(rawTx(t, corrupt)))
}
