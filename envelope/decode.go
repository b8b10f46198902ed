// Package envelope decodes raw Cosmos transaction bytes into settlement
// packets. Transaction search returns opaque envelope bytes; this package
// peels them open without a full codec registry, since only one message
// type matters here.
package envelope

import (
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/arcana-labs/intentsync/pkg/intentspb"
)

// MsgSettleTypeURL is the Any type URL of settlement messages.
const MsgSettleTypeURL = "/intents.v1.MsgSettle"

// PacketKind discriminates the two settlement packet variants.
type PacketKind string

const (
	PacketFill    PacketKind = "fill"
	PacketDeposit PacketKind = "deposit"
)

// SettlementPacket is one normalized settlement payload extracted from an
// envelope. Address and hash fields stay raw bytes; callers decide the
// display encoding.
type SettlementPacket struct {
	Kind            PacketKind
	IntentID        uint64
	Signer          string
	ChainID         uint64
	Universe        intentspb.Universe
	FillerAddress   []byte
	TransactionHash []byte
	GasRefunded     bool
}

// Decode extracts every settlement packet from raw envelope bytes. It never
// returns an error: bytes that do not parse as a transaction, messages of
// other types, and unreadable payloads are all silently skipped, so one
// malformed envelope cannot stall a scan.
func Decode(raw []byte) []SettlementPacket {
	body := decodeBody(raw)
	if body == nil {
		return nil
	}

	var packets []SettlementPacket
	for _, anyMsg := range body.Messages {
		if anyMsg == nil || anyMsg.TypeUrl != MsgSettleTypeURL {
			continue
		}

		var msg intentspb.MsgSettle
		if err := msg.Unmarshal(anyMsg.Value); err != nil {
			continue
		}

		switch p := msg.Packet.(type) {
		case *intentspb.MsgSettle_Fill:
			if p.Fill == nil {
				continue
			}
			packets = append(packets, SettlementPacket{
				Kind:            PacketFill,
				IntentID:        p.Fill.GetId(),
				Signer:          msg.GetSigner(),
				ChainID:         msg.GetTxChainId(),
				Universe:        msg.GetTxUniverse(),
				FillerAddress:   p.Fill.GetFillerAddress(),
				TransactionHash: p.Fill.GetTransactionHash(),
			})
		case *intentspb.MsgSettle_Deposit:
			if p.Deposit == nil {
				continue
			}
			packets = append(packets, SettlementPacket{
				Kind:        PacketDeposit,
				IntentID:    p.Deposit.GetId(),
				Signer:      msg.GetSigner(),
				ChainID:     msg.GetTxChainId(),
				Universe:    msg.GetTxUniverse(),
				GasRefunded: p.Deposit.GetGasRefunded(),
			})
		}
	}
	return packets
}

// decodeBody tries the two envelope layouts seen in the wild: a fully
// decoded Tx first, then TxRaw with nested body bytes.
func decodeBody(raw []byte) *sdktx.TxBody {
	if len(raw) == 0 {
		return nil
	}

	var full sdktx.Tx
	if err := full.Unmarshal(raw); err == nil && full.Body != nil && len(full.Body.Messages) > 0 {
		return full.Body
	}

	var txRaw sdktx.TxRaw
	if err := txRaw.Unmarshal(raw); err != nil || len(txRaw.BodyBytes) == 0 {
		return nil
	}

	var body sdktx.TxBody
	if err := body.Unmarshal(txRaw.BodyBytes); err != nil {
		return nil
	}
	return &body
}
