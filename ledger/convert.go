package ledger

import (
	"time"

	"github.com/arcana-labs/intentsync/envelope"
	"github.com/arcana-labs/intentsync/pkg/intentspb"
	"github.com/arcana-labs/intentsync/store"
	"github.com/arcana-labs/intentsync/utils"
)

// UniverseName maps the wire enum onto the lowercase name stored locally.
func UniverseName(u intentspb.Universe) string {
	switch u {
	case intentspb.Universe_UNIVERSE_EVM:
		return "evm"
	case intentspb.Universe_UNIVERSE_SVM:
		return "svm"
	case intentspb.Universe_UNIVERSE_WASM:
		return "wasm"
	default:
		return "unspecified"
	}
}

// ToBundle converts a wire intent into the local storage representation.
// Byte-encoded addresses and hashes become 0x-hex strings; big-integer
// amounts become decimal strings so they survive any column width.
func ToBundle(in *intentspb.Intent, now time.Time) *store.IntentBundle {
	b := &store.IntentBundle{
		Intent: store.Intent{
			ID:                  in.GetId(),
			UserAddress:         utils.HexAddress(in.GetUserAddress()),
			Expiry:              int64(in.GetExpiry()),
			CreationBlock:       in.GetCreationBlock(),
			DestinationChainID:  in.GetDestinationChainId(),
			DestinationUniverse: UniverseName(in.GetDestinationUniverse()),
			Nonce:               in.GetNonce(),
			Deposited:           in.GetDeposited(),
			Fulfilled:           in.GetFulfilled(),
			Refunded:            in.GetRefunded(),
			FulfilledAt:         int64(in.GetFulfilledAt()),
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}

	if by := in.GetFulfilledBy(); len(by) > 0 {
		addr := utils.HexAddress(by)
		b.Intent.FulfilledBy = &addr
	}

	for _, s := range in.GetSources() {
		b.Sources = append(b.Sources, store.IntentSource{
			IntentID:     in.GetId(),
			Universe:     UniverseName(s.GetUniverse()),
			ChainID:      s.GetChainId(),
			TokenAddress: utils.HexAddress(s.GetTokenAddress()),
			Value:        utils.DecimalString(s.GetValue()),
			Status:       s.GetStatus(),
			RequiredFee:  utils.DecimalString(s.GetRequiredFee()),
		})
	}

	for _, d := range in.GetDestinations() {
		b.Destinations = append(b.Destinations, store.IntentDestination{
			IntentID:     in.GetId(),
			TokenAddress: utils.HexAddress(d.GetTokenAddress()),
			Value:        utils.DecimalString(d.GetValue()),
		})
	}

	for _, sig := range in.GetSignatureData() {
		b.Signatures = append(b.Signatures, store.IntentSignature{
			IntentID:  in.GetId(),
			Universe:  UniverseName(sig.GetUniverse()),
			Signer:    utils.HexAddress(sig.GetSigner()),
			Signature: utils.HexBytes(sig.GetSignature()),
			Hash:      utils.HexHash(sig.GetHash()),
		})
	}

	return b
}

// FillRow converts a decoded fill packet into its storage row, keyed by the
// settlement transaction hash.
func FillRow(cosmosHash string, p *envelope.SettlementPacket) *store.FillTransaction {
	return &store.FillTransaction{
		CosmosHash:    cosmosHash,
		IntentID:      p.IntentID,
		ChainID:       p.ChainID,
		Universe:      UniverseName(p.Universe),
		FillerAddress: utils.HexAddress(p.FillerAddress),
		TxHash:        utils.HexHash(p.TransactionHash),
	}
}

// DepositRow converts a decoded deposit packet into its storage row, keyed
// by the settlement transaction hash.
func DepositRow(cosmosHash string, p *envelope.SettlementPacket) *store.DepositTransaction {
	return &store.DepositTransaction{
		CosmosHash:  cosmosHash,
		IntentID:    p.IntentID,
		ChainID:     p.ChainID,
		Universe:    UniverseName(p.Universe),
		GasRefunded: p.GasRefunded,
	}
}
