package sync

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/envelope"
	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/store"
)

// ScanResult summarizes one settlement scan pass.
type ScanResult struct {
	Transactions int
	Fills        int
	Deposits     int
}

// SettlementScanner mirrors settlement evidence from the ledger's
// transaction history. Rows are keyed by the committed transaction hash and
// never change once written, so rescanning the same window is free.
type SettlementScanner struct {
	ledger LedgerClient
	store  *store.Store
	logger zerolog.Logger
}

// NewSettlementScanner creates a settlement scanner.
func NewSettlementScanner(lc LedgerClient, st *store.Store, log zerolog.Logger) *SettlementScanner {
	return &SettlementScanner{
		ledger: lc,
		store:  st,
		logger: logger.Component(log, "settlement_scanner"),
	}
}

// Scan searches recent settlement transactions, decodes their envelopes and
// records every packet. Envelopes that fail to decode contribute nothing
// and are skipped silently; a transaction search failure aborts the pass.
func (s *SettlementScanner) Scan(ctx context.Context) (*ScanResult, error) {
	txs, err := s.ledger.SearchSettlementTxs(ctx)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{}
	for _, t := range txs {
		packets := envelope.Decode(t.Raw)
		if len(packets) == 0 {
			continue
		}
		result.Transactions++

		for _, p := range packets {
			switch p.Kind {
			case envelope.PacketFill:
				row := ledger.FillRow(t.Hash, &p)
				if err := s.store.InsertFillTransaction(row); err != nil {
					return result, err
				}
				result.Fills++
			case envelope.PacketDeposit:
				row := ledger.DepositRow(t.Hash, &p)
				if err := s.store.InsertDepositTransaction(row); err != nil {
					return result, err
				}
				result.Deposits++
			}
		}
	}

	if result.Fills > 0 || result.Deposits > 0 {
		s.logger.Info().
			Int("transactions", result.Transactions).
			Int("fills", result.Fills).
			Int("deposits", result.Deposits).
			Msg("settlement scan stored packets")
	}

	return result, nil
}
