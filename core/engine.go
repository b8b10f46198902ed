// Package core wires the sync passes into one polling engine. Each tick
// runs backfill, reconcile, settlement scan, per-chain EVM sync and linking
// in order; a failing phase is logged and skipped so the remaining phases
// still run.
package core

import (
	"context"
	"strconv"
	gosync "sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arcana-labs/intentsync/chains/evm"
	"github.com/arcana-labs/intentsync/config"
	"github.com/arcana-labs/intentsync/db"
	"github.com/arcana-labs/intentsync/ledger"
	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/metrics"
	"github.com/arcana-labs/intentsync/store"
	"github.com/arcana-labs/intentsync/sync"
)

// Engine owns the full sync pipeline and its tick loop.
type Engine struct {
	cfg    *config.Config
	log    zerolog.Logger
	db     *db.DB
	store  *store.Store
	ledger *ledger.Client

	backfiller *sync.Backfiller
	reconciler *sync.Reconciler
	scanner    *sync.SettlementScanner
	linker     *sync.Linker
	syncers    []*evm.Syncer

	stopCh chan struct{}
	wg     gosync.WaitGroup
}

// NewEngine opens the store, dials the ledger and every configured EVM
// chain, and assembles the pipeline. Any failure here is fatal; after
// startup the engine only logs and retries.
func NewEngine(cfg *config.Config, log zerolog.Logger) (*Engine, error) {
	database, err := db.Open(cfg.StoreDSN, true)
	if err != nil {
		return nil, err
	}
	st := store.New(database.Client())

	lc, err := ledger.New(cfg.LedgerGRPCURLs, cfg.TxSearchPageLimit, log)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		log:    logger.Component(log, "engine"),
		db:     database,
		store:  st,
		ledger: lc,
		backfiller: sync.NewBackfiller(lc, st,
			cfg.BackfillPageSize,
			time.Duration(cfg.BackfillPageDelayMs)*time.Millisecond,
			log),
		reconciler: sync.NewReconciler(lc, st, cfg.SnapshotLimit, log),
		scanner:    sync.NewSettlementScanner(lc, st, log),
		linker:     sync.NewLinker(st, cfg.LinkBatchSize, log),
		stopCh:     make(chan struct{}),
	}

	batchDelay := time.Duration(cfg.EvmBatchDelayMs) * time.Millisecond
	for _, chain := range cfg.Chains {
		client, err := evm.Dial(chain.RPCURL, log)
		if err != nil {
			_ = e.Close()
			return nil, err
		}
		e.syncers = append(e.syncers, evm.NewSyncer(chain, client, st, batchDelay, log))
	}

	return e, nil
}

// Start runs the tick loop until the context is cancelled or Stop is
// called. The first tick fires immediately. An in-flight tick always runs
// to completion before shutdown.
func (e *Engine) Start(ctx context.Context) {
	interval := time.Duration(e.cfg.PollIntervalSeconds) * time.Second

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		e.log.Info().
			Dur("interval", interval).
			Int("chains", len(e.syncers)).
			Msg("sync engine starting")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		e.tick(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-e.stopCh:
				return
			case <-ticker.C:
				e.tick(ctx)
			}
		}
	}()
}

// Stop signals the loop, waits for any in-flight tick and releases the
// ledger and store connections.
func (e *Engine) Stop() error {
	close(e.stopCh)
	e.wg.Wait()
	e.log.Info().Msg("sync engine stopped")
	return e.Close()
}

// Close releases connections without waiting for the loop.
func (e *Engine) Close() error {
	if e.ledger != nil {
		_ = e.ledger.Close()
	}
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

// Store exposes the repository for the status server.
func (e *Engine) Store() *store.Store {
	return e.store
}

// tick runs one full pass of every phase in order. Phase failures are
// counted and logged but never abort the tick: a down EVM endpoint must not
// stop ledger mirroring, and vice versa.
func (e *Engine) tick(ctx context.Context) {
	if res, err := e.backfiller.Backfill(ctx); err != nil {
		metrics.PhaseErrors.WithLabelValues("backfill").Inc()
		e.log.Error().Err(err).Msg("backfill failed")
	} else {
		metrics.IntentsBackfilled.Add(float64(res.Inserted))
	}

	if res, err := e.reconciler.Reconcile(ctx, time.Now()); err != nil {
		metrics.PhaseErrors.WithLabelValues("reconcile").Inc()
		e.log.Error().Err(err).Msg("reconcile failed")
	} else {
		metrics.IntentsReconciled.Add(float64(res.Updated))
	}

	if _, err := e.scanner.Scan(ctx); err != nil {
		metrics.PhaseErrors.WithLabelValues("settlement_scan").Inc()
		e.log.Error().Err(err).Msg("settlement scan failed")
	}

	e.syncChains(ctx)

	if res, err := e.linker.Link(ctx); err != nil {
		metrics.PhaseErrors.WithLabelValues("link").Inc()
		e.log.Error().Err(err).Msg("link failed")
	} else {
		metrics.EventsLinked.WithLabelValues("fill").Add(float64(res.LinkedFills))
		metrics.EventsLinked.WithLabelValues("deposit").Add(float64(res.LinkedDeposits))
		metrics.UnlinkedEvents.WithLabelValues("fill").Set(float64(res.RemainingFills))
		metrics.UnlinkedEvents.WithLabelValues("deposit").Set(float64(res.RemainingDeposits))
	}

	metrics.TicksTotal.Inc()
}

// syncChains runs every chain syncer concurrently. One chain failing only
// skips that chain for this tick; the others still advance their cursors.
func (e *Engine) syncChains(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range e.syncers {
		s := s
		g.Go(func() error {
			chainLabel := strconv.FormatUint(s.ChainID(), 10)
			res, err := s.SyncOnce(gctx)
			if err != nil {
				metrics.PhaseErrors.WithLabelValues("evm_sync").Inc()
				e.log.Error().Err(err).Uint64("chain_id", s.ChainID()).Msg("evm sync failed")
				return nil
			}
			metrics.EventsStored.WithLabelValues(chainLabel, "fill").Add(float64(res.Fills))
			metrics.EventsStored.WithLabelValues(chainLabel, "deposit").Add(float64(res.Deposits))
			metrics.ChainCursor.WithLabelValues(chainLabel).Set(float64(res.ToBlock))
			return nil
		})
	}

	_ = g.Wait()
}
