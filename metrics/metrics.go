// Package metrics exposes Prometheus counters and gauges for the sync
// engine. Everything is registered on the default registry and served by
// the status server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicksTotal counts completed orchestrator ticks.
	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "ticks_total",
		Help:      "Completed sync ticks.",
	})

	// PhaseErrors counts per-phase failures that were logged and skipped.
	PhaseErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "phase_errors_total",
		Help:      "Sync phase failures, by phase.",
	}, []string{"phase"})

	// IntentsBackfilled counts intents inserted by backfill.
	IntentsBackfilled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "intents_backfilled_total",
		Help:      "Intents inserted by backfill.",
	})

	// IntentsReconciled counts intents updated by the reconciler.
	IntentsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "intents_reconciled_total",
		Help:      "Intents whose settlement flags changed during reconcile.",
	})

	// EventsStored counts stored EVM settlement events, by chain and kind.
	EventsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "evm_events_stored_total",
		Help:      "EVM settlement events stored, by chain and kind.",
	}, []string{"chain_id", "kind"})

	// EventsLinked counts events attached to intents by the linker.
	EventsLinked = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "intentsync",
		Name:      "events_linked_total",
		Help:      "EVM events linked to intents, by kind.",
	}, []string{"kind"})

	// UnlinkedEvents gauges the current unlinked backlog, by kind.
	UnlinkedEvents = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "intentsync",
		Name:      "unlinked_events",
		Help:      "EVM events not yet linked to an intent, by kind.",
	}, []string{"kind"})

	// ChainCursor gauges the last checked block per chain.
	ChainCursor = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "intentsync",
		Name:      "chain_cursor_block",
		Help:      "Last fully synced block, by chain.",
	}, []string{"chain_id"})
)
