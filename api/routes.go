package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes for the status server.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/intent", s.handleIntent)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chainStatus is one chain's cursor in the status snapshot.
type chainStatus struct {
	ChainID          uint64 `json:"chain_id"`
	LastCheckedBlock uint64 `json:"last_checked_block"`
}

// statusResponse is the /api/v1/status payload.
type statusResponse struct {
	MaxIntentID      uint64        `json:"max_intent_id"`
	UnlinkedFills    int64         `json:"unlinked_fills"`
	UnlinkedDeposits int64         `json:"unlinked_deposits"`
	Chains           []chainStatus `json:"chains"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	maxID, err := s.store.MaxIntentID()
	if err != nil {
		writeError(w, err)
		return
	}
	fills, err := s.store.CountUnlinkedFillEvents()
	if err != nil {
		writeError(w, err)
		return
	}
	deposits, err := s.store.CountUnlinkedDepositEvents()
	if err != nil {
		writeError(w, err)
		return
	}
	cursors, err := s.store.CursorSnapshot()
	if err != nil {
		writeError(w, err)
		return
	}

	resp := statusResponse{
		MaxIntentID:      maxID,
		UnlinkedFills:    fills,
		UnlinkedDeposits: deposits,
		Chains:           make([]chainStatus, 0, len(cursors)),
	}
	for _, c := range cursors {
		resp.Chains = append(resp.Chains, chainStatus{
			ChainID:          c.ChainID,
			LastCheckedBlock: c.LastCheckedBlock,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// intentResponse is the /api/v1/intent payload: the stored row plus the
// derived display status.
type intentResponse struct {
	ID                  uint64  `json:"id"`
	UserAddress         string  `json:"user_address"`
	Expiry              int64   `json:"expiry"`
	DestinationChainID  uint64  `json:"destination_chain_id"`
	DestinationUniverse string  `json:"destination_universe"`
	Nonce               uint64  `json:"nonce"`
	Status              string  `json:"status"`
	FulfilledBy         *string `json:"fulfilled_by,omitempty"`
	FulfilledAt         int64   `json:"fulfilled_at,omitempty"`
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("id")
	if v == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	intent, err := s.store.GetIntent(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "intent not found"})
		return
	}

	writeJSON(w, http.StatusOK, intentResponse{
		ID:                  intent.ID,
		UserAddress:         intent.UserAddress,
		Expiry:              intent.Expiry,
		DestinationChainID:  intent.DestinationChainID,
		DestinationUniverse: intent.DestinationUniverse,
		Nonce:               intent.Nonce,
		Status:              string(intent.DisplayStatus(time.Now())),
		FulfilledBy:         intent.FulfilledBy,
		FulfilledAt:         intent.FulfilledAt,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
