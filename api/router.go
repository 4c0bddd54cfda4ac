package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/saeidalz13/naval-combat/db/sqlc"
)

type RespHealth struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Matches  int    `json:"matches"`
}

type RespServerStats struct {
	AnalyticsEnabled bool  `json:"analytics_enabled"`
	MatchesCreated   int64 `json:"matches_created"`
	ReplaysCalled    int64 `json:"replays_called"`
	HumanWins        int64 `json:"human_wins"`
	ComputerWins     int64 `json:"computer_wins"`
}

func NewRouter(rp RequestProcessor) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", rp.handleHealth)
	r.Get("/stats", rp.handleStats)
	r.Method(http.MethodGet, "/battleship", rp)

	return r
}

func (rp RequestProcessor) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RespHealth{
		Status:   "ok",
		Sessions: rp.sessionManager.Count(),
		Matches:  rp.matchManager.Count(),
	})
}

func (rp RequestProcessor) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), sqlc.QuerierCtxTimeout)
	defer cancel()

	counts, err := rp.analytics.GetServerCounts(ctx)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("failed to fetch server counts")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch server counts"})
		return
	}

	writeJSON(w, http.StatusOK, RespServerStats{
		AnalyticsEnabled: rp.analytics.Enabled(),
		MatchesCreated:   counts.MatchesCreated,
		ReplaysCalled:    counts.ReplaysCalled,
		HumanWins:        counts.HumanWins,
		ComputerWins:     counts.ComputerWins,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
