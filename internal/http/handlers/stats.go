package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/platedash/admin-api/internal/http/respond"
	"github.com/platedash/admin-api/internal/stats"
)

// StatsHandler serves the statistics dashboard snapshot. The snapshot is
// fixed at startup; there is nothing to compute per request.
type StatsHandler struct {
	snapshot stats.Snapshot
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(snapshot stats.Snapshot) *StatsHandler {
	return &StatsHandler{snapshot: snapshot}
}

// Register attaches the dashboard route to the router.
func (h *StatsHandler) Register(r *mux.Router) {
	r.HandleFunc("/stats/dashboard", h.handleDashboard).Methods(http.MethodGet)
}

func (h *StatsHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.snapshot)
}
