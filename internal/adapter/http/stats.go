package httpadapter

import (
	"fmt"
	"net/http"

	"foodshare/internal/core/domain"
)

// handlePointHistory returns the caller's ledger page and balance.
func (h *Handler) handlePointHistory(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.svc.Points.History(r.Context(), actorFrom(r.Context()), page, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", resp)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	board, err := h.svc.Points.Leaderboard(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", board)
}

// handleAnalyticsSummary returns platform totals to admins.
func (h *Handler) handleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Analytics.Summary(r.Context(), actorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", sum)
}

// handleRunSweep triggers an archival sweep outside the schedule.
func (h *Handler) handleRunSweep(w http.ResponseWriter, r *http.Request) {
	if !actorFrom(r.Context()).IsAdmin() {
		h.writeError(w, r, fmt.Errorf("%w: admin access required", domain.ErrForbidden))
		return
	}
	res, err := h.svc.Sweeper.Run(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "sweep finished", res)
}
