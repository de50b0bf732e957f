package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodshare/internal/core/domain"
)

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.svc.Users.ListUsers(r.Context(), actorFrom(r.Context()), page, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", resp)
}

// handleSearchUsers matches ?query= against email and phone.
func (h *Handler) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users.SearchUsers(r.Context(), actorFrom(r.Context()), r.URL.Query().Get("query"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", users)
}

func (h *Handler) handleBlockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, true)
}

func (h *Handler) handleUnblockUser(w http.ResponseWriter, r *http.Request) {
	h.setBlocked(w, r, false)
}

func (h *Handler) setBlocked(w http.ResponseWriter, r *http.Request, blocked bool) {
	res, err := h.svc.Users.SetBlocked(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "userID"), blocked)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var msg string
	switch {
	case blocked && res.Changed:
		msg = "User has been blocked"
	case blocked:
		msg = "User is already blocked"
	case res.Changed:
		msg = "User has been unblocked"
	default:
		msg = "User is already unblocked"
	}
	h.ok(w, http.StatusOK, msg, res.User)
}

func (h *Handler) handleRevenue(w http.ResponseWriter, r *http.Request) {
	req, err := seriesParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	points, err := h.svc.Analytics.Revenue(r.Context(), actorFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", points)
}

func (h *Handler) handleDonations(w http.ResponseWriter, r *http.Request) {
	req, err := seriesParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	points, err := h.svc.Analytics.Donations(r.Context(), actorFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", points)
}

// seriesParams reads ?period=&month=&year=.
func seriesParams(r *http.Request) (domain.SeriesSpec, error) {
	month, err := queryInt(r, "month")
	if err != nil {
		return domain.SeriesSpec{}, err
	}
	year, err := queryInt(r, "year")
	if err != nil {
		return domain.SeriesSpec{}, err
	}
	return domain.SeriesSpec{
		Period: domain.Period(r.URL.Query().Get("period")),
		Month:  month,
		Year:   year,
	}, nil
}
