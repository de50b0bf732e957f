package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// handleRandomAd returns one servable ad. It is public.
func (h *Handler) handleRandomAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.Ads.RandomAd(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", ad)
}

// handleListAds pages the caller's ads. The optional status query selects
// live, paused or expired ads.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.svc.Ads.ListUserAds(r.Context(), actorFrom(r.Context()), port.AdListReq{
		Status: domain.AdStatus(r.URL.Query().Get("status")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", resp)
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req port.CreateAdReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	purchase, err := h.svc.Ads.CreateAd(r.Context(), actorFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusCreated, "ad created", purchase)
}

func (h *Handler) handlePauseAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.Ads.PauseAd(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "adID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "ad paused", ad)
}

func (h *Handler) handleResumeAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.Ads.ResumeAd(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "adID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "ad resumed", ad)
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ads.DeleteAd(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "adID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "ad deleted", nil)
}

func (h *Handler) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.svc.Ads.VerifyPayment(r.Context(), actorFrom(r.Context()), chi.URLParam(r, "orderID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "payment status updated", payment)
}

// handleQuote prices a service: ?name=ads&day=3. It is public.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "day")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	quote, err := h.svc.Prices.Quote(r.Context(), r.URL.Query().Get("name"), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, http.StatusOK, "", quote)
}
