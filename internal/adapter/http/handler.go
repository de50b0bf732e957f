package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"foodshare/internal/core/port"
)

// Services bundles the use cases the HTTP adapter drives.
type Services struct {
	Ads       port.AdUseCase
	Posts     port.PostUseCase
	Points    port.PointsUseCase
	Sweeper   port.SweepUseCase
	Analytics port.AnalyticsUseCase
	Users     port.UserAdminUseCase
	Prices    port.PriceUseCase
	Auth      port.AuthUseCase
}

// Options configures cross-cutting behaviour of the router.
type Options struct {
	// JWTSecret verifies HS256 access tokens.
	JWTSecret string
	// JWTIssuer, when set, must match the iss claim.
	JWTIssuer      string
	AllowedOrigins []string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router; everything except the random
// ad and the price list requires an authenticated actor.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads/random", h.handleRandomAd)
		r.Get("/prices", h.handleQuote)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Get("/ads", h.handleListAds)
			r.Post("/ads", h.handleCreateAd)
			r.Patch("/ads/{adID}/pause", h.handlePauseAd)
			r.Patch("/ads/{adID}/resume", h.handleResumeAd)
			r.Delete("/ads/{adID}", h.handleDeleteAd)
			r.Get("/payments/verify/{orderID}", h.handleVerifyPayment)

			r.Post("/posts", h.handleCreatePost)
			r.Get("/posts", h.handleListPosts)
			r.Get("/posts/user", h.handleMyPosts)
			r.Get("/posts/user/{userID}", h.handleUserPosts)
			r.Patch("/posts/{postID}/claimed", h.handleMarkClaimed)
			r.Post("/posts/{postID}/like", h.handleToggleLike)
			r.Delete("/posts/{postID}", h.handleDeletePost)

			r.Get("/users/point-history", h.handlePointHistory)
			r.Get("/users/leaderboard", h.handleLeaderboard)

			r.Get("/admin/analytics/summary", h.handleAnalyticsSummary)
			r.Get("/admin/analytics/revenue", h.handleRevenue)
			r.Get("/admin/analytics/donations", h.handleDonations)
			r.Get("/admin/users", h.handleListUsers)
			r.Get("/admin/users/search", h.handleSearchUsers)
			r.Patch("/admin/users/{userID}/block", h.handleBlockUser)
			r.Patch("/admin/users/{userID}/unblock", h.handleUnblockUser)
			r.Post("/admin/sweep", h.handleRunSweep)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
