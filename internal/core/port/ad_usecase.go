package port

import (
	"context"

	"foodshare/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// CreateAd buys an ad slot: it opens a pending payment order at the
	// gateway and stores a live ad linked to it.
	CreateAd(ctx context.Context, actor domain.Actor, req CreateAdReq) (*AdPurchase, error)

	// PauseAd freezes a live ad's runtime. Owners and admins only.
	PauseAd(ctx context.Context, actor domain.Actor, adID string) (*domain.Ad, error)

	// ResumeAd restarts a paused ad and recomputes its end date from the
	// remaining budget. Owners and admins only.
	ResumeAd(ctx context.Context, actor domain.Actor, adID string) (*domain.Ad, error)

	// DeleteAd archives then removes an ad in any state.
	DeleteAd(ctx context.Context, actor domain.Actor, adID string) error

	// ListUserAds sweeps the actor's expired ads, then returns a page of
	// their ads with per-status counts.
	ListUserAds(ctx context.Context, actor domain.Actor, req AdListReq) (*AdListResp, error)

	// RandomAd sweeps all expired ads and returns one random servable ad.
	RandomAd(ctx context.Context) (*AdView, error)

	// VerifyPayment pulls the order status from the gateway and mirrors it
	// onto the payment and its ad. Only the buyer and admins may verify.
	VerifyPayment(ctx context.Context, actor domain.Actor, orderID string) (*domain.Payment, error)
}

// CreateAdReq carries the purchase form.
type CreateAdReq struct {
	Content  string `json:"content"`
	MediaURL string `json:"mediaUrl"`
	WebURL   string `json:"webUrl"`
	Duration int    `json:"duration"`
}

// AdPurchase is returned to the client to complete checkout.
type AdPurchase struct {
	PaymentSessionID string     `json:"paymentSessionId"`
	OrderID          string     `json:"orderId"`
	Ad               *domain.Ad `json:"ad"`
}

// AdListReq selects a page of the actor's ads. An empty Status lists every
// ad in the live collection; "expired" reads the archive.
type AdListReq struct {
	Status domain.AdStatus
	Page   int
	Limit  int
}

// AdListResp is one page of ads plus counts per status.
type AdListResp struct {
	Ads   []AdView `json:"ads"`
	Page  Page     `json:"pagination"`
	Stats AdStats  `json:"stats"`
}

// AdView is an ad decorated for display. It is a DTO used by the HTTP layer
// and does not contain domain behaviour.
type AdView struct {
	domain.Ad
	MediaURL       string `json:"mediaUrl,omitempty"`
	RuntimeMinutes int64  `json:"runtimeMinutes"`
}
