package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// AdsServiceName is the price list entry charged per ad day.
const AdsServiceName = "ads"

// AdSweeper archives a user's expired ads, or everyone's for an empty id.
type AdSweeper interface {
	SweepAds(ctx context.Context, userID string) (int, error)
}

// AdDeps bundles the collaborators of AdUseCase.
type AdDeps struct {
	Ads      port.AdRepository
	Payments port.PaymentRepository
	Prices   port.PriceRepository
	Users    port.UserRepository
	Tx       port.Transactor
	Sweeper  AdSweeper
	Media    port.MediaStore
	Gateway  port.PaymentGateway
	Clock    port.Clock
	Logger   *slog.Logger
	Currency string
}

// AdUseCase is the ad runtime engine. It owns purchase, the live/paused
// state machine with runtime accounting, deletion into the archive, and the
// read paths that sweep expired ads before answering.
type AdUseCase struct {
	ads      port.AdRepository
	payments port.PaymentRepository
	prices   port.PriceRepository
	users    port.UserRepository
	tx       port.Transactor
	sweeper  AdSweeper
	media    port.MediaStore
	gateway  port.PaymentGateway
	clock    port.Clock
	logger   *slog.Logger
	currency string
}

// NewAdUseCase creates a new usecase with the provided collaborators. The
// currency defaults to INR.
func NewAdUseCase(d AdDeps) *AdUseCase {
	if d.Currency == "" {
		d.Currency = "INR"
	}
	return &AdUseCase{
		ads:      d.Ads,
		payments: d.Payments,
		prices:   d.Prices,
		users:    d.Users,
		tx:       d.Tx,
		sweeper:  d.Sweeper,
		media:    d.Media,
		gateway:  d.Gateway,
		clock:    d.Clock,
		logger:   d.Logger,
		currency: d.Currency,
	}
}

// CreateAd validates the purchase, opens a gateway order priced at the
// per-day ad rate and stores the pending payment together with a live ad.
func (u *AdUseCase) CreateAd(ctx context.Context, actor domain.Actor, req port.CreateAdReq) (*port.AdPurchase, error) {
	if strings.TrimSpace(req.Content) == "" || req.MediaURL == "" || req.Duration <= 0 {
		return nil, fmt.Errorf("%w: content, image and ads duration required", domain.ErrInvalidInput)
	}
	mediaKey, ok := u.media.ExtractKey(req.MediaURL)
	if !ok {
		return nil, fmt.Errorf("%w: invalid media URL", domain.ErrInvalidInput)
	}

	price, err := u.prices.GetService(ctx, AdsServiceName)
	if err != nil {
		return nil, fmt.Errorf("advertisement price: %w", err)
	}
	user, err := u.users.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	orderID := newOrderID()
	amount := price.Quote(req.Duration)
	sessionID, err := u.gateway.CreateOrder(ctx, port.Order{
		OrderID:       orderID,
		Amount:        amount,
		Currency:      u.currency,
		CustomerID:    user.ID,
		CustomerName:  user.FullName(),
		CustomerEmail: user.Email,
		CustomerPhone: user.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}
	if sessionID == "" {
		return nil, errors.New("unable to create payment session")
	}

	now := u.clock.Now()
	payment := &domain.Payment{
		OrderID:          orderID,
		PaymentSessionID: sessionID,
		CustomerName:     user.FullName(),
		CustomerEmail:    user.Email,
		CustomerPhone:    user.Phone,
		Amount:           amount,
		Currency:         u.currency,
		Status:           domain.PaymentPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	var ad *domain.Ad
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.payments.CreatePayment(ctx, payment); err != nil {
			return err
		}
		var err error
		ad, err = domain.NewAd(req.Content, mediaKey, req.WebURL, req.Duration, user.ID, payment.ID, now)
		if err != nil {
			return err
		}
		return u.ads.CreateAd(ctx, ad)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("ad purchased", slog.String("ad_id", ad.ID), slog.String("order_id", orderID), slog.Int64("amount", amount))
	return &port.AdPurchase{PaymentSessionID: sessionID, OrderID: orderID, Ad: ad}, nil
}

// PauseAd freezes a live ad's runtime.
func (u *AdUseCase) PauseAd(ctx context.Context, actor domain.Actor, adID string) (*domain.Ad, error) {
	return u.transition(ctx, actor, adID, (*domain.Ad).Pause)
}

// ResumeAd restarts a paused ad with the remaining budget.
func (u *AdUseCase) ResumeAd(ctx context.Context, actor domain.Actor, adID string) (*domain.Ad, error) {
	return u.transition(ctx, actor, adID, (*domain.Ad).Resume)
}

// transition loads the ad, authorizes the actor before looking at the
// state, applies the state change and persists it conditioned on the state
// it was read in.
func (u *AdUseCase) transition(ctx context.Context, actor domain.Actor, adID string, apply func(*domain.Ad, time.Time) error) (*domain.Ad, error) {
	ad, err := u.ads.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(ad.UserID) {
		return nil, fmt.Errorf("%w: not authorized to manage this ad", domain.ErrForbidden)
	}
	from := ad.Status
	if err = apply(ad, u.clock.Now()); err != nil {
		return nil, err
	}
	if err = u.ads.TransitionAd(ctx, ad, from); err != nil {
		return nil, err
	}
	return ad, nil
}

// DeleteAd archives the ad as expired and removes it, whatever its state.
// Runtime is not recomputed.
func (u *AdUseCase) DeleteAd(ctx context.Context, actor domain.Actor, adID string) error {
	return u.tx.WithinTx(ctx, func(ctx context.Context) error {
		ad, err := u.ads.GetAd(ctx, adID)
		if err != nil {
			return err
		}
		if !actor.CanManage(ad.UserID) {
			return fmt.Errorf("%w: not authorized to manage this ad", domain.ErrForbidden)
		}
		if err = u.ads.ArchiveAds(ctx, []domain.Ad{ad.Archived()}); err != nil {
			return err
		}
		return u.ads.DeleteAds(ctx, []string{ad.ID})
	})
}

// ListUserAds sweeps the actor's expired ads and returns one page of their
// ads. Live and paused ads come from the live collection, expired ones from
// the archive; no status lists the whole live collection.
func (u *AdUseCase) ListUserAds(ctx context.Context, actor domain.Actor, req port.AdListReq) (*port.AdListResp, error) {
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, req.Status)
	}
	page, limit, offset, err := port.Normalize(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	if _, err = u.sweeper.SweepAds(ctx, actor.ID); err != nil {
		return nil, err
	}

	q := port.AdQuery{UserID: actor.ID, Status: req.Status, Limit: limit, Offset: offset}
	var (
		ads   []domain.Ad
		total int64
	)
	if req.Status == domain.AdStatusExpired {
		ads, total, err = u.ads.ListArchivedAds(ctx, q)
	} else {
		ads, total, err = u.ads.ListAds(ctx, q)
	}
	if err != nil {
		return nil, err
	}

	stats, err := u.ads.CountAdsByStatus(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	views := make([]port.AdView, len(ads))
	for i := range ads {
		views[i] = u.view(ads[i], now)
	}
	return &port.AdListResp{Ads: views, Page: port.NewPage(total, page, limit), Stats: stats}, nil
}

// RandomAd sweeps every expired ad and returns a random servable one. The
// raw media key is withheld.
func (u *AdUseCase) RandomAd(ctx context.Context) (*port.AdView, error) {
	if _, err := u.sweeper.SweepAds(ctx, ""); err != nil {
		return nil, err
	}
	now := u.clock.Now()
	ad, err := u.ads.RandomServableAd(ctx, now)
	if err != nil {
		return nil, err
	}
	v := u.view(*ad, now)
	v.MediaKey = ""
	return &v, nil
}

// VerifyPayment mirrors the gateway status of an order onto its payment
// and ad. Ownership is checked before the gateway is asked.
func (u *AdUseCase) VerifyPayment(ctx context.Context, actor domain.Actor, orderID string) (*domain.Payment, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id required", domain.ErrInvalidInput)
	}
	payment, err := u.payments.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	ad, err := u.ads.GetAdByPaymentID(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(ad.UserID) {
		return nil, fmt.Errorf("%w: not authorized to verify this payment", domain.ErrForbidden)
	}

	status, err := u.gateway.OrderStatus(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment status: %w", err)
	}
	err = u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if payment, err = u.payments.SetPaymentStatus(ctx, orderID, status); err != nil {
			return err
		}
		return u.ads.SetAdPaymentStatus(ctx, ad.ID, status)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (u *AdUseCase) view(ad domain.Ad, now time.Time) port.AdView {
	v := port.AdView{Ad: ad, RuntimeMinutes: ad.EffectiveRuntime(now)}
	if ad.MediaKey != "" {
		v.MediaURL = u.media.PublicURL(ad.MediaKey)
	}
	return v
}

func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "OD-" + strings.ToUpper(raw[:16])
}
