package port

import (
	"context"
	"time"

	"foodshare/internal/core/domain"
)

// AdRepository defines the persistence layer for ads and their archive. It
// is an outbound port in hexagonal architecture. Implementations join the
// transaction carried by ctx when called inside Transactor.WithinTx and must
// return domain.ErrNotFound for missing rows and wrap every other failure in
// domain.ErrStoreFailure.
type AdRepository interface {
	// CreateAd stores a new ad and assigns its ID.
	CreateAd(ctx context.Context, ad *domain.Ad) error
	// GetAd returns a live-collection ad by id.
	GetAd(ctx context.Context, id string) (*domain.Ad, error)
	// GetAdByPaymentID returns the ad paid for by the given payment.
	GetAdByPaymentID(ctx context.Context, paymentID string) (*domain.Ad, error)
	// TransitionAd persists the runtime fields of ad only if the stored
	// status still equals from. A lost race yields domain.ErrInvalidState.
	TransitionAd(ctx context.Context, ad *domain.Ad, from domain.AdStatus) error
	// SetAdPaymentStatus updates the payment status mirrored on the ad.
	SetAdPaymentStatus(ctx context.Context, adID string, status domain.PaymentStatus) error

	// FindExpiredAds returns live-collection ads whose end date is before
	// now or whose runtime exceeds the purchased budget. An empty userID
	// matches every owner.
	FindExpiredAds(ctx context.Context, userID string, now time.Time) ([]domain.Ad, error)
	// ArchiveAds appends snapshots to the archive collection.
	ArchiveAds(ctx context.Context, ads []domain.Ad) error
	// DeleteAds removes ads from the live collection.
	DeleteAds(ctx context.Context, ids []string) error

	// ListAds pages the live collection, newest first.
	ListAds(ctx context.Context, q AdQuery) ([]domain.Ad, int64, error)
	// ListArchivedAds pages the archive collection, newest first.
	ListArchivedAds(ctx context.Context, q AdQuery) ([]domain.Ad, int64, error)
	// CountAdsByStatus counts a user's ads per lifecycle state.
	CountAdsByStatus(ctx context.Context, userID string) (AdStats, error)
	// RandomServableAd returns one random ad that may be shown at now.
	RandomServableAd(ctx context.Context, now time.Time) (*domain.Ad, error)
}

// AdQuery filters a page of ads. Zero values mean "any".
type AdQuery struct {
	UserID string
	Status domain.AdStatus
	Limit  int
	Offset int
}

// AdStats counts a user's ads per lifecycle state.
type AdStats struct {
	Live    int64 `json:"live"`
	Paused  int64 `json:"paused"`
	Expired int64 `json:"expired"`
}
