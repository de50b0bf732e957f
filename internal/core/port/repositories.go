package port

import (
	"context"
	"time"

	"foodshare/internal/core/domain"
)

// Transactor runs fn atomically. Repository calls made with the ctx passed
// to fn join the transaction; fn returning an error rolls every write back.
// Nested calls join the outer transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PostRepository persists food posts and their archive.
type PostRepository interface {
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	// ClaimPost flips the claim flag only if the stored post is still
	// unclaimed; otherwise it returns domain.ErrInvalidState.
	ClaimPost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, id string) error

	// FindArchivablePosts returns posts that are claimed or past expiry.
	FindArchivablePosts(ctx context.Context, now time.Time) ([]domain.Post, error)
	ArchivePosts(ctx context.Context, posts []domain.Post) error
	DeletePosts(ctx context.Context, ids []string) error

	// ListOpenPosts pages unclaimed, unexpired posts, soonest expiry first.
	ListOpenPosts(ctx context.Context, q PostQuery) ([]domain.Post, int64, error)
	// ListUserPosts pages a user's live and archived posts, newest first.
	ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]domain.Post, int64, error)

	// ToggleLike adds the user's like on a live post, or removes it when
	// present, moving like_count by the same step. It reports whether the
	// post is liked afterwards.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	// LikedPostIDs returns the subset of postIDs the user has liked.
	LikedPostIDs(ctx context.Context, userID string, postIDs []string) (map[string]bool, error)
}

// PostQuery filters the open post feed.
type PostQuery struct {
	City   string
	State  string
	Now    time.Time
	Limit  int
	Offset int
}

// PointsRepository is the append-only points ledger.
type PointsRepository interface {
	AppendEntry(ctx context.Context, entry *domain.PointEntry) error
	// FindClaimCredit returns the food_claim credit recorded for a post.
	FindClaimCredit(ctx context.Context, postID string) (*domain.PointEntry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]domain.PointEntry, int64, error)
}

// UserRepository reads users and maintains their cached point balance.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// AddPoints atomically adds delta (which may be negative) to the
	// user's balance.
	AddPoints(ctx context.Context, userID string, delta int) error
	// Leaderboard returns users ordered by balance, highest first.
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)

	// ListUsers pages every account except super admins, oldest first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	// FindUsersByContact returns users whose email or phone equals query.
	FindUsersByContact(ctx context.Context, query string) ([]domain.User, error)
	// SetBlocked stores the block flag of a user.
	SetBlocked(ctx context.Context, userID string, blocked bool) error
}

// PaymentRepository persists gateway orders.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *domain.Payment) error
	GetPaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	SetPaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (*domain.Payment, error)
}

// PriceRepository reads service price lists.
type PriceRepository interface {
	GetService(ctx context.Context, name string) (*domain.Service, error)
}

// AnalyticsRepository aggregates platform-wide figures.
type AnalyticsRepository interface {
	Summary(ctx context.Context) (*Summary, error)
	// RevenueByDay sums successful payments created in [from, to) per
	// calendar day of loc. Each sample is stamped at midnight in loc.
	RevenueByDay(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error)
	// DonationsByDay sums the servings of claimed posts, live and
	// archived, created in [from, to) per calendar day of loc.
	DonationsByDay(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error)
}

// Summary contains aggregated platform statistics for admins.
type Summary struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalFoodDonated int64 `json:"totalFoodDonated"`
	TotalPayments    int64 `json:"totalPayments"`
	LiveAds          int64 `json:"liveAds"`
}
