package port

import (
	"context"
	"time"

	"foodshare/internal/core/domain"
)

// PostUseCase covers the food post lifecycle.
type PostUseCase interface {
	CreatePost(ctx context.Context, actor domain.Actor, req CreatePostReq) (*PostView, error)
	ListPosts(ctx context.Context, req PostListReq) (*PostListResp, error)
	UserPosts(ctx context.Context, req UserPostsReq) (*PostListResp, error)
	// MarkClaimed lets the poster confirm the donation was collected and
	// credits their points in the same transaction.
	MarkClaimed(ctx context.Context, actor domain.Actor, postID string) (*ClaimResult, error)
	// DeletePost removes the poster's post, reverses any award and drops
	// the stored media.
	DeletePost(ctx context.Context, actor domain.Actor, postID string) error
	// ToggleLike likes a live post for the actor, or unlikes it when the
	// actor already did.
	ToggleLike(ctx context.Context, actor domain.Actor, postID string) (*PostView, error)
}

// CreatePostReq carries the donation form.
type CreatePostReq struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Servings    int             `json:"servings"`
	ExpiryTime  time.Time       `json:"expiryTime"`
	Location    domain.Location `json:"location"`
	MediaURL    string          `json:"mediaUrl"`
}

// PostListReq filters the open post feed. ViewerID decides likedByUser.
type PostListReq struct {
	ViewerID string
	City     string
	State    string
	Page     int
	Limit    int
}

// UserPostsReq selects a page of one user's posts.
type UserPostsReq struct {
	ViewerID string
	UserID   string
	Page     int
	Limit    int
}

// PostView is a post decorated for display.
type PostView struct {
	domain.Post
	MediaURL    string `json:"mediaUrl,omitempty"`
	LikedByUser bool   `json:"likedByUser"`
}

// PostListResp is one page of posts.
type PostListResp struct {
	Posts []PostView `json:"posts"`
	Page  Page       `json:"pagination"`
}

// ClaimResult reports the claimed post and the credit it earned.
type ClaimResult struct {
	Post  *domain.Post       `json:"post"`
	Entry *domain.PointEntry `json:"entry"`
}

// PointsUseCase exposes the ledger to users.
type PointsUseCase interface {
	History(ctx context.Context, actor domain.Actor, page, limit int) (*PointHistoryResp, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// LeaderboardEntry is the public part of a ranked user. Contact details
// stay private.
type LeaderboardEntry struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Points    int    `json:"points"`
}

// PointHistoryResp is one page of a user's ledger.
type PointHistoryResp struct {
	Entries []domain.PointEntry `json:"entries"`
	Balance int                 `json:"balance"`
	Page    Page                `json:"pagination"`
}

// SweepUseCase is the parameterless archival entry point used by the
// scheduler and the admin trigger.
type SweepUseCase interface {
	Run(ctx context.Context) (SweepResult, error)
}

// SweepResult counts entities moved to the archive.
type SweepResult struct {
	Ads   int `json:"ads"`
	Posts int `json:"posts"`
}

// AnalyticsUseCase serves the admin dashboard.
type AnalyticsUseCase interface {
	Summary(ctx context.Context, actor domain.Actor) (*Summary, error)
	// Revenue buckets successful payment amounts over the requested period.
	Revenue(ctx context.Context, actor domain.Actor, req domain.SeriesSpec) ([]domain.SeriesPoint, error)
	// Donations buckets claimed servings over the requested period.
	Donations(ctx context.Context, actor domain.Actor, req domain.SeriesSpec) ([]domain.SeriesPoint, error)
}

// UserAdminUseCase lets admins find and moderate accounts.
type UserAdminUseCase interface {
	ListUsers(ctx context.Context, actor domain.Actor, page, limit int) (*UserListResp, error)
	SearchUsers(ctx context.Context, actor domain.Actor, query string) ([]UserView, error)
	// SetBlocked blocks or unblocks a user. Blocked users are rejected on
	// their next request.
	SetBlocked(ctx context.Context, actor domain.Actor, userID string, blocked bool) (*ModerationResult, error)
}

// UserView is a user as admins see it, including the block flag.
type UserView struct {
	domain.User
	Blocked bool `json:"isBlocked"`
}

// NewUserView wraps u for admin responses.
func NewUserView(u domain.User) UserView {
	return UserView{User: u, Blocked: u.IsBlocked}
}

// UserListResp is one page of accounts.
type UserListResp struct {
	Users []UserView `json:"users"`
	Page  Page       `json:"pagination"`
}

// ModerationResult reports the user after a block change and whether the
// flag actually moved.
type ModerationResult struct {
	User    UserView `json:"user"`
	Changed bool     `json:"changed"`
}

// PriceUseCase quotes service prices.
type PriceUseCase interface {
	Quote(ctx context.Context, name string, days int) (*PriceQuote, error)
}

// PriceQuote is the price of a service for a number of days.
type PriceQuote struct {
	Name     string             `json:"name"`
	Type     domain.PricingType `json:"type"`
	Price    int64              `json:"price"`
	Duration *int               `json:"duration"`
}

// AuthUseCase turns verified token claims into an actor.
type AuthUseCase interface {
	ResolveActor(ctx context.Context, userID string, tokenVersion int) (domain.Actor, error)
}
