package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// AnalyticsUseCase returns aggregated stats for admins. Calendar buckets
// are cut in loc.
type AnalyticsUseCase struct {
	repo  port.AnalyticsRepository
	clock port.Clock
	loc   *time.Location
}

func NewAnalyticsUseCase(repo port.AnalyticsRepository, clock port.Clock, loc *time.Location) *AnalyticsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsUseCase{repo: repo, clock: clock, loc: loc}
}

// Summary returns platform totals. Admins only.
func (u *AnalyticsUseCase) Summary(ctx context.Context, actor domain.Actor) (*port.Summary, error) {
	if !actor.IsAdmin() {
		return nil, errAdminOnly
	}
	return u.repo.Summary(ctx)
}

// Revenue returns successful payment totals per bucket. Admins only.
func (u *AnalyticsUseCase) Revenue(ctx context.Context, actor domain.Actor, req domain.SeriesSpec) ([]domain.SeriesPoint, error) {
	return u.series(ctx, actor, req, u.repo.RevenueByDay)
}

// Donations returns claimed servings per bucket. Admins only.
func (u *AnalyticsUseCase) Donations(ctx context.Context, actor domain.Actor, req domain.SeriesSpec) ([]domain.SeriesPoint, error) {
	return u.series(ctx, actor, req, u.repo.DonationsByDay)
}

type dailySource func(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error)

func (u *AnalyticsUseCase) series(ctx context.Context, actor domain.Actor, req domain.SeriesSpec, source dailySource) ([]domain.SeriesPoint, error) {
	if !actor.IsAdmin() {
		return nil, errAdminOnly
	}
	now := u.clock.Now()
	from, to, err := req.Window(now, u.loc)
	if err != nil {
		return nil, err
	}
	days, err := source(ctx, from, to, u.loc)
	if err != nil {
		return nil, err
	}
	return req.Aggregate(days, now, u.loc)
}

var errAdminOnly = fmt.Errorf("%w: admin access required", domain.ErrForbidden)

// UserAdminUseCase lists and moderates accounts.
type UserAdminUseCase struct {
	users  port.UserRepository
	logger *slog.Logger
}

func NewUserAdminUseCase(users port.UserRepository, logger *slog.Logger) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, logger: logger}
}

// ListUsers pages every account except super admins.
func (u *UserAdminUseCase) ListUsers(ctx context.Context, actor domain.Actor, page, limit int) (*port.UserListResp, error) {
	if !actor.IsAdmin() {
		return nil, errAdminOnly
	}
	page, limit, offset, err := port.Normalize(page, limit)
	if err != nil {
		return nil, err
	}
	users, total, err := u.users.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]port.UserView, len(users))
	for i := range users {
		views[i] = port.NewUserView(users[i])
	}
	return &port.UserListResp{Users: views, Page: port.NewPage(total, page, limit)}, nil
}

// SearchUsers finds accounts by exact email or phone number.
func (u *UserAdminUseCase) SearchUsers(ctx context.Context, actor domain.Actor, query string) ([]port.UserView, error) {
	if !actor.IsAdmin() {
		return nil, errAdminOnly
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: provide an email or phone number to search", domain.ErrInvalidInput)
	}
	users, err := u.users.FindUsersByContact(ctx, query)
	if err != nil {
		return nil, err
	}
	views := make([]port.UserView, len(users))
	for i := range users {
		views[i] = port.NewUserView(users[i])
	}
	return views, nil
}

// SetBlocked moves the block flag of userID. Setting the flag it already
// has is reported with Changed false.
func (u *UserAdminUseCase) SetBlocked(ctx context.Context, actor domain.Actor, userID string, blocked bool) (*port.ModerationResult, error) {
	if !actor.IsAdmin() {
		return nil, errAdminOnly
	}
	target, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err = actor.CanModerate(target); err != nil {
		return nil, err
	}
	if target.IsBlocked == blocked {
		return &port.ModerationResult{User: port.NewUserView(*target)}, nil
	}
	if err = u.users.SetBlocked(ctx, target.ID, blocked); err != nil {
		return nil, err
	}
	target.IsBlocked = blocked
	u.logger.Info("user block status changed",
		slog.String("user_id", target.ID),
		slog.String("by", actor.ID),
		slog.Bool("blocked", blocked))
	return &port.ModerationResult{User: port.NewUserView(*target), Changed: true}, nil
}

// PriceUseCase quotes services from the price list.
type PriceUseCase struct {
	prices port.PriceRepository
}

func NewPriceUseCase(prices port.PriceRepository) *PriceUseCase {
	return &PriceUseCase{prices: prices}
}

// Quote prices a service. Time based services are charged per day; days
// of zero uses the service default duration.
func (u *PriceUseCase) Quote(ctx context.Context, name string, days int) (*port.PriceQuote, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: service name not valid", domain.ErrInvalidInput)
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: day should be a valid number", domain.ErrInvalidInput)
	}
	svc, err := u.prices.GetService(ctx, name)
	if err != nil {
		return nil, err
	}
	q := &port.PriceQuote{Name: svc.Name, Type: svc.Type, Price: svc.Quote(days)}
	if svc.Duration > 0 {
		d := svc.Duration
		q.Duration = &d
	}
	return q, nil
}

// AuthUseCase resolves verified token claims into an actor.
type AuthUseCase struct {
	users port.UserRepository
}

func NewAuthUseCase(users port.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// ResolveActor loads the user behind a token. Unknown users and revoked
// tokens are unauthenticated; blocked users are forbidden.
func (u *AuthUseCase) ResolveActor(ctx context.Context, userID string, tokenVersion int) (domain.Actor, error) {
	user, err := u.users.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Actor{}, fmt.Errorf("%w: user not found", domain.ErrUnauthenticated)
	}
	if err != nil {
		return domain.Actor{}, err
	}
	if user.TokenVersion != tokenVersion {
		return domain.Actor{}, fmt.Errorf("%w: token revoked", domain.ErrUnauthenticated)
	}
	if user.IsBlocked {
		return domain.Actor{}, fmt.Errorf("%w: your account has been blocked, please contact support", domain.ErrForbidden)
	}
	return user.Actor(), nil
}
