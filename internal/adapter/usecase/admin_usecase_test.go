package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/core/domain"
)

func TestAnalyticsSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAnalyticsUseCase(f.store.AnalyticsRepository(), f.clock, time.UTC)

	post := f.putPost(t, "owner", 12, time.Hour)
	_, err := f.posts.MarkClaimed(ctx, owner, post.ID)
	require.NoError(t, err)
	f.putAd(t, "owner", 1, nil)

	_, err = svc.Summary(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	sum, err := svc.Summary(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.TotalUsers)
	assert.Equal(t, int64(12), sum.TotalFoodDonated)
	assert.Equal(t, int64(1), sum.LiveAds)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)
	f.store.PutService(domain.Service{Name: "ads", Type: domain.PricingTimeBased, Price: 100, Duration: 2})
	f.store.PutService(domain.Service{Name: "boost", Type: domain.PricingFlat, Price: 49})
	svc := NewPriceUseCase(f.store.PriceRepository())
	ctx := context.Background()

	q, err := svc.Quote(ctx, "ads", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(500), q.Price)
	require.NotNil(t, q.Duration)
	assert.Equal(t, 2, *q.Duration)

	q, err = svc.Quote(ctx, "ads", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(200), q.Price)

	q, err = svc.Quote(ctx, "boost", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(49), q.Price)
	assert.Nil(t, q.Duration)

	_, err = svc.Quote(ctx, "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Quote(ctx, "ads", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Quote(ctx, "banner", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveActor(t *testing.T) {
	f := newFixture(t)
	f.store.PutUser(domain.User{ID: "rotated", TokenVersion: 3})
	f.store.PutUser(domain.User{ID: "blocked", IsBlocked: true})
	svc := NewAuthUseCase(f.store.UserRepository())
	ctx := context.Background()

	actor, err := svc.ResolveActor(ctx, "admin", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{ID: "admin", Role: domain.RoleAdmin}, actor)

	_, err = svc.ResolveActor(ctx, "ghost", 0)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.ResolveActor(ctx, "rotated", 2)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = svc.ResolveActor(ctx, "rotated", 3)
	assert.NoError(t, err)

	_, err = svc.ResolveActor(ctx, "blocked", 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func (f *fixture) putPayment(t *testing.T, orderID string, amount int64, status domain.PaymentStatus, at time.Time) {
	t.Helper()
	err := f.store.PaymentRepository().CreatePayment(context.Background(), &domain.Payment{
		OrderID: orderID, Amount: amount, Currency: "INR", Status: status, CreatedAt: at, UpdatedAt: at,
	})
	require.NoError(t, err)
}

func TestRevenue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAnalyticsUseCase(f.store.AnalyticsRepository(), f.clock, kolkata(t))

	// the clock reads Monday 2025-03-10 14:30 in Kolkata
	f.putPayment(t, "OD-1", 300, domain.PaymentSuccess, f.clock.Now())
	f.putPayment(t, "OD-2", 200, domain.PaymentSuccess, time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC))
	f.putPayment(t, "OD-3", 100, domain.PaymentPending, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC))
	f.putPayment(t, "OD-4", 50, domain.PaymentSuccess, time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC))

	daily, err := svc.Revenue(ctx, admin, domain.SeriesSpec{Period: domain.PeriodDaily, Month: 3, Year: 2025})
	require.NoError(t, err)
	require.Len(t, daily, 31)
	assert.Equal(t, domain.SeriesPoint{Name: "1 Mar", Value: 0}, daily[0])
	assert.Equal(t, domain.SeriesPoint{Name: "9 Mar", Value: 0}, daily[8])
	assert.Equal(t, domain.SeriesPoint{Name: "10 Mar", Value: 500}, daily[9])

	monthly, err := svc.Revenue(ctx, admin, domain.SeriesSpec{Period: domain.PeriodMonthly, Year: 2025})
	require.NoError(t, err)
	require.Len(t, monthly, 12)
	assert.Equal(t, domain.SeriesPoint{Name: "Jan", Value: 50}, monthly[0])
	assert.Equal(t, domain.SeriesPoint{Name: "Mar", Value: 500}, monthly[2])

	weekly, err := svc.Revenue(ctx, admin, domain.SeriesSpec{Period: domain.PeriodWeekly})
	require.NoError(t, err)
	require.Len(t, weekly, 7)
	assert.Equal(t, "Sun", weekly[0].Name)
	assert.Equal(t, domain.SeriesPoint{Name: "Mon", Value: 500}, weekly[1])

	yearly, err := svc.Revenue(ctx, admin, domain.SeriesSpec{Period: domain.PeriodYearly})
	require.NoError(t, err)
	assert.Equal(t, []domain.SeriesPoint{{Name: "2025", Value: 550}}, yearly)
}

func TestRevenue_Rejections(t *testing.T) {
	f := newFixture(t)
	svc := NewAnalyticsUseCase(f.store.AnalyticsRepository(), f.clock, time.UTC)
	ctx := context.Background()

	_, err := svc.Revenue(ctx, owner, domain.SeriesSpec{Period: domain.PeriodYearly})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	for name, req := range map[string]domain.SeriesSpec{
		"no period":     {},
		"bad period":    {Period: "hourly"},
		"daily no year": {Period: domain.PeriodDaily, Month: 3},
		"daily month":   {Period: domain.PeriodDaily, Month: 13, Year: 2025},
		"monthly":       {Period: domain.PeriodMonthly},
	} {
		_, err = svc.Revenue(ctx, admin, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestDonations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewAnalyticsUseCase(f.store.AnalyticsRepository(), f.clock, time.UTC)

	empty, err := svc.Donations(ctx, admin, domain.SeriesSpec{Period: domain.PeriodYearly})
	require.NoError(t, err)
	require.Len(t, empty, 5)
	assert.Equal(t, "2021", empty[0].Name)
	assert.Equal(t, "2025", empty[4].Name)

	claimed := f.putPost(t, "owner", 12, time.Hour)
	f.putPost(t, "other", 5, time.Hour)
	_, err = f.posts.MarkClaimed(ctx, owner, claimed.ID)
	require.NoError(t, err)
	_, err = f.sweeper.SweepPosts(ctx)
	require.NoError(t, err)
	require.Len(t, f.store.ArchivedPosts(), 1)

	monthly, err := svc.Donations(ctx, admin, domain.SeriesSpec{Period: domain.PeriodMonthly, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, int64(12), monthly[2].Value)
	var total int64
	for _, p := range monthly {
		total += p.Value
	}
	assert.Equal(t, int64(12), total)
}

func TestSetBlocked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewUserAdminUseCase(f.store.UserRepository(), discardLogger())
	auth := NewAuthUseCase(f.store.UserRepository())

	res, err := svc.SetBlocked(ctx, admin, "other", true)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.User.Blocked)
	_, err = auth.ResolveActor(ctx, "other", 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err = svc.SetBlocked(ctx, admin, "other", true)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	res, err = svc.SetBlocked(ctx, admin, "other", false)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	_, err = auth.ResolveActor(ctx, "other", 0)
	assert.NoError(t, err)
}

func TestSetBlocked_Rules(t *testing.T) {
	f := newFixture(t)
	f.store.PutUser(domain.User{ID: "admin2", Email: "a2@example.com", Role: domain.RoleAdmin})
	f.store.PutUser(domain.User{ID: "root", Email: "root@example.com", Role: domain.RoleSuperAdmin})
	root := domain.Actor{ID: "root", Role: domain.RoleSuperAdmin}
	svc := NewUserAdminUseCase(f.store.UserRepository(), discardLogger())
	ctx := context.Background()

	_, err := svc.SetBlocked(ctx, owner, "other", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.SetBlocked(ctx, admin, "admin2", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.SetBlocked(ctx, admin, "admin", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.SetBlocked(ctx, root, "root", true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SetBlocked(ctx, admin, "ghost", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := svc.SetBlocked(ctx, root, "admin2", true)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	u, _ := f.store.User("admin2")
	assert.True(t, u.IsBlocked)
}

func TestListAndSearchUsers(t *testing.T) {
	f := newFixture(t)
	f.store.PutUser(domain.User{ID: "root", Email: "root@example.com", Role: domain.RoleSuperAdmin})
	svc := NewUserAdminUseCase(f.store.UserRepository(), discardLogger())
	ctx := context.Background()

	resp, err := svc.ListUsers(ctx, admin, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Page.Total)
	assert.Len(t, resp.Users, 2)
	assert.True(t, resp.Page.HasNextPage)

	_, err = svc.ListUsers(ctx, owner, 1, 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	found, err := svc.SearchUsers(ctx, admin, " 9000000001 ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "owner", found[0].ID)

	found, err = svc.SearchUsers(ctx, admin, "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = svc.SearchUsers(ctx, admin, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
