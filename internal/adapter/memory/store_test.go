package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func liveAd(userID string, created time.Time) *domain.Ad {
	start := created
	return &domain.Ad{
		UserID:        userID,
		Duration:      1,
		Status:        domain.AdStatusLive,
		PaymentStatus: domain.PaymentSuccess,
		StartDate:     start,
		EndDate:       start.Add(24 * time.Hour),
		LastResumedAt: &start,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestWithinTx_RollsBackEveryCollection(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutUser(domain.User{ID: "u1"})
	ads := s.AdRepository()
	kept := liveAd("u1", now)
	require.NoError(t, ads.CreateAd(ctx, kept))

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, ads.CreateAd(ctx, liveAd("u1", now)))
		require.NoError(t, ads.ArchiveAds(ctx, []domain.Ad{kept.Archived()}))
		require.NoError(t, ads.DeleteAds(ctx, []string{kept.ID}))
		require.NoError(t, s.UserRepository().AddPoints(ctx, "u1", 10))
		require.NoError(t, s.PointsRepository().AppendEntry(ctx, &domain.PointEntry{UserID: "u1", Points: 10}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	live := s.LiveAds()
	require.Len(t, live, 1)
	assert.Equal(t, kept.ID, live[0].ID)
	assert.Empty(t, s.ArchivedAds())
	assert.Empty(t, s.Entries())
	u, _ := s.User("u1")
	assert.Zero(t, u.Points)
}

func TestWithinTx_NestedJoinsOuter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		inner := s.WithinTx(ctx, func(ctx context.Context) error {
			return s.AdRepository().CreateAd(ctx, liveAd("u1", now))
		})
		require.NoError(t, inner)
		return errors.New("outer fails")
	})
	require.Error(t, err)
	assert.Empty(t, s.LiveAds())
}

func TestFailNext_FiresOnce(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.FailNext("CreateAd", domain.ErrStoreFailure)

	assert.ErrorIs(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)), domain.ErrStoreFailure)
	assert.NoError(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)))
}

func TestTransitionAd_ConditionalOnStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ads := s.AdRepository()
	ad := liveAd("u1", now)
	require.NoError(t, ads.CreateAd(ctx, ad))

	first, _ := ads.GetAd(ctx, ad.ID)
	second, _ := ads.GetAd(ctx, ad.ID)
	require.NoError(t, first.Pause(now.Add(10*time.Minute)))
	require.NoError(t, second.Pause(now.Add(20*time.Minute)))

	require.NoError(t, ads.TransitionAd(ctx, first, domain.AdStatusLive))
	assert.ErrorIs(t, ads.TransitionAd(ctx, second, domain.AdStatusLive), domain.ErrInvalidState)

	stored, err := ads.GetAd(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.TotalRuntime)
	assert.Equal(t, domain.AdStatusPaused, stored.Status)
}

func TestGetAd_ReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ad := liveAd("u1", now)
	require.NoError(t, s.AdRepository().CreateAd(ctx, ad))

	got, _ := s.AdRepository().GetAd(ctx, ad.ID)
	got.Status = domain.AdStatusPaused
	*got.LastResumedAt = now.Add(time.Hour)

	again, _ := s.AdRepository().GetAd(ctx, ad.ID)
	assert.Equal(t, domain.AdStatusLive, again.Status)
	assert.Equal(t, now, *again.LastResumedAt)
}

func TestListAdsAndStats(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ads := s.AdRepository()
	for i := range 3 {
		require.NoError(t, ads.CreateAd(ctx, liveAd("u1", now.Add(time.Duration(i)*time.Minute))))
	}
	paused := liveAd("u1", now)
	paused.Status = domain.AdStatusPaused
	require.NoError(t, ads.CreateAd(ctx, paused))
	require.NoError(t, ads.CreateAd(ctx, liveAd("u2", now)))
	require.NoError(t, ads.ArchiveAds(ctx, []domain.Ad{liveAd("u1", now).Archived()}))

	got, total, err := ads.ListAds(ctx, port.AdQuery{UserID: "u1", Status: domain.AdStatusLive, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	stats, err := ads.CountAdsByStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, port.AdStats{Live: 3, Paused: 1, Expired: 1}, stats)
}

func TestRandomServableAd(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	ads := s.AdRepository()

	_, err := ads.RandomServableAd(ctx, now)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unpaid := liveAd("u1", now)
	unpaid.PaymentStatus = domain.PaymentPending
	require.NoError(t, ads.CreateAd(ctx, unpaid))
	paid := liveAd("u1", now)
	require.NoError(t, ads.CreateAd(ctx, paid))

	for range 10 {
		got, err := ads.RandomServableAd(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, paid.ID, got.ID)
	}
}

func TestClaimPost_OnlyOnce(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	posts := s.PostRepository()
	post := &domain.Post{Title: "t", Servings: 1, ExpiryTime: now.Add(time.Hour), PostedBy: "u1"}
	require.NoError(t, posts.CreatePost(ctx, post))

	require.NoError(t, post.MarkClaimed(now))
	require.NoError(t, posts.ClaimPost(ctx, post))
	assert.ErrorIs(t, posts.ClaimPost(ctx, post), domain.ErrInvalidState)
	assert.ErrorIs(t, posts.ClaimPost(ctx, &domain.Post{ID: "missing"}), domain.ErrNotFound)
}

func TestPointsLedgerQueries(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	points := s.PointsRepository()
	postID := "p1"

	_, err := points.FindClaimCredit(ctx, postID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	credit := &domain.PointEntry{UserID: "u1", PostID: &postID, Points: 15, TransactionType: domain.TransactionCredit, Source: domain.SourceFoodClaim}
	require.NoError(t, points.AppendEntry(ctx, credit))
	require.NoError(t, points.AppendEntry(ctx, &domain.PointEntry{UserID: "u1", PostID: &postID, Points: -15, TransactionType: domain.TransactionDebit, Source: domain.SourcePostDeleted}))

	found, err := points.FindClaimCredit(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, credit.ID, found.ID)

	entries, total, err := points.ListEntries(ctx, "u1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, -15, entries[0].Points)
}

func TestPage_OutOfRangeOffsets(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Empty(t, page(items, 10, -20))
	assert.Empty(t, page(items, 10, 3))
	assert.Equal(t, []int{2, 3}, page(items, 10, 1))
	assert.Equal(t, []int{1, 2}, page(items, 2, 0))
}

func TestFailAfter_SkipsCalls(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.FailAfter("CreateAd", 2, domain.ErrStoreFailure)

	assert.NoError(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)))
	assert.NoError(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)))
	assert.ErrorIs(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)), domain.ErrStoreFailure)
	assert.NoError(t, s.AdRepository().CreateAd(ctx, liveAd("u1", now)))
}

func TestToggleLike(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	posts := s.PostRepository()
	post := &domain.Post{Title: "t", Servings: 1, ExpiryTime: now.Add(time.Hour), PostedBy: "u1"}
	require.NoError(t, posts.CreatePost(ctx, post))

	liked, err := posts.ToggleLike(ctx, post.ID, "u2")
	require.NoError(t, err)
	assert.True(t, liked)
	got, err := posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)

	ids, err := posts.LikedPostIDs(ctx, "u2", []string{post.ID, "other"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{post.ID: true}, ids)

	boom := errors.New("boom")
	err = s.WithinTx(ctx, func(ctx context.Context) error {
		liked, err := posts.ToggleLike(ctx, post.ID, "u2")
		require.NoError(t, err)
		assert.False(t, liked)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	ids, err = posts.LikedPostIDs(ctx, "u2", []string{post.ID})
	require.NoError(t, err)
	assert.True(t, ids[post.ID], "rolled back unlike must restore the like")

	require.NoError(t, posts.DeletePost(ctx, post.ID))
	ids, err = posts.LikedPostIDs(ctx, "u2", []string{post.ID})
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = posts.ToggleLike(ctx, "missing", "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUsers_HidesSuperAdmins(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.PutUser(domain.User{ID: "b", CreatedAt: now})
	s.PutUser(domain.User{ID: "a", CreatedAt: now})
	s.PutUser(domain.User{ID: "root", Role: domain.RoleSuperAdmin, CreatedAt: now.Add(-time.Hour)})
	s.PutUser(domain.User{ID: "early", CreatedAt: now.Add(-time.Minute)})

	users, total, err := s.UserRepository().ListUsers(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "early", users[0].ID)
	assert.Equal(t, "a", users[1].ID)

	users, _, err = s.UserRepository().ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "b", users[0].ID)
}

func TestFindUsersByContact_ExactMatch(t *testing.T) {
	s := NewStore()
	s.PutUser(domain.User{ID: "u1", Email: "meera@example.com", Phone: "9000000001"})
	s.PutUser(domain.User{ID: "u2", Email: "kabir@example.com"})

	found, err := s.UserRepository().FindUsersByContact(context.Background(), "9000000001")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "u1", found[0].ID)

	found, err = s.UserRepository().FindUsersByContact(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRevenueByDay_GroupsInLocation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	loc := time.FixedZone("IST", 5*3600+1800)
	pay := func(orderID string, amount int64, status domain.PaymentStatus, at time.Time) {
		require.NoError(t, s.PaymentRepository().CreatePayment(ctx, &domain.Payment{
			OrderID: orderID, Amount: amount, Status: status, CreatedAt: at, UpdatedAt: at,
		}))
	}
	// 20:00 UTC on the 9th is already the 10th in IST
	pay("OD-1", 100, domain.PaymentSuccess, time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC))
	pay("OD-2", 50, domain.PaymentSuccess, now)
	pay("OD-3", 70, domain.PaymentPending, now)

	days, err := s.AnalyticsRepository().RevenueByDay(ctx, now.Add(-72*time.Hour), now.Add(time.Hour), loc)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), days[0].At)
	assert.Equal(t, int64(150), days[0].Value)
}

func TestSeed_AccountsAuthenticate(t *testing.T) {
	s := NewStore()
	Seed(s, now, "ads")

	admin, err := s.UserRepository().GetUser(context.Background(), DemoAdminID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	for _, id := range DemoUserIDs {
		u, ok := s.User(id)
		require.True(t, ok, id)
		assert.Equal(t, domain.RoleUser, u.Role)
		assert.False(t, u.IsBlocked)
	}
	svc, err := s.PriceRepository().GetService(context.Background(), "ads")
	require.NoError(t, err)
	assert.Equal(t, domain.PricingTimeBased, svc.Type)
}
