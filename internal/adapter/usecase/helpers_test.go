package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodshare/internal/adapter/memory"
	"foodshare/internal/core/domain"
	"foodshare/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires every use case on one in-memory store.
type fixture struct {
	store   *memory.Store
	clock   *testutil.StubClock
	media   *testutil.StubMedia
	gateway *testutil.StubGateway
	sweeper *Sweeper
	ledger  *PointsLedger
	ads     *AdUseCase
	posts   *PostUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   memory.NewStore(),
		clock:   testutil.FixedClock(),
		media:   &testutil.StubMedia{},
		gateway: &testutil.StubGateway{},
	}
	logger := discardLogger()
	f.sweeper = NewSweeper(f.store.AdRepository(), f.store.PostRepository(), f.store, f.clock, logger)
	f.ledger = NewPointsLedger(f.store.PointsRepository(), f.store.UserRepository(), f.clock, logger)
	f.ads = NewAdUseCase(AdDeps{
		Ads:      f.store.AdRepository(),
		Payments: f.store.PaymentRepository(),
		Prices:   f.store.PriceRepository(),
		Users:    f.store.UserRepository(),
		Tx:       f.store,
		Sweeper:  f.sweeper,
		Media:    f.media,
		Gateway:  f.gateway,
		Clock:    f.clock,
		Logger:   logger,
	})
	f.posts = NewPostUseCase(f.store.PostRepository(), f.ledger, f.store, f.media, f.clock, logger)

	f.store.PutUser(domain.User{ID: "owner", FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "9000000001"})
	f.store.PutUser(domain.User{ID: "other", FirstName: "Ravi", Email: "ravi@example.com"})
	f.store.PutUser(domain.User{ID: "admin", FirstName: "Site", Email: "admin@example.com", Role: domain.RoleAdmin})
	return f
}

var (
	owner = domain.Actor{ID: "owner", Role: domain.RoleUser}
	other = domain.Actor{ID: "other", Role: domain.RoleUser}
	admin = domain.Actor{ID: "admin", Role: domain.RoleAdmin}
)

// putAd stores a live ad bought now by userID for days days.
func (f *fixture) putAd(t *testing.T, userID string, days int, mutate func(*domain.Ad)) *domain.Ad {
	t.Helper()
	ad, err := domain.NewAd("Fresh meals daily", "ads/banner.png", "https://kitchen.example.com", days, userID, "pay-"+userID, f.clock.Now())
	if err != nil {
		t.Fatalf("NewAd: %v", err)
	}
	if mutate != nil {
		mutate(ad)
	}
	if err = f.store.AdRepository().CreateAd(context.Background(), ad); err != nil {
		t.Fatalf("CreateAd: %v", err)
	}
	return ad
}

// putPost stores an open post by userID expiring in expiresIn.
func (f *fixture) putPost(t *testing.T, userID string, servings int, expiresIn time.Duration) *domain.Post {
	t.Helper()
	now := f.clock.Now()
	post := &domain.Post{
		Title:      "Leftover biryani",
		Servings:   servings,
		ExpiryTime: now.Add(expiresIn),
		Location:   domain.Location{Street: "12 MG Road", City: "Pune", State: "Maharashtra"},
		MediaKey:   "posts/biryani.jpg",
		PostedBy:   userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := f.store.PostRepository().CreatePost(context.Background(), post); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return post
}

func (f *fixture) balance(t *testing.T, userID string) int {
	t.Helper()
	u, ok := f.store.User(userID)
	if !ok {
		t.Fatalf("user %s missing", userID)
	}
	return u.Points
}
