package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port/mocks"
	"foodshare/internal/testutil"
)

func TestSweeperRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.putAd(t, "owner", 1, nil)
	f.putAd(t, "other", 3, nil)
	f.putAd(t, "other", 3, func(a *domain.Ad) { a.Status = domain.AdStatusPaused; a.TotalRuntime = 4321 })
	f.putPost(t, "owner", 2, 2*time.Hour)
	f.putPost(t, "owner", 2, 48*time.Hour)
	claimed := f.putPost(t, "other", 2, 48*time.Hour)
	_, err := f.posts.MarkClaimed(ctx, other, claimed.ID)
	require.NoError(t, err)

	f.clock.Advance(25 * time.Hour)
	res, err := f.sweeper.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Ads)
	assert.Equal(t, 2, res.Posts)

	for _, ad := range f.store.ArchivedAds() {
		assert.Equal(t, domain.AdStatusExpired, ad.Status)
	}
	archived := f.store.ArchivedPosts()
	require.Len(t, archived, 2)
	assert.Len(t, f.store.LiveAds(), 1)
	assert.Len(t, f.store.LivePosts(), 1)

	// a second run has nothing left to move
	res, err = f.sweeper.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Ads)
	assert.Zero(t, res.Posts)
	assert.Len(t, f.store.ArchivedAds(), 2)
	assert.Len(t, f.store.ArchivedPosts(), 2)
}

func TestSweeperRun_FailureIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.putAd(t, "owner", 1, nil)
	f.putPost(t, "owner", 2, time.Hour)
	f.clock.Advance(48 * time.Hour)

	f.store.FailNext("ArchiveAds", fmt.Errorf("%w: copy failed", domain.ErrStoreFailure))
	res, err := f.sweeper.Run(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.ErrorContains(t, err, "sweep ads")
	assert.Zero(t, res.Ads)
	assert.Equal(t, 1, res.Posts)
	assert.Len(t, f.store.LiveAds(), 1)
	assert.Empty(t, f.store.ArchivedAds())

	f.store.FailNext("DeletePosts", fmt.Errorf("%w: delete failed", domain.ErrStoreFailure))
	f.putPost(t, "owner", 2, -time.Hour)
	res, err = f.sweeper.Run(ctx)
	assert.ErrorContains(t, err, "sweep posts")
	assert.Equal(t, 1, res.Ads)
	// the failed post sweep left its archive write undone
	assert.Len(t, f.store.ArchivedPosts(), 1)
	assert.Len(t, f.store.LivePosts(), 1)
}

func TestSweepAds_UserScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.putAd(t, "owner", 1, nil)
	f.putAd(t, "other", 1, nil)
	f.clock.Advance(24*time.Hour + time.Minute)

	moved, err := f.sweeper.SweepAds(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	live := f.store.LiveAds()
	require.Len(t, live, 1)
	assert.Equal(t, "other", live[0].UserID)
}

// TestSweepAds_EndDateBoundary checks that an ad ending exactly now is kept.
func TestSweepAds_EndDateBoundary(t *testing.T) {
	f := newFixture(t)
	f.putAd(t, "owner", 1, nil)
	f.clock.Advance(24 * time.Hour)

	moved, err := f.sweeper.SweepAds(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, moved)
}

func TestSweep_TransactionFailure(t *testing.T) {
	tx := mocks.NewMockTransactor(t)
	tx.EXPECT().
		WithinTx(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: begin transaction: connection refused", domain.ErrStoreFailure))

	sw := NewSweeper(nil, nil, tx, testutil.FixedClock(), discardLogger())
	moved, err := sw.SweepPosts(context.Background())
	if !errors.Is(err, domain.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
	assert.Zero(t, moved)
	assert.ErrorContains(t, err, "sweep posts")
}
