package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
	"foodshare/internal/testutil"
)

func TestCreatePost(t *testing.T) {
	f := newFixture(t)
	expiry := f.clock.Now().Add(6 * time.Hour)

	v, err := f.posts.CreatePost(context.Background(), owner, port.CreatePostReq{
		Title:      "Wedding leftovers",
		Servings:   40,
		ExpiryTime: expiry,
		Location:   domain.Location{Street: "4 Park St", City: "Kolkata", State: "West Bengal"},
		MediaURL:   testutil.MediaBaseURL + "posts/feast.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "owner", v.PostedBy)
	assert.Equal(t, "posts/feast.jpg", v.MediaKey)
	assert.Equal(t, testutil.MediaBaseURL+"posts/feast.jpg", v.MediaURL)
	assert.Len(t, f.store.LivePosts(), 1)
}

func TestCreatePost_Validation(t *testing.T) {
	f := newFixture(t)
	valid := port.CreatePostReq{
		Title:      "Rice",
		Servings:   5,
		ExpiryTime: f.clock.Now().Add(time.Hour),
		Location:   domain.Location{Street: "s", City: "c", State: "st"},
	}

	cases := map[string]func(*port.CreatePostReq){
		"no title":      func(r *port.CreatePostReq) { r.Title = " " },
		"zero servings": func(r *port.CreatePostReq) { r.Servings = 0 },
		"no expiry":     func(r *port.CreatePostReq) { r.ExpiryTime = time.Time{} },
		"no city":       func(r *port.CreatePostReq) { r.Location.City = "" },
		"bad media":     func(r *port.CreatePostReq) { r.MediaURL = "https://elsewhere.test/x.jpg" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			_, err := f.posts.CreatePost(context.Background(), owner, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.store.LivePosts())
}

func TestListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	late := f.putPost(t, "owner", 3, 5*time.Hour)
	soon := f.putPost(t, "other", 3, time.Hour)
	claimed := f.putPost(t, "owner", 3, 2*time.Hour)
	_, err := f.posts.MarkClaimed(ctx, owner, claimed.ID)
	require.NoError(t, err)
	f.putPost(t, "owner", 3, -time.Minute)

	resp, err := f.posts.ListPosts(ctx, port.PostListReq{City: "Pune"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)
	assert.Equal(t, soon.ID, resp.Posts[0].ID)
	assert.Equal(t, late.ID, resp.Posts[1].ID)
	assert.Equal(t, int64(2), resp.Page.Total)

	resp, err = f.posts.ListPosts(ctx, port.PostListReq{City: "Mumbai"})
	require.NoError(t, err)
	assert.Empty(t, resp.Posts)
}

func TestUserPosts_IncludesArchive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.putPost(t, "owner", 3, -time.Hour)
	f.clock.Advance(time.Minute)
	open := f.putPost(t, "owner", 3, time.Hour)

	_, err := f.sweeper.SweepPosts(ctx)
	require.NoError(t, err)

	resp, err := f.posts.UserPosts(ctx, port.UserPostsReq{UserID: "owner"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)
	assert.Equal(t, open.ID, resp.Posts[0].ID)
	assert.Equal(t, 1, resp.Page.CurrentPage)
}

func TestMarkClaimed(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 25, time.Hour)

	res, err := f.posts.MarkClaimed(context.Background(), owner, post.ID)
	require.NoError(t, err)
	assert.True(t, res.Post.IsClaimed)
	require.NotNil(t, res.Post.ClaimedAt)
	assert.Equal(t, f.clock.Now(), *res.Post.ClaimedAt)

	assert.Equal(t, 20, res.Entry.Points)
	assert.Equal(t, domain.TransactionCredit, res.Entry.TransactionType)
	assert.Equal(t, domain.SourceFoodClaim, res.Entry.Source)
	assert.Equal(t, 20, f.balance(t, "owner"))
	assert.Len(t, f.store.Entries(), 1)
}

func TestMarkClaimed_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.putPost(t, "owner", 5, time.Hour)

	_, err := f.posts.MarkClaimed(ctx, other, post.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// admins may not confirm on the poster's behalf
	_, err = f.posts.MarkClaimed(ctx, admin, post.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.posts.MarkClaimed(ctx, owner, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.posts.MarkClaimed(ctx, owner, post.ID)
	require.NoError(t, err)
	_, err = f.posts.MarkClaimed(ctx, owner, post.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	assert.Equal(t, 10, f.balance(t, "owner"))
	assert.Len(t, f.store.Entries(), 1)
}

func TestMarkClaimed_RollsBackWhenBalanceFails(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 5, time.Hour)
	f.store.FailNext("AddPoints", fmt.Errorf("%w: connection reset", domain.ErrStoreFailure))

	_, err := f.posts.MarkClaimed(context.Background(), owner, post.ID)
	if !errors.Is(err, domain.ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}

	stored, err := f.store.PostRepository().GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsClaimed)
	assert.Nil(t, stored.ClaimedAt)
	assert.Empty(t, f.store.Entries())
	assert.Equal(t, 0, f.balance(t, "owner"))
}

// TestDeletePost_ReversesAward checks that claim followed by delete nets the
// balance back to where it started.
func TestDeletePost_ReversesAward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.putPost(t, "owner", 120, time.Hour)

	_, err := f.posts.MarkClaimed(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 65, f.balance(t, "owner"))

	require.NoError(t, f.posts.DeletePost(ctx, owner, post.ID))

	assert.Equal(t, 0, f.balance(t, "owner"))
	entries := f.store.Entries()
	require.Len(t, entries, 2)
	debit := entries[1]
	assert.Equal(t, -65, debit.Points)
	assert.Equal(t, domain.TransactionDebit, debit.TransactionType)
	assert.Equal(t, domain.SourcePostDeleted, debit.Source)
	require.NotNil(t, debit.PostID)
	assert.Equal(t, post.ID, *debit.PostID)

	assert.Empty(t, f.store.LivePosts())
	assert.Equal(t, []string{"posts/biryani.jpg"}, f.media.Deleted())
}

func TestDeletePost_Unclaimed(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 3, time.Hour)

	require.NoError(t, f.posts.DeletePost(context.Background(), owner, post.ID))
	assert.Empty(t, f.store.Entries())
	assert.Equal(t, 0, f.balance(t, "owner"))
}

func TestDeletePost_MediaFailureTolerated(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 3, time.Hour)
	f.media.DeleteErr = errors.New("bucket unreachable")

	require.NoError(t, f.posts.DeletePost(context.Background(), owner, post.ID))
	assert.Empty(t, f.store.LivePosts())
}

func TestDeletePost_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.putPost(t, "owner", 3, time.Hour)

	assert.ErrorIs(t, f.posts.DeletePost(ctx, owner, ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.posts.DeletePost(ctx, other, post.ID), domain.ErrForbidden)
	assert.ErrorIs(t, f.posts.DeletePost(ctx, owner, "missing"), domain.ErrNotFound)
	assert.Len(t, f.store.LivePosts(), 1)
	assert.Empty(t, f.media.Deleted())
}

func TestDeletePost_RollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.putPost(t, "owner", 3, time.Hour)
	_, err := f.posts.MarkClaimed(ctx, owner, post.ID)
	require.NoError(t, err)

	f.store.FailNext("DeletePost", fmt.Errorf("%w: lock timeout", domain.ErrStoreFailure))
	err = f.posts.DeletePost(ctx, owner, post.ID)
	assert.ErrorIs(t, err, domain.ErrStoreFailure)

	assert.Equal(t, 10, f.balance(t, "owner"))
	assert.Len(t, f.store.Entries(), 1)
	assert.Len(t, f.store.LivePosts(), 1)
	assert.Empty(t, f.media.Deleted())
}

// TestMarkClaimed_Concurrent ensures concurrent confirmations award points
// exactly once.
func TestMarkClaimed_Concurrent(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 15, time.Hour)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.posts.MarkClaimed(context.Background(), owner, post.ID); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	if succeeded.Load() != 1 {
		t.Fatalf("expected exactly one successful claim, got %d", succeeded.Load())
	}
	assert.Equal(t, 15, f.balance(t, "owner"))
	assert.Len(t, f.store.Entries(), 1)
}

func TestListPosts_PagingBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for range 3 {
		f.putPost(t, "owner", 2, time.Hour)
	}

	for _, page := range []int{math.MaxInt64 / 5, math.MaxInt} {
		_, err := f.posts.ListPosts(ctx, port.PostListReq{Page: page, Limit: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "page %d", page)
		_, err = f.posts.UserPosts(ctx, port.UserPostsReq{UserID: "owner", Page: page, Limit: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "page %d", page)
	}

	resp, err := f.posts.ListPosts(ctx, port.PostListReq{Page: port.MaxPage, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, resp.Posts)
	assert.Equal(t, int64(3), resp.Page.Total)
	assert.Equal(t, 1, resp.Page.LastPage)
}

func TestToggleLike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.putPost(t, "owner", 4, time.Hour)

	v, err := f.posts.ToggleLike(ctx, other, post.ID)
	require.NoError(t, err)
	assert.True(t, v.LikedByUser)
	assert.Equal(t, 1, v.LikeCount)

	v, err = f.posts.ToggleLike(ctx, owner, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, v.LikeCount)

	v, err = f.posts.ToggleLike(ctx, other, post.ID)
	require.NoError(t, err)
	assert.False(t, v.LikedByUser)
	assert.Equal(t, 1, v.LikeCount)

	_, err = f.posts.ToggleLike(ctx, other, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.posts.ToggleLike(ctx, other, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestToggleLike_RollsBack(t *testing.T) {
	f := newFixture(t)
	post := f.putPost(t, "owner", 4, time.Hour)
	ctx := context.Background()

	// the reload after the toggle fails
	boom := errors.New("boom")
	f.store.FailAfter("GetPost", 1, boom)
	_, err := f.posts.ToggleLike(ctx, other, post.ID)
	require.ErrorIs(t, err, boom)

	stored, err := f.store.PostRepository().GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.LikeCount)
	liked, err := f.store.PostRepository().LikedPostIDs(ctx, "other", []string{post.ID})
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestPostLists_LikedByViewer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	liked := f.putPost(t, "owner", 4, time.Hour)
	plain := f.putPost(t, "owner", 4, 2*time.Hour)
	_, err := f.posts.ToggleLike(ctx, other, liked.ID)
	require.NoError(t, err)

	resp, err := f.posts.ListPosts(ctx, port.PostListReq{ViewerID: "other"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)
	assert.True(t, resp.Posts[0].LikedByUser)
	assert.False(t, resp.Posts[1].LikedByUser)
	assert.Equal(t, plain.ID, resp.Posts[1].ID)

	resp, err = f.posts.ListPosts(ctx, port.PostListReq{ViewerID: "owner"})
	require.NoError(t, err)
	assert.False(t, resp.Posts[0].LikedByUser)

	// likes survive archival
	f.clock.Advance(3 * time.Hour)
	_, err = f.sweeper.SweepPosts(ctx)
	require.NoError(t, err)
	resp, err = f.posts.UserPosts(ctx, port.UserPostsReq{ViewerID: "other", UserID: "owner"})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 2)
	for _, p := range resp.Posts {
		assert.Equal(t, p.ID == liked.ID, p.LikedByUser, p.ID)
	}
}

func TestUserPosts_RequiresUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.posts.UserPosts(context.Background(), port.UserPostsReq{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
