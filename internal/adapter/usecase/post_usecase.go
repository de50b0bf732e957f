package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// Ledger is the part of the points engine post mutations depend on.
type Ledger interface {
	Award(ctx context.Context, userID, postID string, servings int) (*domain.PointEntry, error)
	Reverse(ctx context.Context, userID, postID string) (*domain.PointEntry, error)
}

// PostUseCase manages food posts. Claim and delete run as single commands
// inside one transaction together with their ledger updates.
type PostUseCase struct {
	posts  port.PostRepository
	ledger Ledger
	tx     port.Transactor
	media  port.MediaStore
	clock  port.Clock
	logger *slog.Logger
}

// NewPostUseCase creates a post usecase.
func NewPostUseCase(posts port.PostRepository, ledger Ledger, tx port.Transactor, media port.MediaStore, clock port.Clock, logger *slog.Logger) *PostUseCase {
	return &PostUseCase{posts: posts, ledger: ledger, tx: tx, media: media, clock: clock, logger: logger}
}

// CreatePost stores a new donation listing posted by the actor.
func (u *PostUseCase) CreatePost(ctx context.Context, actor domain.Actor, req port.CreatePostReq) (*port.PostView, error) {
	now := u.clock.Now()
	post := &domain.Post{
		Title:       req.Title,
		Description: req.Description,
		Servings:    req.Servings,
		ExpiryTime:  req.ExpiryTime,
		Location:    req.Location,
		PostedBy:    actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}
	if req.MediaURL != "" {
		key, ok := u.media.ExtractKey(req.MediaURL)
		if !ok {
			return nil, fmt.Errorf("%w: invalid media URL", domain.ErrInvalidInput)
		}
		post.MediaKey = key
	}
	if err := u.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	v := u.view(*post)
	return &v, nil
}

// ListPosts pages open donations, optionally filtered by city and state.
func (u *PostUseCase) ListPosts(ctx context.Context, req port.PostListReq) (*port.PostListResp, error) {
	page, limit, offset, err := port.Normalize(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	posts, total, err := u.posts.ListOpenPosts(ctx, port.PostQuery{
		City:   req.City,
		State:  req.State,
		Now:    u.clock.Now(),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return u.listResp(ctx, req.ViewerID, posts, total, page, limit)
}

// UserPosts pages a user's posts across the live and archive collections.
func (u *PostUseCase) UserPosts(ctx context.Context, req port.UserPostsReq) (*port.PostListResp, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}
	page, limit, offset, err := port.Normalize(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	posts, total, err := u.posts.ListUserPosts(ctx, req.UserID, limit, offset)
	if err != nil {
		return nil, err
	}
	return u.listResp(ctx, req.ViewerID, posts, total, page, limit)
}

// ToggleLike flips the actor's like on a live post and returns the post
// with its new count.
func (u *PostUseCase) ToggleLike(ctx context.Context, actor domain.Actor, postID string) (*port.PostView, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: please provide a valid post id", domain.ErrInvalidInput)
	}
	var (
		post  *domain.Post
		liked bool
	)
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if _, err = u.posts.GetPost(ctx, postID); err != nil {
			return err
		}
		if liked, err = u.posts.ToggleLike(ctx, postID, actor.ID); err != nil {
			return err
		}
		post, err = u.posts.GetPost(ctx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	v := u.view(*post)
	v.LikedByUser = liked
	return &v, nil
}

// MarkClaimed flips the post to claimed and credits the poster. Both writes
// commit together or not at all.
func (u *PostUseCase) MarkClaimed(ctx context.Context, actor domain.Actor, postID string) (*port.ClaimResult, error) {
	var res port.ClaimResult
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		post, err := u.posts.GetPost(ctx, postID)
		if err != nil {
			return err
		}
		if post.PostedBy != actor.ID {
			return fmt.Errorf("%w: not authorized to update this post", domain.ErrForbidden)
		}
		if err = post.MarkClaimed(u.clock.Now()); err != nil {
			return err
		}
		if err = u.posts.ClaimPost(ctx, post); err != nil {
			return err
		}
		entry, err := u.ledger.Award(ctx, post.PostedBy, post.ID, post.Servings)
		if err != nil {
			return err
		}
		res = port.ClaimResult{Post: post, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeletePost removes the poster's post and reverses its award in one
// transaction. The stored media is removed once the transaction commits; a
// failure there is logged and does not undo the deletion.
func (u *PostUseCase) DeletePost(ctx context.Context, actor domain.Actor, postID string) error {
	if postID == "" {
		return fmt.Errorf("%w: please provide a valid post id", domain.ErrInvalidInput)
	}
	var mediaKey string
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		post, err := u.posts.GetPost(ctx, postID)
		if err != nil {
			return err
		}
		if post.PostedBy != actor.ID {
			return fmt.Errorf("%w: not authorized to delete this post", domain.ErrForbidden)
		}
		if _, err = u.ledger.Reverse(ctx, post.PostedBy, post.ID); err != nil {
			return err
		}
		if err = u.posts.DeletePost(ctx, post.ID); err != nil {
			return err
		}
		mediaKey = post.MediaKey
		return nil
	})
	if err != nil {
		return err
	}

	if mediaKey != "" {
		if err = u.media.Delete(ctx, mediaKey); err != nil {
			u.logger.Warn("failed to delete post media", slog.String("post_id", postID), slog.Any("error", err))
		}
	}
	return nil
}

func (u *PostUseCase) listResp(ctx context.Context, viewerID string, posts []domain.Post, total int64, page, limit int) (*port.PostListResp, error) {
	liked := map[string]bool{}
	if viewerID != "" && len(posts) > 0 {
		ids := make([]string, len(posts))
		for i := range posts {
			ids[i] = posts[i].ID
		}
		var err error
		if liked, err = u.posts.LikedPostIDs(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}
	views := make([]port.PostView, len(posts))
	for i := range posts {
		views[i] = u.view(posts[i])
		views[i].LikedByUser = liked[posts[i].ID]
	}
	return &port.PostListResp{Posts: views, Page: port.NewPage(total, page, limit)}, nil
}

func (u *PostUseCase) view(p domain.Post) port.PostView {
	v := port.PostView{Post: p}
	if p.MediaKey != "" {
		v.MediaURL = u.media.PublicURL(p.MediaKey)
	}
	return v
}
