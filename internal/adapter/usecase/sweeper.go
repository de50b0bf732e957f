package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// Sweeper moves expired ads and finished posts from the live collections to
// their archives. Each sweep archives and deletes its matched set inside one
// transaction, so a failed sweep leaves both collections untouched and a
// repeated sweep finds nothing left to move.
type Sweeper struct {
	ads    port.AdRepository
	posts  port.PostRepository
	tx     port.Transactor
	clock  port.Clock
	logger *slog.Logger
}

// NewSweeper creates a sweeper.
func NewSweeper(ads port.AdRepository, posts port.PostRepository, tx port.Transactor, clock port.Clock, logger *slog.Logger) *Sweeper {
	return &Sweeper{ads: ads, posts: posts, tx: tx, clock: clock, logger: logger}
}

// Run sweeps every eligible ad and post. Ads and posts are swept in
// separate transactions; a failure in one does not prevent the other.
func (s *Sweeper) Run(ctx context.Context) (port.SweepResult, error) {
	var (
		res  port.SweepResult
		errs []error
		err  error
	)
	s.logger.Info("starting archive sweep")

	if res.Ads, err = s.SweepAds(ctx, ""); err != nil {
		s.logger.Error("ad sweep failed", slog.Any("error", err))
		errs = append(errs, err)
	}
	if res.Posts, err = s.SweepPosts(ctx); err != nil {
		s.logger.Error("post sweep failed", slog.Any("error", err))
		errs = append(errs, err)
	}

	s.logger.Info("archive sweep finished", slog.Int("ads", res.Ads), slog.Int("posts", res.Posts))
	return res, errors.Join(errs...)
}

// SweepAds archives expired ads, forcing their status to expired. An empty
// userID sweeps every owner.
func (s *Sweeper) SweepAds(ctx context.Context, userID string) (int, error) {
	var moved int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		expired, err := s.ads.FindExpiredAds(ctx, userID, s.clock.Now())
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}
		snapshots := make([]domain.Ad, len(expired))
		ids := make([]string, len(expired))
		for i, ad := range expired {
			snapshots[i] = ad.Archived()
			ids[i] = ad.ID
		}
		if err = s.ads.ArchiveAds(ctx, snapshots); err != nil {
			return err
		}
		if err = s.ads.DeleteAds(ctx, ids); err != nil {
			return err
		}
		moved = len(expired)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep ads: %w", err)
	}
	if moved > 0 {
		s.logger.Info("archived expired ads", slog.Int("count", moved), slog.String("user_id", userID))
	}
	return moved, nil
}

// SweepPosts archives posts that are claimed or past their expiry time.
func (s *Sweeper) SweepPosts(ctx context.Context) (int, error) {
	var moved int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		posts, err := s.posts.FindArchivablePosts(ctx, s.clock.Now())
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		ids := make([]string, len(posts))
		for i, p := range posts {
			ids[i] = p.ID
		}
		if err = s.posts.ArchivePosts(ctx, posts); err != nil {
			return err
		}
		if err = s.posts.DeletePosts(ctx, ids); err != nil {
			return err
		}
		moved = len(posts)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep posts: %w", err)
	}
	if moved > 0 {
		s.logger.Info("archived claimed and expired posts", slog.Int("count", moved))
	}
	return moved, nil
}
