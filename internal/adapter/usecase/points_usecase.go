package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// PointsLedger awards and reverses donation points. Every change appends a
// ledger entry and moves the cached balance by the same amount; callers run
// Award and Reverse inside the transaction of the post mutation that
// triggered them.
type PointsLedger struct {
	points port.PointsRepository
	users  port.UserRepository
	clock  port.Clock
	logger *slog.Logger
}

// NewPointsLedger creates a ledger engine.
func NewPointsLedger(points port.PointsRepository, users port.UserRepository, clock port.Clock, logger *slog.Logger) *PointsLedger {
	return &PointsLedger{points: points, users: users, clock: clock, logger: logger}
}

// Award credits userID for a claimed post. It does not deduplicate: the
// caller must have checked the post was unclaimed.
func (l *PointsLedger) Award(ctx context.Context, userID, postID string, servings int) (*domain.PointEntry, error) {
	if servings < 1 {
		return nil, fmt.Errorf("%w: servings must be at least 1", domain.ErrInvalidInput)
	}
	points := domain.ClaimPoints(servings)
	entry := &domain.PointEntry{
		UserID:          userID,
		PostID:          &postID,
		Points:          points,
		TransactionType: domain.TransactionCredit,
		Source:          domain.SourceFoodClaim,
		Description:     fmt.Sprintf("Earned %d points for donating %d servings", points, servings),
		CreatedAt:       l.clock.Now(),
	}
	if err := l.points.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("append claim credit: %w", err)
	}
	if err := l.users.AddPoints(ctx, userID, points); err != nil {
		return nil, fmt.Errorf("credit user balance: %w", err)
	}
	l.logger.Debug("points awarded", slog.String("user_id", userID), slog.String("post_id", postID), slog.Int("points", points))
	return entry, nil
}

// Reverse debits the award recorded for postID. A post that never earned
// points is not an error: Reverse returns nil, nil.
func (l *PointsLedger) Reverse(ctx context.Context, userID, postID string) (*domain.PointEntry, error) {
	credit, err := l.points.FindClaimCredit(ctx, postID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find claim credit: %w", err)
	}
	entry := &domain.PointEntry{
		UserID:          userID,
		PostID:          &postID,
		Points:          -credit.Points,
		TransactionType: domain.TransactionDebit,
		Source:          domain.SourcePostDeleted,
		Description:     fmt.Sprintf("Lost %d points because the donation post was deleted", credit.Points),
		CreatedAt:       l.clock.Now(),
	}
	if err = l.points.AppendEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("append deletion debit: %w", err)
	}
	if err = l.users.AddPoints(ctx, userID, -credit.Points); err != nil {
		return nil, fmt.Errorf("debit user balance: %w", err)
	}
	l.logger.Debug("points reversed", slog.String("user_id", userID), slog.String("post_id", postID), slog.Int("points", credit.Points))
	return entry, nil
}

// History returns a page of the actor's own ledger with their balance.
func (l *PointsLedger) History(ctx context.Context, actor domain.Actor, page, limit int) (*port.PointHistoryResp, error) {
	user, err := l.users.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	page, limit, offset, err := port.Normalize(page, limit)
	if err != nil {
		return nil, err
	}
	entries, total, err := l.points.ListEntries(ctx, actor.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &port.PointHistoryResp{
		Entries: entries,
		Balance: user.Points,
		Page:    port.NewPage(total, page, limit),
	}, nil
}

// Leaderboard returns the top users by balance without their contact
// details.
func (l *PointsLedger) Leaderboard(ctx context.Context, limit int) ([]port.LeaderboardEntry, error) {
	users, err := l.users.Leaderboard(ctx, port.ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	board := make([]port.LeaderboardEntry, len(users))
	for i, u := range users {
		board[i] = port.LeaderboardEntry{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Points: u.Points}
	}
	return board, nil
}
