package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// PointsRepository returns the store as a port.PointsRepository.
func (s *Store) PointsRepository() port.PointsRepository { return (*pointsRepo)(s) }

// UserRepository returns the store as a port.UserRepository.
func (s *Store) UserRepository() port.UserRepository { return (*userRepo)(s) }

type pointsRepo Store

func (r *pointsRepo) AppendEntry(_ context.Context, entry *domain.PointEntry) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("AppendEntry"); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	s.entries = append(s.entries, cloneEntry(*entry))
	return nil
}

func (r *pointsRepo) FindClaimCredit(_ context.Context, postID string) (*domain.PointEntry, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("FindClaimCredit"); err != nil {
		return nil, err
	}
	for _, e := range s.entries {
		if e.PostID != nil && *e.PostID == postID && e.Source == domain.SourceFoodClaim {
			e = cloneEntry(e)
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: claim credit for post %s", domain.ErrNotFound, postID)
}

func (r *pointsRepo) ListEntries(_ context.Context, userID string, limit, offset int) ([]domain.PointEntry, int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.PointEntry
	// newest first: walk the append-only log backwards
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].UserID == userID {
			matched = append(matched, cloneEntry(s.entries[i]))
		}
	}
	return page(matched, limit, offset), int64(len(matched)), nil
}

// Entries returns a copy of the whole ledger in append order.
func (s *Store) Entries() []domain.PointEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PointEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, cloneEntry(e))
	}
	return out
}

type userRepo Store

func (r *userRepo) GetUser(_ context.Context, id string) (*domain.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetUser"); err != nil {
		return nil, err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return &u, nil
}

func (r *userRepo) AddPoints(_ context.Context, userID string, delta int) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("AddPoints"); err != nil {
		return err
	}
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	u.Points += delta
	s.users[userID] = u
	return nil
}

func (r *userRepo) Leaderboard(_ context.Context, limit int) ([]domain.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == domain.RoleUser {
			users = append(users, u)
		}
	}
	slices.SortFunc(users, func(a, b domain.User) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return page(users, limit, 0), nil
}

func (r *userRepo) ListUsers(_ context.Context, limit, offset int) ([]domain.User, int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role != domain.RoleSuperAdmin {
			users = append(users, u)
		}
	}
	slices.SortFunc(users, func(a, b domain.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return page(users, limit, offset), int64(len(users)), nil
}

func (r *userRepo) FindUsersByContact(_ context.Context, query string) ([]domain.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.users {
		if u.Email == query || (u.Phone != "" && u.Phone == query) {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b domain.User) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *userRepo) SetBlocked(_ context.Context, userID string, blocked bool) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("SetBlocked"); err != nil {
		return err
	}
	u, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	u.IsBlocked = blocked
	s.users[userID] = u
	return nil
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	s.users[u.ID] = u
}

// User returns a copy of the stored user.
func (s *Store) User(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func cloneEntry(e domain.PointEntry) domain.PointEntry {
	if e.PostID != nil {
		id := *e.PostID
		e.PostID = &id
	}
	return e
}
