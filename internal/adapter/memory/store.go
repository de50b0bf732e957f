// Package memory is an in-process implementation of every repository port.
// It backs tests and STORE_DRIVER=memory deployments. Transactions are
// serialized and roll back by restoring a snapshot taken on entry, so a
// non-transactional write racing a failed transaction may be discarded.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodshare/internal/core/domain"
)

type txKey struct{}

// Store holds all collections in memory. It is safe for concurrent use.
type Store struct {
	txMu sync.Mutex

	mu            sync.Mutex
	ads           map[string]domain.Ad
	archivedAds   []domain.Ad
	posts         map[string]domain.Post
	archivedPosts []domain.Post
	likes         map[likeKey]time.Time
	entries       []domain.PointEntry
	users         map[string]domain.User
	payments      map[string]domain.Payment // keyed by order id
	services      map[string]domain.Service
	faults        map[string]*injectedFault
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		ads:      make(map[string]domain.Ad),
		posts:    make(map[string]domain.Post),
		likes:    make(map[likeKey]time.Time),
		users:    make(map[string]domain.User),
		payments: make(map[string]domain.Payment),
		services: make(map[string]domain.Service),
		faults:   make(map[string]*injectedFault),
	}
}

type snapshot struct {
	ads           map[string]domain.Ad
	archivedAds   []domain.Ad
	posts         map[string]domain.Post
	archivedPosts []domain.Post
	likes         map[likeKey]time.Time
	entries       []domain.PointEntry
	users         map[string]domain.User
	payments      map[string]domain.Payment
}

// WithinTx implements port.Transactor.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	// stored values are never mutated in place, so shallow copies suffice
	return snapshot{
		ads:           maps.Clone(s.ads),
		archivedAds:   slices.Clone(s.archivedAds),
		posts:         maps.Clone(s.posts),
		archivedPosts: slices.Clone(s.archivedPosts),
		likes:         maps.Clone(s.likes),
		entries:       slices.Clone(s.entries),
		users:         maps.Clone(s.users),
		payments:      maps.Clone(s.payments),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = snap.ads
	s.archivedAds = snap.archivedAds
	s.posts = snap.posts
	s.archivedPosts = snap.archivedPosts
	s.likes = snap.likes
	s.entries = snap.entries
	s.users = snap.users
	s.payments = snap.payments
}

type injectedFault struct {
	skip int
	err  error
}

// FailNext makes the next call of the named repository method return err.
// Tests use it to abort transactions midway.
func (s *Store) FailNext(method string, err error) {
	s.FailAfter(method, 0, err)
}

// FailAfter lets skip calls of the named method succeed and makes the one
// after them return err.
func (s *Store) FailAfter(method string, skip int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[method] = &injectedFault{skip: skip, err: err}
}

// fault must be called with s.mu held.
func (s *Store) fault(method string) error {
	f, ok := s.faults[method]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		return nil
	}
	delete(s.faults, method)
	return f.err
}

func newID() string {
	return uuid.NewString()
}

func stamp(created *time.Time, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneAd(a domain.Ad) domain.Ad {
	a.LastResumedAt = cloneTime(a.LastResumedAt)
	return a
}

func clonePost(p domain.Post) domain.Post {
	p.ClaimedAt = cloneTime(p.ClaimedAt)
	return p
}
