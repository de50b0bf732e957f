package memory

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// AdRepository returns the store as a port.AdRepository.
func (s *Store) AdRepository() port.AdRepository { return (*adRepo)(s) }

type adRepo Store

func (r *adRepo) store() *Store { return (*Store)(r) }

func (r *adRepo) CreateAd(_ context.Context, ad *domain.Ad) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreateAd"); err != nil {
		return err
	}
	if ad.ID == "" {
		ad.ID = newID()
	}
	stamp(&ad.CreatedAt, &ad.UpdatedAt)
	s.ads[ad.ID] = cloneAd(*ad)
	return nil
}

func (r *adRepo) GetAd(_ context.Context, id string) (*domain.Ad, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("GetAd"); err != nil {
		return nil, err
	}
	ad, ok := s.ads[id]
	if !ok {
		return nil, fmt.Errorf("%w: ad %s", domain.ErrNotFound, id)
	}
	ad = cloneAd(ad)
	return &ad, nil
}

func (r *adRepo) GetAdByPaymentID(_ context.Context, paymentID string) (*domain.Ad, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ad := range s.ads {
		if ad.PaymentID == paymentID {
			ad = cloneAd(ad)
			return &ad, nil
		}
	}
	return nil, fmt.Errorf("%w: ad for payment %s", domain.ErrNotFound, paymentID)
}

func (r *adRepo) TransitionAd(_ context.Context, ad *domain.Ad, from domain.AdStatus) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("TransitionAd"); err != nil {
		return err
	}
	stored, ok := s.ads[ad.ID]
	if !ok || stored.Status != from {
		return fmt.Errorf("%w: ad %s changed concurrently", domain.ErrInvalidState, ad.ID)
	}
	stored.Status = ad.Status
	stored.TotalRuntime = ad.TotalRuntime
	stored.LastResumedAt = cloneTime(ad.LastResumedAt)
	stored.EndDate = ad.EndDate
	stored.UpdatedAt = ad.UpdatedAt
	s.ads[ad.ID] = stored
	return nil
}

func (r *adRepo) SetAdPaymentStatus(_ context.Context, adID string, status domain.PaymentStatus) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	ad, ok := s.ads[adID]
	if !ok {
		return fmt.Errorf("%w: ad %s", domain.ErrNotFound, adID)
	}
	ad.PaymentStatus = status
	s.ads[adID] = ad
	return nil
}

func (r *adRepo) FindExpiredAds(_ context.Context, userID string, now time.Time) ([]domain.Ad, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("FindExpiredAds"); err != nil {
		return nil, err
	}
	var out []domain.Ad
	for _, ad := range s.ads {
		if userID != "" && ad.UserID != userID {
			continue
		}
		if ad.Expired(now) {
			out = append(out, cloneAd(ad))
		}
	}
	return out, nil
}

func (r *adRepo) ArchiveAds(_ context.Context, ads []domain.Ad) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("ArchiveAds"); err != nil {
		return err
	}
	for _, ad := range ads {
		s.archivedAds = append(s.archivedAds, cloneAd(ad))
	}
	return nil
}

func (r *adRepo) DeleteAds(_ context.Context, ids []string) error {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("DeleteAds"); err != nil {
		return err
	}
	for _, id := range ids {
		delete(s.ads, id)
	}
	return nil
}

func (r *adRepo) ListAds(_ context.Context, q port.AdQuery) ([]domain.Ad, int64, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Ad
	for _, ad := range s.ads {
		if matchAd(ad, q) {
			matched = append(matched, cloneAd(ad))
		}
	}
	sortNewest(matched)
	return page(matched, q.Limit, q.Offset), int64(len(matched)), nil
}

func (r *adRepo) ListArchivedAds(_ context.Context, q port.AdQuery) ([]domain.Ad, int64, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Ad
	for _, ad := range s.archivedAds {
		if matchAd(ad, q) {
			matched = append(matched, cloneAd(ad))
		}
	}
	sortNewest(matched)
	return page(matched, q.Limit, q.Offset), int64(len(matched)), nil
}

func (r *adRepo) CountAdsByStatus(_ context.Context, userID string) (port.AdStats, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var stats port.AdStats
	for _, ad := range s.ads {
		if ad.UserID != userID {
			continue
		}
		switch ad.Status {
		case domain.AdStatusLive:
			stats.Live++
		case domain.AdStatusPaused:
			stats.Paused++
		}
	}
	for _, ad := range s.archivedAds {
		if ad.UserID == userID && ad.Status == domain.AdStatusExpired {
			stats.Expired++
		}
	}
	return stats, nil
}

func (r *adRepo) RandomServableAd(_ context.Context, now time.Time) (*domain.Ad, error) {
	s := r.store()
	s.mu.Lock()
	defer s.mu.Unlock()
	var candidates []domain.Ad
	for _, ad := range s.ads {
		if ad.Servable(now) {
			candidates = append(candidates, ad)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no active ads available", domain.ErrNotFound)
	}
	ad := cloneAd(candidates[rand.IntN(len(candidates))])
	return &ad, nil
}

// LiveAds returns a copy of the live collection.
func (s *Store) LiveAds() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		out = append(out, cloneAd(ad))
	}
	return out
}

// ArchivedAds returns a copy of the archive collection.
func (s *Store) ArchivedAds() []domain.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ad, 0, len(s.archivedAds))
	for _, ad := range s.archivedAds {
		out = append(out, cloneAd(ad))
	}
	return out
}

func matchAd(ad domain.Ad, q port.AdQuery) bool {
	if q.UserID != "" && ad.UserID != q.UserID {
		return false
	}
	if q.Status != "" && ad.Status != q.Status {
		return false
	}
	return true
}

func sortNewest(ads []domain.Ad) {
	slices.SortFunc(ads, func(a, b domain.Ad) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
