package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// PaymentRepository returns the store as a port.PaymentRepository.
func (s *Store) PaymentRepository() port.PaymentRepository { return (*paymentRepo)(s) }

// PriceRepository returns the store as a port.PriceRepository.
func (s *Store) PriceRepository() port.PriceRepository { return (*priceRepo)(s) }

// AnalyticsRepository returns the store as a port.AnalyticsRepository.
func (s *Store) AnalyticsRepository() port.AnalyticsRepository { return (*analyticsRepo)(s) }

type paymentRepo Store

func (r *paymentRepo) CreatePayment(_ context.Context, p *domain.Payment) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fault("CreatePayment"); err != nil {
		return err
	}
	if _, dup := s.payments[p.OrderID]; dup {
		return fmt.Errorf("%w: duplicate order %s", domain.ErrStoreFailure, p.OrderID)
	}
	if p.ID == "" {
		p.ID = newID()
	}
	stamp(&p.CreatedAt, &p.UpdatedAt)
	s.payments[p.OrderID] = *p
	return nil
}

func (r *paymentRepo) GetPaymentByOrderID(_ context.Context, orderID string) (*domain.Payment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: payment record %s", domain.ErrNotFound, orderID)
	}
	return &p, nil
}

func (r *paymentRepo) SetPaymentStatus(_ context.Context, orderID string, status domain.PaymentStatus) (*domain.Payment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: payment record %s", domain.ErrNotFound, orderID)
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	s.payments[orderID] = p
	return &p, nil
}

// Payment returns a copy of the stored payment.
func (s *Store) Payment(orderID string) (domain.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[orderID]
	return p, ok
}

type priceRepo Store

func (r *priceRepo) GetService(_ context.Context, name string) (*domain.Service, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[name]
	if !ok {
		return nil, fmt.Errorf("%w: service %q", domain.ErrNotFound, name)
	}
	return &svc, nil
}

// PutService inserts or replaces a price list entry.
func (s *Store) PutService(svc domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.Name] = svc
}

type analyticsRepo Store

func (r *analyticsRepo) Summary(_ context.Context) (*port.Summary, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := port.Summary{TotalUsers: int64(len(s.users))}
	for _, post := range s.posts {
		if post.IsClaimed {
			sum.TotalFoodDonated += int64(post.Servings)
		}
	}
	for _, post := range s.archivedPosts {
		if post.IsClaimed {
			sum.TotalFoodDonated += int64(post.Servings)
		}
	}
	for _, p := range s.payments {
		if p.Status == domain.PaymentSuccess {
			sum.TotalPayments += p.Amount
		}
	}
	for _, ad := range s.ads {
		if ad.Status == domain.AdStatusLive {
			sum.LiveAds++
		}
	}
	return &sum, nil
}

func (r *analyticsRepo) RevenueByDay(_ context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make(map[time.Time]int64)
	for _, p := range s.payments {
		if p.Status == domain.PaymentSuccess && inWindow(p.CreatedAt, from, to) {
			days[startOfDay(p.CreatedAt, loc)] += p.Amount
		}
	}
	return samples(days), nil
}

func (r *analyticsRepo) DonationsByDay(_ context.Context, from, to time.Time, loc *time.Location) ([]domain.Sample, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make(map[time.Time]int64)
	count := func(post domain.Post) {
		if post.IsClaimed && inWindow(post.CreatedAt, from, to) {
			days[startOfDay(post.CreatedAt, loc)] += int64(post.Servings)
		}
	}
	for _, post := range s.posts {
		count(post)
	}
	for _, post := range s.archivedPosts {
		count(post)
	}
	return samples(days), nil
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func samples(days map[time.Time]int64) []domain.Sample {
	out := make([]domain.Sample, 0, len(days))
	for day, v := range days {
		out = append(out, domain.Sample{At: day, Value: v})
	}
	slices.SortFunc(out, func(a, b domain.Sample) int { return a.At.Compare(b.At) })
	return out
}
