package testutil

import (
	"context"
	"strings"
	"sync"

	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// MediaBaseURL is the prefix StubMedia publishes keys under.
const MediaBaseURL = "https://media.test/"

// StubMedia is an in-memory port.MediaStore that records deletions.
type StubMedia struct {
	mu      sync.Mutex
	deleted []string
	// DeleteErr is returned by Delete when set.
	DeleteErr error
}

func (m *StubMedia) PublicURL(key string) string { return MediaBaseURL + key }

func (m *StubMedia) ExtractKey(rawURL string) (string, bool) {
	key, ok := strings.CutPrefix(rawURL, MediaBaseURL)
	return key, ok && key != ""
}

func (m *StubMedia) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	return m.DeleteErr
}

// Deleted returns the keys passed to Delete.
func (m *StubMedia) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// StubGateway is a port.PaymentGateway with canned answers.
type StubGateway struct {
	mu          sync.Mutex
	orders      []port.Order
	statusCalls int
	// Status is returned by OrderStatus; Pending when empty.
	Status domain.PaymentStatus
	Err    error
}

func (g *StubGateway) CreateOrder(_ context.Context, o port.Order) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	g.orders = append(g.orders, o)
	return "session-" + o.OrderID, nil
}

func (g *StubGateway) OrderStatus(context.Context, string) (domain.PaymentStatus, error) {
	g.mu.Lock()
	g.statusCalls++
	g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	if g.Status == "" {
		return domain.PaymentPending, nil
	}
	return g.Status, nil
}

// Orders returns the orders created so far.
func (g *StubGateway) Orders() []port.Order {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]port.Order(nil), g.orders...)
}

// StatusCalls counts OrderStatus lookups.
func (g *StubGateway) StatusCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusCalls
}
