package port

import (
	"context"
	"time"

	"foodshare/internal/core/domain"
)

// Clock abstracts time retrieval so runtime accounting is deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the actual current time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// MediaStore resolves opaque media keys. The core never looks inside a key.
type MediaStore interface {
	// PublicURL returns the URL clients use to fetch key.
	PublicURL(key string) string
	// ExtractKey validates a public URL and returns the stored key.
	ExtractKey(rawURL string) (string, bool)
	// Delete removes the stored object.
	Delete(ctx context.Context, key string) error
}

// PaymentGateway creates and inspects orders at the payment provider.
type PaymentGateway interface {
	// CreateOrder registers an order and returns the payment session id
	// the client uses to check out.
	CreateOrder(ctx context.Context, order Order) (string, error)
	// OrderStatus returns the provider's view of an order.
	OrderStatus(ctx context.Context, orderID string) (domain.PaymentStatus, error)
}

// Order is the payload sent to the payment gateway.
type Order struct {
	OrderID       string
	Amount        int64
	Currency      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}
