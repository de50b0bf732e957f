package domain

import "time"

// Payment is the gateway order that pays for an ad.
// Amounts are whole currency units (rupees for INR).
type Payment struct {
	ID               string        `json:"id"`
	OrderID          string        `json:"orderId"`
	PaymentSessionID string        `json:"paymentSessionId"`
	CustomerName     string        `json:"customerName"`
	CustomerEmail    string        `json:"customerEmail"`
	CustomerPhone    string        `json:"customerPhone"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// PricingType says whether a service is charged per day or once.
type PricingType string

const (
	PricingTimeBased PricingType = "time_based"
	PricingFlat      PricingType = "flat"
)

// Service is a priced offering such as "ads".
type Service struct {
	Name     string      `json:"name"`
	Type     PricingType `json:"type"`
	Price    int64       `json:"price"`
	Duration int         `json:"duration"` // default days for time based pricing
}

// Quote prices the service for the given number of days. days <= 0 falls
// back to the service default.
func (s *Service) Quote(days int) int64 {
	if s.Type != PricingTimeBased {
		return s.Price
	}
	if days <= 0 {
		days = s.Duration
	}
	return s.Price * int64(days)
}
