package domain

import "time"

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// PointSource names the donation event that produced a ledger entry.
type PointSource string

const (
	SourceFoodClaim   PointSource = "food_claim"
	SourcePostDeleted PointSource = "post_deleted"
)

const (
	basePoints       = 10
	bonusPoints      = 5
	servingsPerBonus = 10
	maxPoints        = 100
)

// PointEntry is an immutable ledger record. Debits carry negative Points.
type PointEntry struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	PostID          *string         `json:"postId,omitempty"`
	Points          int             `json:"points"`
	TransactionType TransactionType `json:"transactionType"`
	Source          PointSource     `json:"source"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ClaimPoints is the award for a claimed donation: a base of 10, plus 5 for
// every started block of 10 servings above the first 10, capped at 100.
func ClaimPoints(servings int) int {
	points := basePoints
	if servings > servingsPerBonus {
		extra := servings - servingsPerBonus
		points += (extra + servingsPerBonus - 1) / servingsPerBonus * bonusPoints
	}
	return min(points, maxPoints)
}
