package domain

import (
	"fmt"
	"strings"
	"time"
)

// Location is where donated food can be collected.
type Location struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// Post is a surplus-food donation listing.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Servings    int        `json:"servings"`
	ExpiryTime  time.Time  `json:"expiryTime"`
	Location    Location   `json:"location"`
	MediaKey    string     `json:"mediaKey,omitempty"`
	PostedBy    string     `json:"postedBy"`
	IsClaimed   bool       `json:"isClaimed"`
	ClaimedAt   *time.Time `json:"claimedAt,omitempty"`
	LikeCount   int        `json:"likeCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate checks the fields a post must carry before it is stored.
func (p *Post) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case p.Servings < 1:
		return fmt.Errorf("%w: servings must be at least 1", ErrInvalidInput)
	case p.ExpiryTime.IsZero():
		return fmt.Errorf("%w: expiry time is required", ErrInvalidInput)
	case p.Location.Street == "" || p.Location.City == "" || p.Location.State == "":
		return fmt.Errorf("%w: street, city and state are required", ErrInvalidInput)
	}
	return nil
}

// MarkClaimed performs the one-way claim transition.
func (p *Post) MarkClaimed(now time.Time) error {
	if p.IsClaimed {
		return fmt.Errorf("%w: post already marked as claimed", ErrInvalidState)
	}
	claimed := now
	p.IsClaimed = true
	p.ClaimedAt = &claimed
	p.UpdatedAt = now
	return nil
}

// Archivable reports whether the sweeper should move the post out of the
// live collection.
func (p *Post) Archivable(now time.Time) bool {
	return p.IsClaimed || p.ExpiryTime.Before(now)
}
