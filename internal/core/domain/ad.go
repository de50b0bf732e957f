package domain

import (
	"fmt"
	"time"
)

// MinutesPerDay converts purchased days into the runtime budget.
const MinutesPerDay = 24 * 60

// AdStatus is the lifecycle state of an ad.
type AdStatus string

const (
	AdStatusLive    AdStatus = "live"
	AdStatusPaused  AdStatus = "paused"
	AdStatusExpired AdStatus = "expired"
)

// Valid reports whether s names a known lifecycle state.
func (s AdStatus) Valid() bool {
	switch s {
	case AdStatusLive, AdStatusPaused, AdStatusExpired:
		return true
	}
	return false
}

// PaymentStatus mirrors the gateway state of the order paying for an ad.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

// Ad is a paid, time-boxed promotional listing. TotalRuntime counts whole
// minutes spent live and is only brought up to date on pause; while live
// the minutes since LastResumedAt are still owed to it.
type Ad struct {
	ID            string        `json:"id"`
	Content       string        `json:"content"`
	MediaKey      string        `json:"mediaKey,omitempty"`
	WebURL        string        `json:"webUrl,omitempty"`
	Duration      int           `json:"duration"` // purchased days
	UserID        string        `json:"userId"`
	PaymentID     string        `json:"paymentId"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Status        AdStatus      `json:"status"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	TotalRuntime  int64         `json:"totalRuntime"` // minutes
	LastResumedAt *time.Time    `json:"lastResumedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NewAd builds a freshly purchased ad. It starts live with its runtime
// clock running from now.
func NewAd(content, mediaKey, webURL string, duration int, userID, paymentID string, now time.Time) (*Ad, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of days", ErrInvalidInput)
	}
	start := now
	return &Ad{
		Content:       content,
		MediaKey:      mediaKey,
		WebURL:        webURL,
		Duration:      duration,
		UserID:        userID,
		PaymentID:     paymentID,
		PaymentStatus: PaymentPending,
		Status:        AdStatusLive,
		StartDate:     start,
		EndDate:       start.Add(time.Duration(duration) * MinutesPerDay * time.Minute),
		LastResumedAt: &start,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// BudgetMinutes is the total number of live minutes the ad paid for.
func (a *Ad) BudgetMinutes() int64 {
	return int64(a.Duration) * MinutesPerDay
}

// Pause freezes the runtime clock, folding the minutes spent live since the
// last resume into TotalRuntime.
func (a *Ad) Pause(now time.Time) error {
	if a.Status != AdStatusLive {
		return fmt.Errorf("%w: only live ads can be paused", ErrInvalidState)
	}
	if a.LastResumedAt != nil {
		a.TotalRuntime += elapsedMinutes(*a.LastResumedAt, now)
	}
	a.Status = AdStatusPaused
	a.UpdatedAt = now
	return nil
}

// Resume restarts the runtime clock and moves EndDate so the remaining
// budget is served from now on.
func (a *Ad) Resume(now time.Time) error {
	if a.Status != AdStatusPaused {
		return fmt.Errorf("%w: only paused ads can be resumed", ErrInvalidState)
	}
	if a.Duration <= 0 {
		return fmt.Errorf("%w: invalid booked days", ErrInvalidInput)
	}
	remaining := a.RemainingMinutes()
	if remaining <= 0 {
		return ErrExhaustedBudget
	}
	resumed := now
	a.Status = AdStatusLive
	a.LastResumedAt = &resumed
	a.EndDate = now.Add(time.Duration(remaining) * time.Minute)
	a.UpdatedAt = now
	return nil
}

// RemainingMinutes is the unspent budget according to the persisted runtime.
func (a *Ad) RemainingMinutes() int64 {
	return a.BudgetMinutes() - a.TotalRuntime
}

// EffectiveRuntime is the runtime shown to readers: the persisted total plus
// the minutes owed for the current live stretch. It never fails and is not
// written back.
func (a *Ad) EffectiveRuntime(now time.Time) int64 {
	runtime := a.TotalRuntime
	if a.Status == AdStatusLive && a.LastResumedAt != nil {
		runtime += elapsedMinutes(*a.LastResumedAt, now)
	}
	// rows written before lastResumedAt existed only know their start date
	if a.LastResumedAt == nil && a.TotalRuntime == 0 && !a.StartDate.IsZero() {
		runtime = elapsedMinutes(a.StartDate, now)
	}
	return runtime
}

// Expired reports whether the ad is due for archival: either its end date
// has passed or it has consumed more than its purchased budget.
func (a *Ad) Expired(now time.Time) bool {
	return a.EndDate.Before(now) || a.TotalRuntime > a.BudgetMinutes()
}

// Servable reports whether the ad may be shown to the public at now.
func (a *Ad) Servable(now time.Time) bool {
	return a.Status == AdStatusLive &&
		a.PaymentStatus == PaymentSuccess &&
		!a.StartDate.After(now) &&
		!a.EndDate.Before(now) &&
		a.TotalRuntime <= a.BudgetMinutes()
}

// Archived returns the terminal snapshot stored in the archive collection.
func (a Ad) Archived() Ad {
	a.Status = AdStatusExpired
	return a
}

// elapsedMinutes floors the whole minutes between from and now. Clock skew
// that puts from after now counts as zero.
func elapsedMinutes(from, now time.Time) int64 {
	d := now.Sub(from)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Minute)
}
