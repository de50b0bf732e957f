package configs

import (
	"fmt"
	"time"
)

// Sweeper schedules the daily archival job.
type Sweeper struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Schedule is a standard five field cron expression.
	Schedule string `env:"SCHEDULE" envDefault:"0 1 * * *"`
	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Kolkata"`
}

// Location loads Timezone.
func (c Sweeper) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("sweeper timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
