package domain

import (
	"fmt"
	"time"
)

// Period is the bucket width of a dashboard time series.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// yearlyFallback is how many years an empty yearly series spans.
const yearlyFallback = 5

// SeriesSpec selects the window and buckets of a time series.
//
//	daily:   every day of Month/Year
//	weekly:  the last seven days including today, bucketed by weekday
//	monthly: every month of Year
//	yearly:  every year that has data, or the last five years
type SeriesSpec struct {
	Period Period
	Month  int
	Year   int
}

// Sample is a value observed at a point in time. Stores pre-aggregate
// samples per day.
type Sample struct {
	At    time.Time
	Value int64
}

// SeriesPoint is one labelled bucket of a series.
type SeriesPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Window returns the half-open range [from, to) of samples the series
// covers, with calendar boundaries taken in loc.
func (s SeriesSpec) Window(now time.Time, loc *time.Location) (from, to time.Time, err error) {
	now = now.In(loc)
	switch s.Period {
	case PeriodDaily:
		if s.Month < 1 || s.Month > 12 || !validYear(s.Year) {
			return from, to, fmt.Errorf("%w: provide month and year for daily data", ErrInvalidInput)
		}
		from = time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 1, 0), nil
	case PeriodWeekly:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return today.AddDate(0, 0, -6), today.AddDate(0, 0, 1), nil
	case PeriodMonthly:
		if !validYear(s.Year) {
			return from, to, fmt.Errorf("%w: provide year for monthly data", ErrInvalidInput)
		}
		from = time.Date(s.Year, time.January, 1, 0, 0, 0, 0, loc)
		return from, from.AddDate(1, 0, 0), nil
	case PeriodYearly:
		return time.Time{}, time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc), nil
	case "":
		return from, to, fmt.Errorf("%w: provide valid period", ErrInvalidInput)
	default:
		return from, to, fmt.Errorf("%w: invalid period %q", ErrInvalidInput, s.Period)
	}
}

// Aggregate sums samples into the buckets of the series. Buckets without
// samples are reported as zero; samples outside the window are ignored.
func (s SeriesSpec) Aggregate(samples []Sample, now time.Time, loc *time.Location) ([]SeriesPoint, error) {
	from, to, err := s.Window(now, loc)
	if err != nil {
		return nil, err
	}
	sums := make(map[int]int64)
	for _, sm := range samples {
		if sm.At.Before(from) || !sm.At.Before(to) {
			continue
		}
		sums[s.bucket(sm.At.In(loc))] += sm.Value
	}

	var points []SeriesPoint
	add := func(key int, name string) {
		points = append(points, SeriesPoint{Name: name, Value: sums[key]})
	}
	switch s.Period {
	case PeriodDaily:
		month := shortMonth(time.Month(s.Month))
		for d := 1; d <= from.AddDate(0, 1, -1).Day(); d++ {
			add(d, fmt.Sprintf("%d %s", d, month))
		}
	case PeriodWeekly:
		for d := time.Sunday; d <= time.Saturday; d++ {
			add(int(d), d.String()[:3])
		}
	case PeriodMonthly:
		for m := time.January; m <= time.December; m++ {
			add(int(m), shortMonth(m))
		}
	case PeriodYearly:
		lo, hi := now.In(loc).Year()-yearlyFallback+1, now.In(loc).Year()
		if len(sums) > 0 {
			lo, hi = 1<<31, -1<<31
			for y := range sums {
				lo, hi = min(lo, y), max(hi, y)
			}
		}
		for y := lo; y <= hi; y++ {
			add(y, fmt.Sprint(y))
		}
	}
	return points, nil
}

func (s SeriesSpec) bucket(t time.Time) int {
	switch s.Period {
	case PeriodDaily:
		return t.Day()
	case PeriodWeekly:
		return int(t.Weekday())
	case PeriodMonthly:
		return int(t.Month())
	default:
		return t.Year()
	}
}

func validYear(y int) bool { return y >= 1 && y <= 9999 }

func shortMonth(m time.Month) string { return m.String()[:3] }
