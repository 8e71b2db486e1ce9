package domain

import (
	"fmt"
	"time"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
)

// Period is an inclusive calendar-date range [From, To] over which
// transactions are aggregated. Both bounds are normalized to UTC midnight.
type Period struct {
	From time.Time
	To   time.Time
}

// DefaultPeriodDays is the window used when the caller omits the range:
// To defaults to today, From to 30 days prior.
const DefaultPeriodDays = 30

// truncateToDay drops any time-of-day component.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewPeriod constructs a Period, rejecting inverted ranges.
// A malformed range is a caller contract violation, so it fails fast with
// ErrValidation rather than silently swapping the bounds.
func NewPeriod(from, to time.Time) (Period, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return Period{}, fmt.Errorf("period end %s precedes start %s: %w",
			to.Format(DateFormat), from.Format(DateFormat), apperrors.ErrValidation)
	}
	return Period{From: from, To: to}, nil
}

// ParsePeriod builds a Period from optional "2006-01-02" strings, applying
// the default window (ending at now) for absent bounds.
func ParsePeriod(fromStr, toStr string, now time.Time) (Period, error) {
	to := truncateToDay(now)
	from := to.AddDate(0, 0, -DefaultPeriodDays)

	if toStr != "" {
		parsed, err := time.Parse(DateFormat, toStr)
		if err != nil {
			return Period{}, fmt.Errorf("invalid 'to' date %q: %w", toStr, apperrors.ErrValidation)
		}
		to = parsed
	}
	if fromStr != "" {
		parsed, err := time.Parse(DateFormat, fromStr)
		if err != nil {
			return Period{}, fmt.Errorf("invalid 'from' date %q: %w", fromStr, apperrors.ErrValidation)
		}
		from = parsed
	}
	return NewPeriod(from, to)
}

// Days returns the number of calendar days in the period, inclusive.
func (p Period) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// Prior returns the period of identical length immediately preceding this
// one, ending the day before From.
func (p Period) Prior() Period {
	length := p.Days()
	return Period{
		From: p.From.AddDate(0, 0, -length),
		To:   p.To.AddDate(0, 0, -length),
	}
}

// Contains reports whether the given date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(p.From) && !d.After(p.To)
}
