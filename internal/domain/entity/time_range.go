package entity

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a time range is constructed with
// from >= to. Ranges are half-open [from, to), so a zero-length range
// is invalid too.
var ErrInvalidRange = errors.New("invalid time range: start must be before end")

// TimeRange is a half-open interval [From, To) between two zone-aware
// instants. The zero value is not a valid range; build one through
// NewTimeRange.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func NewTimeRange(from, to time.Time) (TimeRange, error) {
	if !from.Before(to) {
		return TimeRange{}, ErrInvalidRange
	}

	return TimeRange{From: from, To: to}, nil
}

// Contains reports whether t falls inside the range: inclusive at the
// start, exclusive at the end.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Adjacent reports whether next starts exactly where r ends. Touching
// ranges do not overlap and can be merged into one.
func (r TimeRange) Adjacent(next TimeRange) bool {
	return r.To.Equal(next.From)
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.From.Equal(other.From) && r.To.Equal(other.To)
}

func (r TimeRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

func (r TimeRange) Duration() time.Duration {
	return r.To.Sub(r.From)
}
