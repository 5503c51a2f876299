// Package daterange holds the calendar-date interval helpers shared by the
// planning and payroll services. All bounds are inclusive and compared as
// calendar dates in UTC; the time-of-day component is ignored.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ErrInvalidRange is returned when a range starts after it ends or when a
// date cannot be parsed.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive [From, To] window of calendar dates.
type Range struct {
	From time.Time
	To   time.Time
}

// New builds a Range, rejecting from > to. Ranges are never swapped.
func New(from, to time.Time) (Range, error) {
	from, to = DateOnly(from), DateOnly(to)
	if from.After(to) {
		return Range{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, from.Format(DateLayout), to.Format(DateLayout))
	}
	return Range{From: from, To: to}, nil
}

// Parse builds a Range from two YYYY-MM-DD strings.
func Parse(from, to string) (Range, error) {
	fromDate, err := ParseDate(from)
	if err != nil {
		return Range{}, err
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return Range{}, err
	}
	return New(fromDate, toDate)
}

// ParseDate parses a YYYY-MM-DD string. Malformed input is an invalid range.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q", ErrInvalidRange, s)
	}
	return t, nil
}

// Contains reports whether t falls inside the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(r.From) && !d.After(r.To)
}

// Days returns every date in the range in ascending order.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) String() string {
	return "[" + r.From.Format(DateLayout) + ", " + r.To.Format(DateLayout) + "]"
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at least
// one date. Either range being reversed is a caller error.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) (bool, error) {
	a, err := New(aStart, aEnd)
	if err != nil {
		return false, err
	}
	b, err := New(bStart, bEnd)
	if err != nil {
		return false, err
	}
	return !a.From.After(b.To) && !b.From.After(a.To), nil
}

// PointBlocked reports point >= rangeStart && point <= rangeEnd.
func PointBlocked(point, rangeStart, rangeEnd time.Time) (bool, error) {
	r, err := New(rangeStart, rangeEnd)
	if err != nil {
		return false, err
	}
	return r.Contains(point), nil
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is a shorthand for a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
