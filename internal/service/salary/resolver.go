package salary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

// CurrentWage picks the open-ended record already in effect on the calendar
// date of now, read in now's own location. When several qualify, the latest
// effective date wins and a warning is returned.
func CurrentWage(ctx context.Context, staffID string, open []salary.Salary, now time.Time) (*salary.Salary, []integrity.Warning) {
	today := daterange.DateOnly(now)
	var candidates []salary.Salary
	for _, s := range open {
		if s.IsCurrent() && !s.EffectiveDate.After(today) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	latest := pickLatest(candidates)
	if len(candidates) == 1 {
		return &latest, nil
	}
	return &latest, []integrity.Warning{integrity.Report(ctx, integrity.Warning{
		Code:     integrity.CodeMultipleCurrentSalaries,
		StaffID:  staffID,
		RecordID: latest.ID,
		Message:  fmt.Sprintf("%d salaries without termination date, using the latest effective", len(candidates)),
	})}
}

// WageAt returns the record whose [effective, termination) interval contains
// instant, or nil. Overlapping records resolve to the latest effective date.
func WageAt(ctx context.Context, staffID string, history []salary.Salary, instant time.Time) (*salary.Salary, []integrity.Warning) {
	var matches []salary.Salary
	for _, s := range history {
		if s.Covers(instant) {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}

	latest := pickLatest(matches)
	if len(matches) == 1 {
		return &latest, nil
	}
	return &latest, []integrity.Warning{integrity.Report(ctx, integrity.Warning{
		Code:     integrity.CodeOverlappingSalaries,
		StaffID:  staffID,
		RecordID: latest.ID,
		Message:  fmt.Sprintf("%d salaries cover %s, using the latest effective", len(matches), instant.Format(time.DateOnly)),
	})}
}

// pickLatest orders by effective date, then creation time, then id, and
// returns the last. Input order never affects the choice.
func pickLatest(records []salary.Salary) salary.Salary {
	sorted := make([]salary.Salary, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.EffectiveDate.Equal(b.EffectiveDate) {
			return a.EffectiveDate.Before(b.EffectiveDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return sorted[len(sorted)-1]
}
