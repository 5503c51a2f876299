package salary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Salary is one version of a staff member's hourly wage. It applies on
// [EffectiveDate, TerminationDate); a nil TerminationDate is open-ended and
// marks the current wage.
type Salary struct {
	ID              string
	StaffID         string
	HourlyWage      string // decimal encoded as text
	EffectiveDate   time.Time
	TerminationDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s Salary) IsCurrent() bool {
	return s.TerminationDate == nil
}

// Covers reports whether instant falls on [EffectiveDate, TerminationDate).
func (s Salary) Covers(instant time.Time) bool {
	if instant.Before(s.EffectiveDate) {
		return false
	}
	return s.TerminationDate == nil || instant.Before(*s.TerminationDate)
}

// Wage parses HourlyWage.
func (s Salary) Wage() (decimal.Decimal, error) {
	w, err := decimal.NewFromString(s.HourlyWage)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: salary %s has hourly wage %q", ErrInvalidWage, s.ID, s.HourlyWage)
	}
	return w, nil
}
