package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// Hours converts a worked duration to decimal hours, unrounded.
func Hours(worked time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(worked / time.Second)).Div(secondsPerHour)
}

// Amount is hours × hourly wage × coefficient, rounded to cents. A
// coefficient that is zero or negative counts as 1.
func Amount(worked time.Duration, hourlyWage decimal.Decimal, coefficient float64) decimal.Decimal {
	coeff := decimal.NewFromFloat(coefficient)
	if !coeff.IsPositive() {
		coeff = decimal.NewFromInt(1)
	}
	return Hours(worked).Mul(hourlyWage).Mul(coeff).Round(2)
}
