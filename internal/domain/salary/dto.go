package salary

import (
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ChangeWageRequest struct {
	StaffID       string `json:"-"`
	HourlyWage    string `json:"hourly_wage"`
	EffectiveDate string `json:"effective_date"`
}

func (r *ChangeWageRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("staff_id", r.StaffID)
	if errs.Required("hourly_wage", r.HourlyWage) {
		if w, err := decimal.NewFromString(r.HourlyWage); err != nil {
			errs.Add("hourly_wage", "must be a decimal number")
		} else if w.IsNegative() {
			errs.Add("hourly_wage", "must be non-negative")
		} else if !w.Equal(w.Round(2)) {
			errs.Add("hourly_wage", "must have at most 2 decimal places")
		}
	}
	if errs.Required("effective_date", r.EffectiveDate) {
		if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
			errs.Add("effective_date", "must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type SalaryResponse struct {
	ID              string  `json:"id"`
	StaffID         string  `json:"staff_id"`
	HourlyWage      string  `json:"hourly_wage"`
	EffectiveDate   string  `json:"effective_date"`
	TerminationDate *string `json:"termination_date,omitempty"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:            s.ID,
		StaffID:       s.StaffID,
		HourlyWage:    s.HourlyWage,
		EffectiveDate: s.EffectiveDate.Format(daterange.DateLayout),
	}
	if s.TerminationDate != nil {
		t := s.TerminationDate.Format(daterange.DateLayout)
		resp.TerminationDate = &t
	}
	return resp
}
