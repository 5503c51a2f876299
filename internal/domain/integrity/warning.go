// Package integrity describes non-fatal data anomalies found while building
// planning and payroll views. A Warning never aborts a computation.
package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrDataIntegrity = errors.New("data integrity warning")

type Code string

const (
	CodeMultipleCurrentSalaries Code = "multiple_current_salaries"
	CodeOverlappingSalaries     Code = "overlapping_salaries"
	CodeDanglingCoverRequest    Code = "dangling_cover_request"
	CodeDuplicateCoverRequest   Code = "duplicate_cover_request"
	CodeInvalidLeaveRange       Code = "invalid_leave_range"
	CodePinnedSalaryMissing     Code = "pinned_salary_missing"
	CodeNoPinnedSalary          Code = "no_pinned_salary"
	CodeInvalidWage             Code = "invalid_wage"
	CodeStaffResolutionFailed   Code = "staff_resolution_failed"
)

type Warning struct {
	Code     Code   `json:"code"`
	StaffID  string `json:"staff_id,omitempty"`
	RecordID string `json:"record_id,omitempty"`
	Message  string `json:"message"`
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

func (w Warning) Unwrap() error {
	return ErrDataIntegrity
}

// Report logs w at WARN level and returns it, so callers can append in one step.
func Report(ctx context.Context, w Warning) Warning {
	slog.WarnContext(ctx, "Data integrity warning",
		"code", string(w.Code),
		"staff_id", w.StaffID,
		"record_id", w.RecordID,
		"message", w.Message,
	)
	return w
}
