package payroll

import (
	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

type GetPayrollRequest struct {
	From   string
	To     string
	Search *string // nil = all active staff
}

// PayrollTimesheetResponse is a timesheet annotated with the wage version it
// pinned at creation. Salary is nil when the pinned record is gone.
type PayrollTimesheetResponse struct {
	timesheet.TimesheetResponse
	Salary      *salary.SalaryResponse `json:"salary"`
	WorkedHours decimal.Decimal        `json:"worked_hours"`
	Amount      *decimal.Decimal       `json:"amount,omitempty"`
}

type PayrollShiftResponse struct {
	planning.ShiftResponse
	Timesheet *PayrollTimesheetResponse `json:"timesheet,omitempty"`
}

type StaffPayrollView struct {
	Staff         planning.StaffResponse   `json:"staff"`
	Shifts        []PayrollShiftResponse   `json:"shifts"`
	LeaveRequests []planning.LeaveResponse `json:"leave_requests"`
	WorkedShifts  int                      `json:"worked_shifts"`
	TotalHours    decimal.Decimal          `json:"total_hours"`
	TotalAmount   decimal.Decimal          `json:"total_amount"`
	Warnings      []integrity.Warning      `json:"warnings,omitempty"`
	Error         string                   `json:"error,omitempty"`
}
