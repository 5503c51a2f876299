package planning

import (
	"fmt"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
)

type GetPlanningRequest struct {
	From    string
	To      string
	StaffID *string // nil = all active staff
}

// Range validates From/To and returns the query window.
func (r GetPlanningRequest) Range() (daterange.Range, error) {
	return ParseWindow(r.From, r.To)
}

// ParseWindow is shared by planning and payroll queries.
func ParseWindow(from, to string) (daterange.Range, error) {
	if validator.IsEmpty(from) || validator.IsEmpty(to) {
		return daterange.Range{}, fmt.Errorf("%w: from and to are required", ErrMissingParameter)
	}
	return daterange.Parse(from, to)
}

type StaffResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	WorkDays    string `json:"work_days"`
}

func NewStaffResponse(s staff.Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Name:        s.Name,
		Username:    s.Username,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Role:        string(s.Role),
		Status:      string(s.Status),
		WorkDays:    s.WorkDays,
	}
}

type ShiftResponse struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Published         bool    `json:"published"`
	SalaryCoefficient float64 `json:"salary_coefficient"`
	// AssignedStaffID is the raw assignee; it differs from the view's staff
	// when the shift was taken over through an approved cover request.
	AssignedStaffID string `json:"assigned_staff_id"`
	CoveredIn       bool   `json:"covered_in"`
}

func NewShiftResponse(s shift.Shift, coveredIn bool) ShiftResponse {
	return ShiftResponse{
		ID:                s.ID,
		Date:              s.Date.Format(daterange.DateLayout),
		StartTime:         s.StartTime.Format(validator.ClockLayout),
		EndTime:           s.EndTime.Format(validator.ClockLayout),
		Name:              s.Name,
		Role:              s.Role,
		Published:         s.Published,
		SalaryCoefficient: s.SalaryCoefficient,
		AssignedStaffID:   s.StaffID,
		CoveredIn:         coveredIn,
	}
}

type LeaveResponse struct {
	ID         string `json:"id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
	AdminReply string `json:"admin_reply"`
}

func NewLeaveResponse(l leave.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(daterange.DateLayout),
		EndDate:    l.EndDate.Format(daterange.DateLayout),
		Status:     string(l.Status),
		Reason:     l.Reason,
		AdminReply: l.AdminReply,
	}
}

type StaffPlanningView struct {
	Staff         StaffResponse          `json:"staff"`
	Salary        *salary.SalaryResponse `json:"salary,omitempty"`
	Shifts        []ShiftResponse        `json:"shifts"`
	LeaveRequests []LeaveResponse        `json:"leave_requests"`
	BlockedDates  []string               `json:"blocked_dates"`
	Warnings      []integrity.Warning    `json:"warnings,omitempty"`
	// Error is set when this staff member could not be resolved; the rest of
	// an all-staff result is still returned.
	Error string `json:"error,omitempty"`
}
