package leave

import (
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

// ApprovedOnly keeps the leave requests that remove shifts from a plan.
func ApprovedOnly(requests []leave.LeaveRequest) []leave.LeaveRequest {
	approved := make([]leave.LeaveRequest, 0, len(requests))
	for _, lr := range requests {
		if lr.IsApproved() {
			approved = append(approved, lr)
		}
	}
	return approved
}

// IsDateBlocked reports whether date equals the start, equals the end, or lies
// strictly between the bounds of any supplied leave. Leave with a reversed
// range blocks nothing; see InvalidRanges.
func IsDateBlocked(date time.Time, leaves []leave.LeaveRequest) bool {
	for _, lr := range leaves {
		blocked, err := daterange.PointBlocked(date, lr.StartDate, lr.EndDate)
		if err == nil && blocked {
			return true
		}
	}
	return false
}

// BlockedDates lists the dates of window covered by leaves, ascending.
func BlockedDates(window daterange.Range, leaves []leave.LeaveRequest) []time.Time {
	var blocked []time.Time
	for _, day := range window.Days() {
		if IsDateBlocked(day, leaves) {
			blocked = append(blocked, day)
		}
	}
	return blocked
}

// InvalidRanges returns the leave requests whose start is after their end.
func InvalidRanges(leaves []leave.LeaveRequest) []leave.LeaveRequest {
	var invalid []leave.LeaveRequest
	for _, lr := range leaves {
		if _, err := daterange.New(lr.StartDate, lr.EndDate); err != nil {
			invalid = append(invalid, lr)
		}
	}
	return invalid
}
