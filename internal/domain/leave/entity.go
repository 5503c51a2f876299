package leave

import "time"

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "VACATION"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypeOther    LeaveType = "OTHER"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "PENDING"
	LeaveRequestStatusApproved LeaveRequestStatus = "APPROVED"
	LeaveRequestStatusRejected LeaveRequestStatus = "REJECTED"
)

// LeaveRequest covers the inclusive date range [StartDate, EndDate].
type LeaveRequest struct {
	ID         string
	StaffID    string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveRequestStatus
	Reason     string
	AdminReply string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l LeaveRequest) IsApproved() bool {
	return l.Status == LeaveRequestStatusApproved
}
