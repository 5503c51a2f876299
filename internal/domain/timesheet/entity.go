package timesheet

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Timesheet is the attendance record of one shift. SalaryID pins the wage
// version that was current when the record was created and is never
// recomputed afterwards.
type Timesheet struct {
	ID           string
	ShiftID      string
	StaffID      string
	CheckInTime  time.Time // clock part only
	CheckOutTime time.Time // clock part only
	Status       Status
	NoteTitle    string
	NoteContent  string
	SalaryID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WorkedDuration is the time between check-in and check-out. A check-out
// earlier than the check-in is taken to be on the next day.
func (t Timesheet) WorkedDuration() time.Duration {
	in := clockOffset(t.CheckInTime)
	out := clockOffset(t.CheckOutTime)
	if out < in {
		out += 24 * time.Hour
	}
	return out - in
}

func clockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
