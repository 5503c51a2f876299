package shift

import "time"

// Shift is a scheduled work interval. Optional associations (cover request,
// timesheet) are looked up by shift ID, never embedded.
type Shift struct {
	ID                string
	StaffID           string
	Date              time.Time
	StartTime         time.Time // clock part only
	EndTime           time.Time // clock part only
	Name              string
	Role              string
	Published         bool
	SalaryCoefficient float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CoverStatus string

const (
	CoverStatusPending  CoverStatus = "PENDING"
	CoverStatusApproved CoverStatus = "APPROVED"
	CoverStatusRejected CoverStatus = "REJECTED"
)

// CoverRequest asks for ShiftID to be handed over to CoveringStaffID.
// A shift has at most one cover request.
type CoverRequest struct {
	ID              string
	ShiftID         string
	CoveringStaffID string
	Note            string
	Status          CoverStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (c CoverRequest) IsApproved() bool {
	return c.Status == CoverStatusApproved
}
