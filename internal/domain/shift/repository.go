package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	// GetByIDs skips ids that no longer exist.
	GetByIDs(ctx context.Context, ids []string) ([]Shift, error)
	GetByStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]Shift, error)
}

type CoverRequestRepository interface {
	// GetInvolvingStaffInRange returns cover requests where staffID is either
	// the covering staff or the assignee of the referenced shift, and the
	// referenced shift's date is within [from, to]. Requests whose shift no
	// longer exists are returned when staffID is the covering staff.
	GetInvolvingStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]CoverRequest, error)
}
