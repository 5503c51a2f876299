package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// GetApprovedByStaffInRange returns approved leave whose range overlaps [from, to].
	GetApprovedByStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]LeaveRequest, error)
}
