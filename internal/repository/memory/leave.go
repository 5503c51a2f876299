package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

type leaveRequestRepositoryImpl struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

// GetApprovedByStaffInRange uses the same predicate as the SQL store,
// start_date <= to AND end_date >= from, so reversed ranges may be returned.
func (r *leaveRequestRepositoryImpl) GetApprovedByStaffInRange(_ context.Context, staffID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	from, to = daterange.DateOnly(from), daterange.DateOnly(to)
	var result []leave.LeaveRequest
	for _, lr := range r.store.leaveRequests {
		if lr.StaffID != staffID || !lr.IsApproved() {
			continue
		}
		if lr.StartDate.After(to) || lr.EndDate.Before(from) {
			continue
		}
		result = append(result, lr)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
