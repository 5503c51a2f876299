package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// GetApprovedByStaffInRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetApprovedByStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, leave_type, start_date, end_date, status, reason, admin_reply, created_at, updated_at
		FROM leave_requests
		WHERE staff_id = $1 AND status = $2 AND start_date <= $4 AND end_date >= $3
		ORDER BY start_date, id
	`

	rows, err := q.Query(ctx, query, staffID, leave.LeaveRequestStatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.StaffID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.Status, &lr.Reason, &lr.AdminReply, &lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
