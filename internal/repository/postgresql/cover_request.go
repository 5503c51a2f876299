package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
)

type coverRequestRepositoryImpl struct {
	db *database.DB
}

func NewCoverRequestRepository(db *database.DB) shift.CoverRequestRepository {
	return &coverRequestRepositoryImpl{db: db}
}

// GetInvolvingStaffInRange implements shift.CoverRequestRepository. The left
// join keeps requests whose shift was deleted, for the covering staff only,
// scoped to the window by the date the request was created.
func (r *coverRequestRepositoryImpl) GetInvolvingStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]shift.CoverRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.shift_id, c.covering_staff_id, c.note, c.status, c.created_at, c.updated_at
		FROM shift_cover_requests c
		LEFT JOIN shifts s ON s.id = c.shift_id
		WHERE (s.id IS NULL AND c.covering_staff_id = $1 AND c.created_at::date BETWEEN $2 AND $3)
		   OR ((s.staff_id = $1 OR c.covering_staff_id = $1) AND s.date BETWEEN $2 AND $3)
		ORDER BY c.id
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cover requests: %w", err)
	}
	defer rows.Close()

	var result []shift.CoverRequest
	for rows.Next() {
		var c shift.CoverRequest
		if err := rows.Scan(&c.ID, &c.ShiftID, &c.CoveringStaffID, &c.Note, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cover request: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
