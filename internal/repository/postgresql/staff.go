package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, name, username, email, phone_number, role, status, work_days, created_at, updated_at`

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	st, err := scanStaff(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to get staff by id %s: %w", id, err)
	}
	return st, nil
}

// GetActive implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetActive(ctx context.Context) ([]staff.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE status = $1 ORDER BY name, id`
	return r.list(ctx, query, staff.StatusActive)
}

// SearchActive implements staff.StaffRepository.
func (r *staffRepositoryImpl) SearchActive(ctx context.Context, term string) ([]staff.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff
		WHERE status = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name, id
	`
	return r.list(ctx, query, staff.StatusActive, escapeLike(term))
}

func (r *staffRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		st, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var st staff.Staff
	err := row.Scan(
		&st.ID, &st.Name, &st.Username, &st.Email, &st.PhoneNumber,
		&st.Role, &st.Status, &st.WorkDays, &st.CreatedAt, &st.UpdatedAt,
	)
	return st, err
}
