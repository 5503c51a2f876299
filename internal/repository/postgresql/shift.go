package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, staff_id, date, start_time, end_time, name, role, published, salary_coefficient, created_at, updated_at`

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to get shift by id %s: %w", id, err)
	}
	return s, nil
}

// GetByIDs implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]shift.Shift, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ANY($1) ORDER BY date, id`
	return r.list(ctx, query, ids)
}

// GetByStaffInRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByStaffInRange(ctx context.Context, staffID string, from, to time.Time) ([]shift.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time, id
	`
	return r.list(ctx, query, staffID, from, to)
}

func (r *shiftRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var result []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var (
		s          shift.Shift
		start, end pgtype.Time
	)
	err := row.Scan(
		&s.ID, &s.StaffID, &s.Date, &start, &end, &s.Name, &s.Role,
		&s.Published, &s.SalaryCoefficient, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	s.StartTime = fromPgTime(start)
	s.EndTime = fromPgTime(end)
	return s, nil
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
