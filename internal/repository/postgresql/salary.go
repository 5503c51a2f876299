package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `id, staff_id, hourly_wage::text, effective_date, termination_date, created_at, updated_at`

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE id = $1`

	s, err := scanSalary(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to get salary by id %s: %w", id, err)
	}
	return s, nil
}

// GetOpenByStaff implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetOpenByStaff(ctx context.Context, staffID string) ([]salary.Salary, error) {
	query := `
		SELECT ` + salaryColumns + `
		FROM salaries
		WHERE staff_id = $1 AND termination_date IS NULL
		ORDER BY effective_date, id
	`
	return r.list(ctx, query, staffID)
}

// GetHistoryByStaff implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetHistoryByStaff(ctx context.Context, staffID string) ([]salary.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE staff_id = $1 ORDER BY effective_date, id`
	return r.list(ctx, query, staffID)
}

// ReplaceCurrent implements salary.SalaryRepository. The previous row is
// terminated only if it is still open, so a concurrent change aborts the
// transaction instead of producing two open rows.
func (r *salaryRepositoryImpl) ReplaceCurrent(ctx context.Context, previousID *string, next salary.Salary) (salary.Salary, error) {
	var created salary.Salary
	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if previousID != nil {
			tag, err := tx.Exec(ctx, `
				UPDATE salaries
				SET termination_date = $1, updated_at = $2
				WHERE id = $3 AND termination_date IS NULL
			`, next.EffectiveDate, next.CreatedAt, *previousID)
			if err != nil {
				return fmt.Errorf("failed to terminate salary %s: %w", *previousID, err)
			}
			if tag.RowsAffected() == 0 {
				return salary.ErrCurrentSalaryChanged
			}
		}

		query := `
			INSERT INTO salaries (id, staff_id, hourly_wage, effective_date, termination_date, created_at, updated_at)
			VALUES ($1, $2, $3::numeric, $4, NULL, $5, $6)
			RETURNING ` + salaryColumns
		s, err := scanSalary(tx.QueryRow(ctx, query,
			next.ID, next.StaffID, next.HourlyWage, next.EffectiveDate, next.CreatedAt, next.UpdatedAt,
		))
		if err != nil {
			return fmt.Errorf("failed to insert salary: %w", err)
		}
		created = s
		return nil
	})
	if err != nil {
		return salary.Salary{}, err
	}
	return created, nil
}

func (r *salaryRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var result []salary.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(&s.ID, &s.StaffID, &s.HourlyWage, &s.EffectiveDate, &s.TerminationDate, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
