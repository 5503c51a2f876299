package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `id, shift_id, staff_id, check_in_time, check_out_time, status, note_title, note_content, salary_id, created_at, updated_at`

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return r.getOne(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE id = $1`, id)
}

// GetByShiftID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByShiftID(ctx context.Context, shiftID string) (timesheet.Timesheet, error) {
	return r.getOne(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE shift_id = $1`, shiftID)
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (` + timesheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + timesheetColumns

	created, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.ID, ts.ShiftID, ts.StaffID, toPgTime(ts.CheckInTime), toPgTime(ts.CheckOutTime),
		ts.Status, ts.NoteTitle, ts.NoteContent, ts.SalaryID, ts.CreatedAt, ts.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return created, nil
}

// Update implements timesheet.TimesheetRepository. salary_id is not in the
// SET list.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET check_in_time = $1, check_out_time = $2, status = $3,
		    note_title = $4, note_content = $5, updated_at = $6
		WHERE id = $7
		RETURNING ` + timesheetColumns

	updated, err := scanTimesheet(q.QueryRow(ctx, query,
		toPgTime(ts.CheckInTime), toPgTime(ts.CheckOutTime), ts.Status,
		ts.NoteTitle, ts.NoteContent, ts.UpdatedAt, ts.ID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to update timesheet: %w", err)
	}
	return updated, nil
}

func (r *timesheetRepositoryImpl) getOne(ctx context.Context, query string, arg string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	ts, err := scanTimesheet(q.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}
	return ts, nil
}

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var (
		ts                timesheet.Timesheet
		checkIn, checkOut pgtype.Time
	)
	err := row.Scan(
		&ts.ID, &ts.ShiftID, &ts.StaffID, &checkIn, &checkOut, &ts.Status,
		&ts.NoteTitle, &ts.NoteContent, &ts.SalaryID, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	ts.CheckInTime = fromPgTime(checkIn)
	ts.CheckOutTime = fromPgTime(checkOut)
	return ts, nil
}
