package timesheet

import "context"

type TimesheetRepository interface {
	GetByID(ctx context.Context, id string) (Timesheet, error)
	// GetByShiftID returns ErrTimesheetNotFound when the shift has no timesheet.
	GetByShiftID(ctx context.Context, shiftID string) (Timesheet, error)
	// Create returns ErrTimesheetExists when the shift already has one.
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	// Update replaces the attendance fields. SalaryID is left untouched.
	Update(ctx context.Context, ts Timesheet) (Timesheet, error)
}
