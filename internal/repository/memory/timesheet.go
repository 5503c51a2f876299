package memory

import (
	"context"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
)

type timesheetRepositoryImpl struct {
	store *Store
}

func NewTimesheetRepository(store *Store) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{store: store}
}

func (r *timesheetRepositoryImpl) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ts, ok := r.store.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (r *timesheetRepositoryImpl) GetByShiftID(_ context.Context, shiftID string) (timesheet.Timesheet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, ts := range r.store.timesheets {
		if ts.ShiftID == shiftID {
			return ts, nil
		}
	}
	return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
}

func (r *timesheetRepositoryImpl) Create(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.timesheets {
		if existing.ShiftID == ts.ShiftID {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
	}
	r.store.timesheets[ts.ID] = ts
	return ts, nil
}

func (r *timesheetRepositoryImpl) Update(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.timesheets[ts.ID]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	existing.CheckInTime = ts.CheckInTime
	existing.CheckOutTime = ts.CheckOutTime
	existing.Status = ts.Status
	existing.NoteTitle = ts.NoteTitle
	existing.NoteContent = ts.NoteContent
	existing.UpdatedAt = ts.UpdatedAt
	r.store.timesheets[ts.ID] = existing
	return existing, nil
}
