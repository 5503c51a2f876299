package timesheet

import "context"

type Service interface {
	Record(ctx context.Context, req RecordTimesheetRequest) (TimesheetResponse, error)
	Update(ctx context.Context, req UpdateTimesheetRequest) (TimesheetResponse, error)
}
