package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrTimesheetExists   = errors.New("shift already has a timesheet")
)
