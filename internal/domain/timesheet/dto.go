package timesheet

import (
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
)

type RecordTimesheetRequest struct {
	ShiftID      string  `json:"shift_id"`
	StaffID      string  `json:"staff_id"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Status       *string `json:"status,omitempty"`
	NoteTitle    string  `json:"note_title"`
	NoteContent  string  `json:"note_content"`
}

func (r *RecordTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("shift_id", r.ShiftID)
	errs.Required("staff_id", r.StaffID)
	validateAttendance(&errs, r.CheckInTime, r.CheckOutTime, r.Status, r.NoteTitle, r.NoteContent)

	return errs.Err()
}

type UpdateTimesheetRequest struct {
	ID           string  `json:"-"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Status       *string `json:"status,omitempty"`
	NoteTitle    string  `json:"note_title"`
	NoteContent  string  `json:"note_content"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("id", r.ID)
	validateAttendance(&errs, r.CheckInTime, r.CheckOutTime, r.Status, r.NoteTitle, r.NoteContent)

	return errs.Err()
}

func validateAttendance(errs *validator.ValidationErrors, checkIn, checkOut string, status *string, noteTitle, noteContent string) {
	if _, ok := validator.IsValidClock(checkIn); !ok {
		errs.Add("check_in_time", "must be in HH:MM or HH:MM:SS format")
	}
	if _, ok := validator.IsValidClock(checkOut); !ok {
		errs.Add("check_out_time", "must be in HH:MM or HH:MM:SS format")
	}
	if status != nil && !validator.IsInSlice(*status, StatusValues) {
		errs.Add("status", "must be one of PENDING, APPROVED, REJECTED")
	}
	errs.MaxLength("note_title", noteTitle, 100)
	errs.MaxLength("note_content", noteContent, 100)
}

type TimesheetResponse struct {
	ID           string  `json:"id"`
	ShiftID      string  `json:"shift_id"`
	StaffID      string  `json:"staff_id"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Status       string  `json:"status"`
	NoteTitle    string  `json:"note_title"`
	NoteContent  string  `json:"note_content"`
	SalaryID     *string `json:"salary_id,omitempty"`
}

func NewTimesheetResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:           t.ID,
		ShiftID:      t.ShiftID,
		StaffID:      t.StaffID,
		CheckInTime:  t.CheckInTime.Format(validator.ClockLayout),
		CheckOutTime: t.CheckOutTime.Format(validator.ClockLayout),
		Status:       string(t.Status),
		NoteTitle:    t.NoteTitle,
		NoteContent:  t.NoteContent,
		SalaryID:     t.SalaryID,
	}
}
