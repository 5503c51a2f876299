package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
	salaryservice "github.com/cmlabs-hris/shift-payroll/internal/service/salary"
	"github.com/google/uuid"
)

type timesheetServiceImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	shiftRepo     shift.ShiftRepository
	staffRepo     staff.StaffRepository
	salaryRepo    salary.SalaryRepository
	now           func() time.Time
}

func NewTimesheetService(
	timesheetRepo timesheet.TimesheetRepository,
	shiftRepo shift.ShiftRepository,
	staffRepo staff.StaffRepository,
	salaryRepo salary.SalaryRepository,
) timesheet.Service {
	return &timesheetServiceImpl{
		timesheetRepo: timesheetRepo,
		shiftRepo:     shiftRepo,
		staffRepo:     staffRepo,
		salaryRepo:    salaryRepo,
		now:           time.Now,
	}
}

// Record creates the attendance record of a shift and pins the wage that is
// current right now. The pin is never changed afterwards.
func (s *timesheetServiceImpl) Record(ctx context.Context, req timesheet.RecordTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return timesheet.TimesheetResponse{}, shift.ErrShiftNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	st, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return timesheet.TimesheetResponse{}, staff.ErrStaffNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get staff: %w", err)
	}
	if !st.IsActive() {
		return timesheet.TimesheetResponse{}, staff.ErrStaffNotFound
	}

	if _, err := s.timesheetRepo.GetByShiftID(ctx, req.ShiftID); err == nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetExists
	} else if !errors.Is(err, timesheet.ErrTimesheetNotFound) {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to check existing timesheet: %w", err)
	}

	now := s.now()
	open, err := s.salaryRepo.GetOpenByStaff(ctx, st.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get current salary: %w", err)
	}
	var salaryID *string
	if current, _ := salaryservice.CurrentWage(ctx, st.ID, open, now); current != nil {
		salaryID = &current.ID
	} else {
		slog.Warn("Recording timesheet without a current salary", "staff_id", st.ID, "shift_id", req.ShiftID)
	}

	checkIn, _ := validator.IsValidClock(req.CheckInTime)
	checkOut, _ := validator.IsValidClock(req.CheckOutTime)
	status := timesheet.StatusPending
	if req.Status != nil {
		status = timesheet.Status(*req.Status)
	}

	created, err := s.timesheetRepo.Create(ctx, timesheet.Timesheet{
		ID:           uuid.New().String(),
		ShiftID:      req.ShiftID,
		StaffID:      st.ID,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Status:       status,
		NoteTitle:    req.NoteTitle,
		NoteContent:  req.NoteContent,
		SalaryID:     salaryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, timesheet.ErrTimesheetExists) {
			return timesheet.TimesheetResponse{}, err
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return timesheet.NewTimesheetResponse(created), nil
}

// Update replaces the attendance fields of an existing timesheet.
func (s *timesheetServiceImpl) Update(ctx context.Context, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	existing, err := s.timesheetRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	existing.CheckInTime, _ = validator.IsValidClock(req.CheckInTime)
	existing.CheckOutTime, _ = validator.IsValidClock(req.CheckOutTime)
	if req.Status != nil {
		existing.Status = timesheet.Status(*req.Status)
	}
	existing.NoteTitle = req.NoteTitle
	existing.NoteContent = req.NoteContent
	existing.UpdatedAt = s.now()

	updated, err := s.timesheetRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return timesheet.TimesheetResponse{}, err
		}
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to update timesheet: %w", err)
	}
	return timesheet.NewTimesheetResponse(updated), nil
}
