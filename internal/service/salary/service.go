package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type salaryServiceImpl struct {
	salaryRepo salary.SalaryRepository
	staffRepo  staff.StaffRepository
	now        func() time.Time
}

func NewSalaryService(salaryRepo salary.SalaryRepository, staffRepo staff.StaffRepository) salary.Service {
	return &salaryServiceImpl{
		salaryRepo: salaryRepo,
		staffRepo:  staffRepo,
		now:        time.Now,
	}
}

// GetCurrent implements salary.Service.
func (s *salaryServiceImpl) GetCurrent(ctx context.Context, staffID string) (salary.SalaryResponse, error) {
	if _, err := s.activeStaff(ctx, staffID); err != nil {
		return salary.SalaryResponse{}, err
	}

	open, err := s.salaryRepo.GetOpenByStaff(ctx, staffID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get open salaries: %w", err)
	}
	current, _ := CurrentWage(ctx, staffID, open, s.now())
	if current == nil {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	return salary.NewSalaryResponse(*current), nil
}

// GetAt implements salary.Service.
func (s *salaryServiceImpl) GetAt(ctx context.Context, staffID string, date string) (salary.SalaryResponse, error) {
	instant, err := daterange.ParseDate(date)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	if _, err := s.activeStaff(ctx, staffID); err != nil {
		return salary.SalaryResponse{}, err
	}

	history, err := s.salaryRepo.GetHistoryByStaff(ctx, staffID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get salary history: %w", err)
	}
	at, _ := WageAt(ctx, staffID, history, instant)
	if at == nil {
		return salary.SalaryResponse{}, salary.ErrSalaryNotFound
	}
	return salary.NewSalaryResponse(*at), nil
}

// GetHistory implements salary.Service.
func (s *salaryServiceImpl) GetHistory(ctx context.Context, staffID string) ([]salary.SalaryResponse, error) {
	if _, err := s.activeStaff(ctx, staffID); err != nil {
		return nil, err
	}

	history, err := s.salaryRepo.GetHistoryByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary history: %w", err)
	}
	resp := make([]salary.SalaryResponse, 0, len(history))
	for _, h := range history {
		resp = append(resp, salary.NewSalaryResponse(h))
	}
	return resp, nil
}

// ChangeWage terminates the current salary at the new effective date and
// opens a new one, in a single repository call.
func (s *salaryServiceImpl) ChangeWage(ctx context.Context, req salary.ChangeWageRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}
	if _, err := s.activeStaff(ctx, req.StaffID); err != nil {
		return salary.SalaryResponse{}, err
	}

	wage, _ := decimal.NewFromString(req.HourlyWage)
	effective, _ := daterange.ParseDate(req.EffectiveDate)

	open, err := s.salaryRepo.GetOpenByStaff(ctx, req.StaffID)
	if err != nil {
		return salary.SalaryResponse{}, fmt.Errorf("failed to get open salaries: %w", err)
	}

	var previousID *string
	if len(open) > 0 {
		// Future-dated open records count too, so no instant is used here.
		previous := pickLatest(open)
		if effective.Before(previous.EffectiveDate) {
			return salary.SalaryResponse{}, salary.ErrEffectiveDateBeforeCurrent
		}
		if previousWage, err := previous.Wage(); err == nil && previousWage.Equal(wage) {
			return salary.SalaryResponse{}, salary.ErrWageUnchanged
		}
		previousID = &previous.ID
	}

	now := s.now()
	created, err := s.salaryRepo.ReplaceCurrent(ctx, previousID, salary.Salary{
		ID:            uuid.New().String(),
		StaffID:       req.StaffID,
		HourlyWage:    wage.String(),
		EffectiveDate: effective,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		if errors.Is(err, salary.ErrCurrentSalaryChanged) {
			return salary.SalaryResponse{}, err
		}
		return salary.SalaryResponse{}, fmt.Errorf("failed to replace current salary: %w", err)
	}

	slog.Info("Hourly wage changed", "staff_id", req.StaffID, "salary_id", created.ID, "effective_date", req.EffectiveDate)
	return salary.NewSalaryResponse(created), nil
}

func (s *salaryServiceImpl) activeStaff(ctx context.Context, staffID string) (staff.Staff, error) {
	if staffID == "" {
		return staff.Staff{}, staff.ErrStaffIDRequired
	}
	st, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	if !st.IsActive() {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}
