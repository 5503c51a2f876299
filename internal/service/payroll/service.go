package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/fanout"
	planningservice "github.com/cmlabs-hris/shift-payroll/internal/service/planning"
	"github.com/shopspring/decimal"
)

type payrollServiceImpl struct {
	planner       *planningservice.Planner
	staffRepo     staff.StaffRepository
	timesheetRepo timesheet.TimesheetRepository
	salaryRepo    salary.SalaryRepository
	workerLimit   int
}

func NewPayrollService(
	planner *planningservice.Planner,
	staffRepo staff.StaffRepository,
	timesheetRepo timesheet.TimesheetRepository,
	salaryRepo salary.SalaryRepository,
	workerLimit int,
) payroll.Service {
	return &payrollServiceImpl{
		planner:       planner,
		staffRepo:     staffRepo,
		timesheetRepo: timesheetRepo,
		salaryRepo:    salaryRepo,
		workerLimit:   workerLimit,
	}
}

// GetPayroll implements payroll.Service.
func (s *payrollServiceImpl) GetPayroll(ctx context.Context, req payroll.GetPayrollRequest) ([]payroll.StaffPayrollView, error) {
	window, err := planning.ParseWindow(req.From, req.To)
	if err != nil {
		return nil, err
	}

	var members []staff.Staff
	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		members, err = s.staffRepo.SearchActive(ctx, strings.TrimSpace(*req.Search))
	} else {
		members, err = s.staffRepo.GetActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	results, err := fanout.Map(ctx, s.workerLimit, members, func(ctx context.Context, st staff.Staff) (payroll.StaffPayrollView, error) {
		plan, err := s.planner.PlanStaff(ctx, st, window, planningservice.PlanOptions{})
		if err != nil {
			return payroll.StaffPayrollView{}, err
		}
		return s.buildView(ctx, plan)
	})
	if err != nil {
		return nil, err
	}

	views := make([]payroll.StaffPayrollView, 0, len(results))
	for i, r := range results {
		if r.Err != nil {
			failed := planningservice.FailedStaffPlanningView(ctx, members[i], r.Err)
			views = append(views, payroll.StaffPayrollView{
				Staff:         failed.Staff,
				Shifts:        []payroll.PayrollShiftResponse{},
				LeaveRequests: failed.LeaveRequests,
				TotalHours:    decimal.Zero,
				TotalAmount:   decimal.Zero,
				Warnings:      failed.Warnings,
				Error:         failed.Error,
			})
			continue
		}
		views = append(views, r.Value)
	}
	return views, nil
}

func (s *payrollServiceImpl) buildView(ctx context.Context, plan planningservice.StaffPlan) (payroll.StaffPayrollView, error) {
	base := planningservice.NewStaffPlanningView(plan)
	view := payroll.StaffPayrollView{
		Staff:         base.Staff,
		Shifts:        make([]payroll.PayrollShiftResponse, 0, len(plan.Shifts)),
		LeaveRequests: base.LeaveRequests,
		TotalHours:    decimal.Zero,
		TotalAmount:   decimal.Zero,
		Warnings:      plan.Warnings,
	}

	for i, es := range plan.Shifts {
		row := payroll.PayrollShiftResponse{ShiftResponse: base.Shifts[i]}

		ts, err := s.timesheetRepo.GetByShiftID(ctx, es.Shift.ID)
		if err != nil && !errors.Is(err, timesheet.ErrTimesheetNotFound) {
			return payroll.StaffPayrollView{}, fmt.Errorf("failed to get timesheet for shift %s: %w", es.Shift.ID, err)
		}
		if err == nil {
			annotated, warnings, err := s.annotateTimesheet(ctx, plan.Staff.ID, es.Shift, ts)
			if err != nil {
				return payroll.StaffPayrollView{}, err
			}
			row.Timesheet = &annotated
			view.Warnings = append(view.Warnings, warnings...)
			view.WorkedShifts++
			view.TotalHours = view.TotalHours.Add(annotated.WorkedHours)
			if annotated.Amount != nil {
				view.TotalAmount = view.TotalAmount.Add(*annotated.Amount)
			}
		}
		view.Shifts = append(view.Shifts, row)
	}
	return view, nil
}

// annotateTimesheet attaches the salary pinned on the timesheet. The pin is
// looked up by id only; a missing pin is reported, never replaced.
func (s *payrollServiceImpl) annotateTimesheet(ctx context.Context, staffID string, sh shift.Shift, ts timesheet.Timesheet) (payroll.PayrollTimesheetResponse, []integrity.Warning, error) {
	worked := ts.WorkedDuration()
	resp := payroll.PayrollTimesheetResponse{
		TimesheetResponse: timesheet.NewTimesheetResponse(ts),
		WorkedHours:       Hours(worked).Round(2),
	}

	if ts.SalaryID == nil {
		return resp, []integrity.Warning{integrity.Report(ctx, integrity.Warning{
			Code:     integrity.CodeNoPinnedSalary,
			StaffID:  staffID,
			RecordID: ts.ID,
			Message:  "timesheet has no pinned salary",
		})}, nil
	}

	pinned, err := s.salaryRepo.GetByID(ctx, *ts.SalaryID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			return resp, []integrity.Warning{integrity.Report(ctx, integrity.Warning{
				Code:     integrity.CodePinnedSalaryMissing,
				StaffID:  staffID,
				RecordID: ts.ID,
				Message:  fmt.Sprintf("pinned salary %s no longer exists", *ts.SalaryID),
			})}, nil
		}
		return payroll.PayrollTimesheetResponse{}, nil, fmt.Errorf("failed to get pinned salary: %w", err)
	}
	salaryResp := salary.NewSalaryResponse(pinned)
	resp.Salary = &salaryResp

	wage, err := pinned.Wage()
	if err != nil {
		return resp, []integrity.Warning{integrity.Report(ctx, integrity.Warning{
			Code:     integrity.CodeInvalidWage,
			StaffID:  staffID,
			RecordID: pinned.ID,
			Message:  err.Error(),
		})}, nil
	}
	amount := Amount(worked, wage, sh.SalaryCoefficient)
	resp.Amount = &amount
	return resp, nil, nil
}
