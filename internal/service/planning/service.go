package planning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/fanout"
)

type planningServiceImpl struct {
	planner     *Planner
	staffRepo   staff.StaffRepository
	workerLimit int
}

func NewPlanningService(planner *Planner, staffRepo staff.StaffRepository, workerLimit int) planning.Service {
	return &planningServiceImpl{
		planner:     planner,
		staffRepo:   staffRepo,
		workerLimit: workerLimit,
	}
}

// GetPlanning implements planning.Service.
func (s *planningServiceImpl) GetPlanning(ctx context.Context, req planning.GetPlanningRequest) ([]planning.StaffPlanningView, error) {
	window, err := req.Range()
	if err != nil {
		return nil, err
	}

	if req.StaffID != nil {
		view, err := s.singleStaff(ctx, *req.StaffID, window)
		if err != nil {
			return nil, err
		}
		return []planning.StaffPlanningView{view}, nil
	}
	return s.allStaff(ctx, window)
}

func (s *planningServiceImpl) singleStaff(ctx context.Context, staffID string, window daterange.Range) (planning.StaffPlanningView, error) {
	st, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			return planning.StaffPlanningView{}, planning.ErrStaffNotFound
		}
		return planning.StaffPlanningView{}, fmt.Errorf("failed to get staff: %w", err)
	}
	if !st.IsActive() {
		return planning.StaffPlanningView{}, planning.ErrStaffNotFound
	}

	plan, err := s.planner.PlanStaff(ctx, st, window, PlanOptions{PublishedOnly: true, WithCurrentSalary: true})
	if err != nil {
		return planning.StaffPlanningView{}, err
	}
	return NewStaffPlanningView(plan), nil
}

func (s *planningServiceImpl) allStaff(ctx context.Context, window daterange.Range) ([]planning.StaffPlanningView, error) {
	active, err := s.staffRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active staff: %w", err)
	}

	results, err := fanout.Map(ctx, s.workerLimit, active, func(ctx context.Context, st staff.Staff) (StaffPlan, error) {
		return s.planner.PlanStaff(ctx, st, window, PlanOptions{WithCurrentSalary: true})
	})
	if err != nil {
		return nil, err
	}

	views := make([]planning.StaffPlanningView, 0, len(results))
	for i, r := range results {
		if r.Err != nil {
			views = append(views, FailedStaffPlanningView(ctx, active[i], r.Err))
			continue
		}
		views = append(views, NewStaffPlanningView(r.Value))
	}
	return views, nil
}

func NewStaffPlanningView(plan StaffPlan) planning.StaffPlanningView {
	view := planning.StaffPlanningView{
		Staff:         planning.NewStaffResponse(plan.Staff),
		Shifts:        make([]planning.ShiftResponse, 0, len(plan.Shifts)),
		LeaveRequests: make([]planning.LeaveResponse, 0, len(plan.LeaveRequests)),
		BlockedDates:  make([]string, 0, len(plan.BlockedDates)),
		Warnings:      plan.Warnings,
	}
	for _, day := range plan.BlockedDates {
		view.BlockedDates = append(view.BlockedDates, day.Format(daterange.DateLayout))
	}
	for _, es := range plan.Shifts {
		view.Shifts = append(view.Shifts, planning.NewShiftResponse(es.Shift, es.CoveredIn))
	}
	for _, lr := range plan.LeaveRequests {
		view.LeaveRequests = append(view.LeaveRequests, planning.NewLeaveResponse(lr))
	}
	if plan.Salary != nil {
		resp := salary.NewSalaryResponse(*plan.Salary)
		view.Salary = &resp
	}
	return view
}

// FailedStaffPlanningView stands in for a staff member whose plan could not
// be computed, so an all-staff result never silently drops anyone.
func FailedStaffPlanningView(ctx context.Context, st staff.Staff, err error) planning.StaffPlanningView {
	slog.ErrorContext(ctx, "Failed to resolve staff planning", "staff_id", st.ID, "error", err)
	return planning.StaffPlanningView{
		Staff:         planning.NewStaffResponse(st),
		Shifts:        []planning.ShiftResponse{},
		LeaveRequests: []planning.LeaveResponse{},
		BlockedDates:  []string{},
		Warnings: []integrity.Warning{{
			Code:    integrity.CodeStaffResolutionFailed,
			StaffID: st.ID,
			Message: err.Error(),
		}},
		Error: err.Error(),
	}
}
