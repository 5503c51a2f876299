package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	leaveservice "github.com/cmlabs-hris/shift-payroll/internal/service/leave"
	salaryservice "github.com/cmlabs-hris/shift-payroll/internal/service/salary"
	shiftservice "github.com/cmlabs-hris/shift-payroll/internal/service/shift"
)

type PlanOptions struct {
	// PublishedOnly hides draft shifts, for staff-facing views.
	PublishedOnly bool
	// WithCurrentSalary attaches the staff's current wage to the plan.
	WithCurrentSalary bool
}

// StaffPlan is the effective schedule of one staff member for a window.
type StaffPlan struct {
	Staff         staff.Staff
	Shifts        []shiftservice.EffectiveShift
	LeaveRequests []leave.LeaveRequest
	BlockedDates  []time.Time
	Salary        *salary.Salary
	Warnings      []integrity.Warning
}

// Planner composes the ownership resolver, the leave filter and the salary
// resolver for a single staff member. Payroll reuses it directly.
type Planner struct {
	shiftRepo  shift.ShiftRepository
	coverRepo  shift.CoverRequestRepository
	leaveRepo  leave.LeaveRequestRepository
	salaryRepo salary.SalaryRepository
	now        func() time.Time
}

func NewPlanner(
	shiftRepo shift.ShiftRepository,
	coverRepo shift.CoverRequestRepository,
	leaveRepo leave.LeaveRequestRepository,
	salaryRepo salary.SalaryRepository,
) *Planner {
	return &Planner{
		shiftRepo:  shiftRepo,
		coverRepo:  coverRepo,
		leaveRepo:  leaveRepo,
		salaryRepo: salaryRepo,
		now:        time.Now,
	}
}

func (p *Planner) PlanStaff(ctx context.Context, st staff.Staff, window daterange.Range, opts PlanOptions) (StaffPlan, error) {
	plan := StaffPlan{Staff: st}

	assigned, err := p.shiftRepo.GetByStaffInRange(ctx, st.ID, window.From, window.To)
	if err != nil {
		return StaffPlan{}, fmt.Errorf("failed to get assigned shifts: %w", err)
	}
	covers, err := p.coverRepo.GetInvolvingStaffInRange(ctx, st.ID, window.From, window.To)
	if err != nil {
		return StaffPlan{}, fmt.Errorf("failed to get cover requests: %w", err)
	}
	coveredIn, err := p.coveredInShifts(ctx, st.ID, covers)
	if err != nil {
		return StaffPlan{}, err
	}

	ownership := shiftservice.ResolveOwnership(ctx, shiftservice.OwnershipInput{
		StaffID:  st.ID,
		Window:   window,
		Assigned: assigned,
		Covers:   covers,
		Shifts:   coveredIn,
	})
	plan.Warnings = append(plan.Warnings, ownership.Warnings...)

	leaves, err := p.leaveRepo.GetApprovedByStaffInRange(ctx, st.ID, window.From, window.To)
	if err != nil {
		return StaffPlan{}, fmt.Errorf("failed to get leave requests: %w", err)
	}
	leaves = leaveservice.ApprovedOnly(leaves)
	for _, lr := range leaveservice.InvalidRanges(leaves) {
		plan.Warnings = append(plan.Warnings, integrity.Report(ctx, integrity.Warning{
			Code:     integrity.CodeInvalidLeaveRange,
			StaffID:  st.ID,
			RecordID: lr.ID,
			Message:  "leave request starts after it ends and blocks no dates",
		}))
	}
	for _, lr := range leaves {
		if _, err := daterange.New(lr.StartDate, lr.EndDate); err == nil {
			plan.LeaveRequests = append(plan.LeaveRequests, lr)
		}
	}

	plan.BlockedDates = leaveservice.BlockedDates(window, plan.LeaveRequests)

	for _, es := range ownership.Shifts {
		if leaveservice.IsDateBlocked(es.Shift.Date, plan.LeaveRequests) {
			continue
		}
		if opts.PublishedOnly && !es.Shift.Published {
			continue
		}
		plan.Shifts = append(plan.Shifts, es)
	}

	if opts.WithCurrentSalary {
		open, err := p.salaryRepo.GetOpenByStaff(ctx, st.ID)
		if err != nil {
			return StaffPlan{}, fmt.Errorf("failed to get current salary: %w", err)
		}
		current, warnings := salaryservice.CurrentWage(ctx, st.ID, open, p.now())
		plan.Salary = current
		plan.Warnings = append(plan.Warnings, warnings...)
	}

	return plan, nil
}

// coveredInShifts loads the shifts referenced by approved covers where staffID
// is the covering staff. Deleted shifts are simply absent from the map.
func (p *Planner) coveredInShifts(ctx context.Context, staffID string, covers []shift.CoverRequest) (map[string]shift.Shift, error) {
	var ids []string
	for _, c := range covers {
		if c.IsApproved() && c.CoveringStaffID == staffID {
			ids = append(ids, c.ShiftID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	shifts, err := p.shiftRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get covered shifts: %w", err)
	}
	byID := make(map[string]shift.Shift, len(shifts))
	for _, s := range shifts {
		byID[s.ID] = s
	}
	return byID, nil
}
