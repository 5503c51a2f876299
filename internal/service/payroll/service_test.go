package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/payroll"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/memory"
	planningservice "github.com/cmlabs-hris/shift-payroll/internal/service/planning"
	salaryservice "github.com/cmlabs-hris/shift-payroll/internal/service/salary"
	timesheetservice "github.com/cmlabs-hris/shift-payroll/internal/service/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	payroll    payroll.Service
	salaries   salary.Service
	timesheets timesheet.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	staffRepo := memory.NewStaffRepository(store)
	shiftRepo := memory.NewShiftRepository(store)
	salaryRepo := memory.NewSalaryRepository(store)
	timesheetRepo := memory.NewTimesheetRepository(store)
	planner := planningservice.NewPlanner(shiftRepo, memory.NewCoverRequestRepository(store), memory.NewLeaveRequestRepository(store), salaryRepo)

	return &fixture{
		store:      store,
		payroll:    NewPayrollService(planner, staffRepo, timesheetRepo, salaryRepo, 2),
		salaries:   salaryservice.NewSalaryService(salaryRepo, staffRepo),
		timesheets: timesheetservice.NewTimesheetService(timesheetRepo, shiftRepo, staffRepo, salaryRepo),
	}
}

func clock(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}

func workShift(id, staffID string, date time.Time, published bool) shift.Shift {
	return shift.Shift{
		ID:                id,
		StaffID:           staffID,
		Date:              date,
		StartTime:         clock(9, 0),
		EndTime:           clock(17, 0),
		Published:         published,
		SalaryCoefficient: 1,
	}
}

func strPtr(s string) *string { return &s }

func year2024() payroll.GetPayrollRequest {
	return payroll.GetPayrollRequest{From: "2024-01-01", To: "2024-12-31"}
}

func TestGetPayroll_WageStaysPinnedAfterWageChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	f.store.PutSalaries(salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1)})
	f.store.PutShifts(workShift("march", "Z", daterange.Date(2024, time.March, 1), true))

	recorded, err := f.timesheets.Record(ctx, timesheet.RecordTimesheetRequest{
		ShiftID: "march", StaffID: "Z", CheckInTime: "09:00", CheckOutTime: "17:00",
	})
	require.NoError(t, err)
	require.NotNil(t, recorded.SalaryID)

	_, err = f.salaries.ChangeWage(ctx, salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "12", EffectiveDate: "2024-06-01"})
	require.NoError(t, err)

	views, err := f.payroll.GetPayroll(ctx, year2024())
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Shifts, 1)

	ts := views[0].Shifts[0].Timesheet
	require.NotNil(t, ts)
	require.NotNil(t, ts.Salary)
	assert.Equal(t, "s10", ts.Salary.ID)
	assert.Equal(t, "10", ts.Salary.HourlyWage)
	require.NotNil(t, ts.Amount)
	assert.True(t, decimal.NewFromInt(80).Equal(*ts.Amount), ts.Amount.String())
	assert.True(t, decimal.NewFromInt(80).Equal(views[0].TotalAmount))
	assert.Equal(t, 1, views[0].WorkedShifts)
}

func TestGetPayroll_DeletedPinnedSalaryIsAbsent(t *testing.T) {
	f := newFixture(t)
	f.store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	f.store.PutSalaries(salary.Salary{ID: "current", StaffID: "Z", HourlyWage: "12", EffectiveDate: daterange.Date(2024, time.January, 1)})
	f.store.PutShifts(workShift("sh", "Z", daterange.Date(2024, time.March, 1), true))
	f.store.PutTimesheets(timesheet.Timesheet{
		ID: "ts", ShiftID: "sh", StaffID: "Z",
		CheckInTime: clock(9, 0), CheckOutTime: clock(13, 0),
		Status: timesheet.StatusApproved, SalaryID: strPtr("gone"),
	})

	views, err := f.payroll.GetPayroll(context.Background(), year2024())

	require.NoError(t, err)
	ts := views[0].Shifts[0].Timesheet
	require.NotNil(t, ts)
	assert.Nil(t, ts.Salary)
	assert.Nil(t, ts.Amount)
	assert.True(t, decimal.NewFromInt(4).Equal(ts.WorkedHours))
	assert.True(t, views[0].TotalAmount.IsZero())
	require.Len(t, views[0].Warnings, 1)
	assert.Equal(t, integrity.CodePinnedSalaryMissing, views[0].Warnings[0].Code)
}

func TestGetPayroll_NoPinIsWarning(t *testing.T) {
	f := newFixture(t)
	f.store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	f.store.PutShifts(workShift("sh", "Z", daterange.Date(2024, time.March, 1), true))
	f.store.PutTimesheets(timesheet.Timesheet{ID: "ts", ShiftID: "sh", StaffID: "Z", CheckInTime: clock(9, 0), CheckOutTime: clock(10, 0)})

	views, err := f.payroll.GetPayroll(context.Background(), year2024())

	require.NoError(t, err)
	assert.Nil(t, views[0].Shifts[0].Timesheet.Salary)
	require.Len(t, views[0].Warnings, 1)
	assert.Equal(t, integrity.CodeNoPinnedSalary, views[0].Warnings[0].Code)
}

func TestGetPayroll_IncludesDraftsAndShiftsWithoutTimesheet(t *testing.T) {
	f := newFixture(t)
	f.store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	f.store.PutShifts(
		workShift("draft", "Z", daterange.Date(2024, time.March, 1), false),
		workShift("plain", "Z", daterange.Date(2024, time.March, 2), true),
	)

	views, err := f.payroll.GetPayroll(context.Background(), year2024())

	require.NoError(t, err)
	require.Len(t, views[0].Shifts, 2)
	assert.Equal(t, "draft", views[0].Shifts[0].ID)
	assert.Nil(t, views[0].Shifts[1].Timesheet)
	assert.Equal(t, 0, views[0].WorkedShifts)
}

func TestGetPayroll_SearchFiltersByNameIgnoringCase(t *testing.T) {
	f := newFixture(t)
	f.store.PutStaff(
		staff.Staff{ID: "1", Name: "Alice Walker", Status: staff.StatusActive},
		staff.Staff{ID: "2", Name: "Bob Stone", Status: staff.StatusActive},
		staff.Staff{ID: "3", Name: "Walt Disabled", Status: staff.StatusDisabled},
	)

	req := year2024()
	req.Search = strPtr("WAL")
	views, err := f.payroll.GetPayroll(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "1", views[0].Staff.ID)
}

func TestGetPayroll_InvalidWindow(t *testing.T) {
	f := newFixture(t)

	_, err := f.payroll.GetPayroll(context.Background(), payroll.GetPayrollRequest{From: "2024-02-01", To: "2024-01-01"})
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)

	_, err = f.payroll.GetPayroll(context.Background(), payroll.GetPayrollRequest{From: "2024-02-01"})
	assert.ErrorIs(t, err, payroll.ErrMissingParameter)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		worked time.Duration
		wage   string
		coeff  float64
		want   string
	}{
		{"whole hours", 8 * time.Hour, "10", 1, "80"},
		{"coefficient applied", 8 * time.Hour, "10", 1.5, "120"},
		{"zero coefficient counts as one", 2 * time.Hour, "12.5", 0, "25"},
		{"minutes", 90 * time.Minute, "10", 1, "15"},
		{"rounded to cents", 20 * time.Minute, "10", 1, "3.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.worked, decimal.RequireFromString(tt.wage), tt.coeff)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestGetPayroll_OvernightShiftCountsNextDay(t *testing.T) {
	f := newFixture(t)
	f.store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	f.store.PutSalaries(salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1)})
	f.store.PutShifts(workShift("night", "Z", daterange.Date(2024, time.March, 1), true))
	f.store.PutTimesheets(timesheet.Timesheet{
		ID: "ts", ShiftID: "night", StaffID: "Z",
		CheckInTime: clock(22, 0), CheckOutTime: clock(6, 0), SalaryID: strPtr("s10"),
	})

	views, err := f.payroll.GetPayroll(context.Background(), year2024())

	require.NoError(t, err)
	ts := views[0].Shifts[0].Timesheet
	assert.True(t, decimal.NewFromInt(8).Equal(ts.WorkedHours))
	assert.True(t, decimal.NewFromInt(80).Equal(*ts.Amount))
	assert.True(t, decimal.NewFromInt(8).Equal(views[0].TotalHours))
}
