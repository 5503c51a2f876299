package salary

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*memory.Store, *salaryServiceImpl) {
	t.Helper()
	store := memory.NewStore()
	store.PutStaff(staff.Staff{ID: "Z", Name: "Zed", Status: staff.StatusActive})
	svc := NewSalaryService(memory.NewSalaryRepository(store), memory.NewStaffRepository(store)).(*salaryServiceImpl)
	svc.now = func() time.Time { return daterange.Date(2024, time.July, 1) }
	return store, svc
}

func TestChangeWage_TerminatesPreviousAtNewEffectiveDate(t *testing.T) {
	store, svc := newTestService(t)
	store.PutSalaries(salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1)})
	ctx := context.Background()

	created, err := svc.ChangeWage(ctx, salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "12", EffectiveDate: "2024-06-01"})
	require.NoError(t, err)

	assert.Equal(t, "12", created.HourlyWage)
	assert.Equal(t, "2024-06-01", created.EffectiveDate)
	assert.Nil(t, created.TerminationDate)

	history, err := svc.GetHistory(ctx, "Z")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "s10", history[0].ID)
	require.NotNil(t, history[0].TerminationDate)
	assert.Equal(t, "2024-06-01", *history[0].TerminationDate)

	current, err := svc.GetCurrent(ctx, "Z")
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)

	before, err := svc.GetAt(ctx, "Z", "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, "s10", before.ID)
}

func TestChangeWage_FirstSalary(t *testing.T) {
	_, svc := newTestService(t)

	created, err := svc.ChangeWage(context.Background(), salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "9.50", EffectiveDate: "2024-01-01"})

	require.NoError(t, err)
	assert.Equal(t, "9.5", created.HourlyWage)
}

func TestChangeWage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     salary.ChangeWageRequest
		wantErr error
	}{
		{"unchanged wage", salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "10.00", EffectiveDate: "2024-06-01"}, salary.ErrWageUnchanged},
		{"effective before current", salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "12", EffectiveDate: "2023-12-31"}, salary.ErrEffectiveDateBeforeCurrent},
		{"unknown staff", salary.ChangeWageRequest{StaffID: "nobody", HourlyWage: "12", EffectiveDate: "2024-06-01"}, staff.ErrStaffNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc := newTestService(t)
			store.PutSalaries(salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1)})

			_, err := svc.ChangeWage(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestChangeWage_ValidationErrors(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.ChangeWage(context.Background(), salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "-1", EffectiveDate: "June 1"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestChangeWage_RejectsSubCentWage(t *testing.T) {
	store, svc := newTestService(t)

	_, err := svc.ChangeWage(context.Background(), salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "10.125", EffectiveDate: "2024-06-01"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{"hourly_wage": "must have at most 2 decimal places"}, verrs.ToMap())

	open, err := memory.NewSalaryRepository(store).GetOpenByStaff(context.Background(), "Z")
	require.NoError(t, err)
	assert.Empty(t, open)

	_, err = svc.ChangeWage(context.Background(), salary.ChangeWageRequest{StaffID: "Z", HourlyWage: "10.50", EffectiveDate: "2024-06-01"})
	assert.NoError(t, err)
}

func TestGetCurrent_DisabledStaffIsNotFound(t *testing.T) {
	store, svc := newTestService(t)
	store.PutStaff(staff.Staff{ID: "D", Status: staff.StatusDisabled})

	_, err := svc.GetCurrent(context.Background(), "D")

	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestGetAt_NoRecordIsNotFound(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.GetAt(context.Background(), "Z", "2024-01-01")

	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}
