package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverRequestRepository_Involvement(t *testing.T) {
	store := NewStore()
	store.PutShifts(
		shift.Shift{ID: "10", StaffID: "X", Date: daterange.Date(2024, time.June, 10)},
		shift.Shift{ID: "20", StaffID: "W", Date: daterange.Date(2024, time.June, 20)},
		shift.Shift{ID: "99", StaffID: "X", Date: daterange.Date(2024, time.August, 1)},
	)
	store.PutCoverRequests(
		shift.CoverRequest{ID: "c10", ShiftID: "10", CoveringStaffID: "Y", Status: shift.CoverStatusApproved},
		shift.CoverRequest{ID: "c20", ShiftID: "20", CoveringStaffID: "Z", Status: shift.CoverStatusApproved},
		shift.CoverRequest{ID: "c99", ShiftID: "99", CoveringStaffID: "Y", Status: shift.CoverStatusApproved},
		shift.CoverRequest{ID: "cgone", ShiftID: "gone", CoveringStaffID: "Y", Status: shift.CoverStatusApproved, CreatedAt: daterange.Date(2024, time.June, 5)},
		shift.CoverRequest{ID: "cold", ShiftID: "old", CoveringStaffID: "Y", Status: shift.CoverStatusApproved, CreatedAt: daterange.Date(2024, time.March, 5)},
	)
	repo := NewCoverRequestRepository(store)
	from, to := daterange.Date(2024, time.June, 1), daterange.Date(2024, time.June, 30)

	forX, err := repo.GetInvolvingStaffInRange(context.Background(), "X", from, to)
	require.NoError(t, err)
	forY, err := repo.GetInvolvingStaffInRange(context.Background(), "Y", from, to)
	require.NoError(t, err)

	assert.Len(t, forX, 1)
	require.Len(t, forY, 2)
	assert.Equal(t, "c10", forY[0].ID)
	assert.Equal(t, "cgone", forY[1].ID)
}

func TestStore_PutCoverRequestsKeepsOnePerShift(t *testing.T) {
	store := NewStore()
	store.PutShifts(shift.Shift{ID: "10", StaffID: "X", Date: daterange.Date(2024, time.June, 10)})
	store.PutCoverRequests(
		shift.CoverRequest{ID: "c1", ShiftID: "10", CoveringStaffID: "Y", Status: shift.CoverStatusApproved},
		shift.CoverRequest{ID: "c2", ShiftID: "10", CoveringStaffID: "Z", Status: shift.CoverStatusApproved},
	)
	repo := NewCoverRequestRepository(store)
	from, to := daterange.Date(2024, time.June, 1), daterange.Date(2024, time.June, 30)

	forX, err := repo.GetInvolvingStaffInRange(context.Background(), "X", from, to)
	require.NoError(t, err)
	forY, err := repo.GetInvolvingStaffInRange(context.Background(), "Y", from, to)
	require.NoError(t, err)

	require.Len(t, forX, 1)
	assert.Equal(t, "c2", forX[0].ID)
	assert.Equal(t, "Z", forX[0].CoveringStaffID)
	assert.Empty(t, forY)
}

func TestSalaryRepository_ReplaceCurrentConcurrent(t *testing.T) {
	store := NewStore()
	store.PutSalaries(salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1)})
	repo := NewSalaryRepository(store)
	previous := "s10"

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.ReplaceCurrent(context.Background(), &previous, salary.Salary{
				ID:            string(rune('a' + i)),
				StaffID:       "Z",
				HourlyWage:    "12",
				EffectiveDate: daterange.Date(2024, time.June, 1),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, salary.ErrCurrentSalaryChanged)
		}
	}
	assert.Equal(t, 1, succeeded)

	open, err := repo.GetOpenByStaff(context.Background(), "Z")
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestStaffRepository_SearchActiveIgnoresCase(t *testing.T) {
	store := NewStore()
	store.PutStaff(
		staff.Staff{ID: "1", Name: "Alice Walker", Status: staff.StatusActive},
		staff.Staff{ID: "2", Name: "walter", Status: staff.StatusDisabled},
	)

	got, err := NewStaffRepository(store).SearchActive(context.Background(), "WALK")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
