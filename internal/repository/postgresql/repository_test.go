package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/database"
	"github.com/cmlabs-hris/shift-payroll/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	setup, err := NewTestDatabase(ctx)
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(func() {
		_ = setup.TruncateAllTables(context.Background())
		setup.DB.Close()
	})
	return setup.DB
}

func insertStaff(t *testing.T, db *database.DB, id, name string, status staff.Status) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO staff (id, name, username, role, status)
		VALUES ($1, $2, $1, 'CASHIER', $3)
	`, id, name, status)
	require.NoError(t, err)
}

func insertShift(t *testing.T, db *database.DB, id, staffID string, date time.Time) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO shifts (id, staff_id, date, start_time, end_time, published)
		VALUES ($1, $2, $3, '09:00', '17:30', TRUE)
	`, id, staffID, date)
	require.NoError(t, err)
}

func TestStaffRepository_SearchActive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "1", "Alice Walker", staff.StatusActive)
	insertStaff(t, db, "2", "Bob", staff.StatusActive)
	insertStaff(t, db, "3", "Walt", staff.StatusDisabled)
	repo := postgresql.NewStaffRepository(db)

	found, err := repo.SearchActive(ctx, "wal")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1", found[0].ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestShiftRepository_ClockRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "X", "Xavier", staff.StatusActive)
	insertShift(t, db, "s1", "X", daterange.Date(2024, time.June, 1))
	repo := postgresql.NewShiftRepository(db)

	got, err := repo.GetByStaffInRange(ctx, "X", daterange.Date(2024, time.June, 1), daterange.Date(2024, time.June, 1))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "09:00:00", got[0].StartTime.Format("15:04:05"))
	assert.Equal(t, "17:30:00", got[0].EndTime.Format("15:04:05"))
	assert.True(t, got[0].Date.Equal(daterange.Date(2024, time.June, 1)))
}

func TestCoverRequestRepository_DanglingKeptForCoverer(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "X", "Xavier", staff.StatusActive)
	insertStaff(t, db, "Y", "Yara", staff.StatusActive)
	insertShift(t, db, "10", "X", daterange.Date(2024, time.June, 10))
	_, err := db.Exec(ctx, `
		INSERT INTO shift_cover_requests (id, shift_id, covering_staff_id, status, created_at) VALUES
		('c1', '10', 'Y', 'APPROVED', '2024-05-20'),
		('c2', 'deleted', 'Y', 'APPROVED', '2024-06-05'),
		('c3', 'deleted-earlier', 'Y', 'APPROVED', '2024-03-05')
	`)
	require.NoError(t, err)
	repo := postgresql.NewCoverRequestRepository(db)
	from, to := daterange.Date(2024, time.June, 1), daterange.Date(2024, time.June, 30)

	forX, err := repo.GetInvolvingStaffInRange(ctx, "X", from, to)
	require.NoError(t, err)
	forY, err := repo.GetInvolvingStaffInRange(ctx, "Y", from, to)
	require.NoError(t, err)

	require.Len(t, forX, 1)
	assert.Equal(t, "c1", forX[0].ID)
	require.Len(t, forY, 2)
	assert.Equal(t, "c1", forY[0].ID)
	assert.Equal(t, "c2", forY[1].ID)
	assert.Equal(t, shift.CoverStatusApproved, forY[0].Status)
}

func TestLeaveRequestRepository_ApprovedOverlapping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "X", "Xavier", staff.StatusActive)
	_, err := db.Exec(ctx, `
		INSERT INTO leave_requests (id, staff_id, leave_type, start_date, end_date, status) VALUES
		('l1', 'X', 'VACATION', '2024-05-30', '2024-06-02', 'APPROVED'),
		('l2', 'X', 'SICK', '2024-06-10', '2024-06-10', 'PENDING'),
		('l3', 'X', 'OTHER', '2024-07-01', '2024-07-02', 'APPROVED')
	`)
	require.NoError(t, err)

	got, err := postgresql.NewLeaveRequestRepository(db).GetApprovedByStaffInRange(ctx, "X", daterange.Date(2024, time.June, 1), daterange.Date(2024, time.June, 30))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, leave.LeaveTypeVacation, got[0].LeaveType)
}

func TestSalaryRepository_ReplaceCurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "Z", "Zed", staff.StatusActive)
	repo := postgresql.NewSalaryRepository(db)
	now := time.Now().UTC()

	first, err := repo.ReplaceCurrent(ctx, nil, salary.Salary{ID: "s10", StaffID: "Z", HourlyWage: "10", EffectiveDate: daterange.Date(2024, time.January, 1), CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	_, err = repo.ReplaceCurrent(ctx, &first.ID, salary.Salary{ID: "s12", StaffID: "Z", HourlyWage: "12.50", EffectiveDate: daterange.Date(2024, time.June, 1), CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	history, err := repo.GetHistoryByStaff(ctx, "Z")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.NotNil(t, history[0].TerminationDate)
	assert.True(t, history[0].TerminationDate.Equal(daterange.Date(2024, time.June, 1)))
	assert.Equal(t, "12.50", history[1].HourlyWage)

	open, err := repo.GetOpenByStaff(ctx, "Z")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "s12", open[0].ID)

	_, err = repo.ReplaceCurrent(ctx, &first.ID, salary.Salary{ID: "s99", StaffID: "Z", HourlyWage: "99", EffectiveDate: daterange.Date(2024, time.July, 1), CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, salary.ErrCurrentSalaryChanged)
	_, err = repo.GetByID(ctx, "s99")
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestTimesheetRepository_CreateUpdateKeepsPin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	insertStaff(t, db, "Z", "Zed", staff.StatusActive)
	insertShift(t, db, "sh", "Z", daterange.Date(2024, time.March, 1))
	repo := postgresql.NewTimesheetRepository(db)
	pin := "s10"
	now := time.Now().UTC()
	ts := timesheet.Timesheet{
		ID: "ts", ShiftID: "sh", StaffID: "Z",
		CheckInTime:  time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		CheckOutTime: time.Date(0, 1, 1, 17, 15, 0, 0, time.UTC),
		Status:       timesheet.StatusPending, SalaryID: &pin, CreatedAt: now, UpdatedAt: now,
	}

	created, err := repo.Create(ctx, ts)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+15*time.Minute, created.WorkedDuration())

	dup := ts
	dup.ID = "ts2"
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetExists)

	changed := created
	changed.Status = timesheet.StatusApproved
	changed.SalaryID = nil
	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, updated.Status)
	require.NotNil(t, updated.SalaryID)
	assert.Equal(t, "s10", *updated.SalaryID)

	byShift, err := repo.GetByShiftID(ctx, "sh")
	require.NoError(t, err)
	assert.Equal(t, "ts", byShift.ID)
}
