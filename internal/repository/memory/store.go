// Package memory is an in-process persistence collaborator used by tests and
// by the api binary when STORE_DRIVER=memory. All repositories built from one
// Store share its data and are safe for concurrent use.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/leave"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

type Store struct {
	mu            sync.RWMutex
	staff         map[string]staff.Staff
	shifts        map[string]shift.Shift
	covers        map[string]shift.CoverRequest
	leaveRequests map[string]leave.LeaveRequest
	salaries      map[string]salary.Salary
	timesheets    map[string]timesheet.Timesheet
}

func NewStore() *Store {
	return &Store{
		staff:         make(map[string]staff.Staff),
		shifts:        make(map[string]shift.Shift),
		covers:        make(map[string]shift.CoverRequest),
		leaveRequests: make(map[string]leave.LeaveRequest),
		salaries:      make(map[string]salary.Salary),
		timesheets:    make(map[string]timesheet.Timesheet),
	}
}

func (s *Store) PutStaff(records ...staff.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.staff[r.ID] = r
	}
}

func (s *Store) PutShifts(records ...shift.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		r.Date = daterange.DateOnly(r.Date)
		s.shifts[r.ID] = r
	}
}

// PutCoverRequests keeps at most one request per shift. A record for a shift
// that already has a request under another id replaces it.
func (s *Store) PutCoverRequests(records ...shift.CoverRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		for id, existing := range s.covers {
			if existing.ShiftID == r.ShiftID && id != r.ID {
				delete(s.covers, id)
			}
		}
		s.covers[r.ID] = r
	}
}

func (s *Store) PutLeaveRequests(records ...leave.LeaveRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		r.StartDate = daterange.DateOnly(r.StartDate)
		r.EndDate = daterange.DateOnly(r.EndDate)
		s.leaveRequests[r.ID] = r
	}
}

func (s *Store) PutSalaries(records ...salary.Salary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.salaries[r.ID] = r
	}
}

func (s *Store) PutTimesheets(records ...timesheet.Timesheet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.timesheets[r.ID] = r
	}
}

// DeleteShift hard-deletes a shift. Cover requests and timesheets that
// reference it are left dangling, as with a database without cascades.
func (s *Store) DeleteShift(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.shifts, id)
}

func (s *Store) DeleteSalary(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.salaries, id)
}

func sortStaff(records []staff.Staff) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})
}

func sortShifts(records []shift.Shift) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
}

func sortSalaries(records []salary.Salary) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.EffectiveDate.Equal(b.EffectiveDate) {
			return a.EffectiveDate.Before(b.EffectiveDate)
		}
		return a.ID < b.ID
	})
}

func inWindow(d, from, to time.Time) bool {
	d = daterange.DateOnly(d)
	return !d.Before(daterange.DateOnly(from)) && !d.After(daterange.DateOnly(to))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
