package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
)

type shiftRepositoryImpl struct {
	store *Store
}

func NewShiftRepository(store *Store) shift.ShiftRepository {
	return &shiftRepositoryImpl{store: store}
}

func (r *shiftRepositoryImpl) GetByID(_ context.Context, id string) (shift.Shift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByIDs(_ context.Context, ids []string) ([]shift.Shift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []shift.Shift
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := r.store.shifts[id]; ok {
			result = append(result, s)
		}
	}
	sortShifts(result)
	return result, nil
}

func (r *shiftRepositoryImpl) GetByStaffInRange(_ context.Context, staffID string, from, to time.Time) ([]shift.Shift, error) {
	return r.filter(func(s shift.Shift) bool {
		return s.StaffID == staffID && inWindow(s.Date, from, to)
	}), nil
}

func (r *shiftRepositoryImpl) filter(keep func(shift.Shift) bool) []shift.Shift {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []shift.Shift
	for _, s := range r.store.shifts {
		if keep(s) {
			result = append(result, s)
		}
	}
	sortShifts(result)
	return result
}

type coverRequestRepositoryImpl struct {
	store *Store
}

func NewCoverRequestRepository(store *Store) shift.CoverRequestRepository {
	return &coverRequestRepositoryImpl{store: store}
}

func (r *coverRequestRepositoryImpl) GetInvolvingStaffInRange(_ context.Context, staffID string, from, to time.Time) ([]shift.CoverRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []shift.CoverRequest
	for _, c := range r.store.covers {
		s, ok := r.store.shifts[c.ShiftID]
		if !ok {
			if c.CoveringStaffID == staffID && inWindow(c.CreatedAt, from, to) {
				result = append(result, c)
			}
			continue
		}
		if s.StaffID != staffID && c.CoveringStaffID != staffID {
			continue
		}
		if inWindow(s.Date, from, to) {
			result = append(result, c)
		}
	}
	sortCovers(result)
	return result, nil
}

func sortCovers(records []shift.CoverRequest) {
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
}
