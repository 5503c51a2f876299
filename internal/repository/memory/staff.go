package memory

import (
	"context"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
)

type staffRepositoryImpl struct {
	store *Store
}

func NewStaffRepository(store *Store) staff.StaffRepository {
	return &staffRepositoryImpl{store: store}
}

func (r *staffRepositoryImpl) GetByID(_ context.Context, id string) (staff.Staff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	st, ok := r.store.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

func (r *staffRepositoryImpl) GetActive(_ context.Context) ([]staff.Staff, error) {
	return r.filter(func(st staff.Staff) bool { return st.IsActive() }), nil
}

func (r *staffRepositoryImpl) SearchActive(_ context.Context, term string) ([]staff.Staff, error) {
	return r.filter(func(st staff.Staff) bool {
		return st.IsActive() && containsFold(st.Name, term)
	}), nil
}

func (r *staffRepositoryImpl) filter(keep func(staff.Staff) bool) []staff.Staff {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []staff.Staff
	for _, st := range r.store.staff {
		if keep(st) {
			result = append(result, st)
		}
	}
	sortStaff(result)
	return result
}
