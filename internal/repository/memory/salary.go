package memory

import (
	"context"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
)

type salaryRepositoryImpl struct {
	store *Store
}

func NewSalaryRepository(store *Store) salary.SalaryRepository {
	return &salaryRepositoryImpl{store: store}
}

func (r *salaryRepositoryImpl) GetByID(_ context.Context, id string) (salary.Salary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.salaries[id]
	if !ok {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}
	return s, nil
}

func (r *salaryRepositoryImpl) GetOpenByStaff(_ context.Context, staffID string) ([]salary.Salary, error) {
	return r.filter(func(s salary.Salary) bool {
		return s.StaffID == staffID && s.IsCurrent()
	}), nil
}

func (r *salaryRepositoryImpl) GetHistoryByStaff(_ context.Context, staffID string) ([]salary.Salary, error) {
	return r.filter(func(s salary.Salary) bool {
		return s.StaffID == staffID
	}), nil
}

// ReplaceCurrent holds the write lock for both steps, which makes the
// terminate-and-insert atomic for every reader of the store.
func (r *salaryRepositoryImpl) ReplaceCurrent(_ context.Context, previousID *string, next salary.Salary) (salary.Salary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if previousID != nil {
		previous, ok := r.store.salaries[*previousID]
		if !ok || !previous.IsCurrent() {
			return salary.Salary{}, salary.ErrCurrentSalaryChanged
		}
		termination := next.EffectiveDate
		previous.TerminationDate = &termination
		previous.UpdatedAt = next.CreatedAt
		r.store.salaries[previous.ID] = previous
	}

	next.TerminationDate = nil
	r.store.salaries[next.ID] = next
	return next, nil
}

func (r *salaryRepositoryImpl) filter(keep func(salary.Salary) bool) []salary.Salary {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []salary.Salary
	for _, s := range r.store.salaries {
		if keep(s) {
			result = append(result, s)
		}
	}
	sortSalaries(result)
	return result
}
