package salary

import "context"

type SalaryRepository interface {
	GetByID(ctx context.Context, id string) (Salary, error)
	// GetOpenByStaff returns every record with no termination date. More than
	// one result is a data inconsistency the caller must tolerate.
	GetOpenByStaff(ctx context.Context, staffID string) ([]Salary, error)
	// GetHistoryByStaff returns all records ordered by effective date.
	GetHistoryByStaff(ctx context.Context, staffID string) ([]Salary, error)
	// ReplaceCurrent atomically sets the termination date of previousID (when
	// non-nil) to next.EffectiveDate and inserts next. It returns
	// ErrCurrentSalaryChanged when previousID is no longer open.
	ReplaceCurrent(ctx context.Context, previousID *string, next Salary) (Salary, error)
}
