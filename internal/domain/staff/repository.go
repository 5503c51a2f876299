package staff

import "context"

type StaffRepository interface {
	// GetByID returns ErrStaffNotFound when no staff has the given id.
	// Disabled staff are returned; eligibility is decided by the caller.
	GetByID(ctx context.Context, id string) (Staff, error)
	GetActive(ctx context.Context) ([]Staff, error)
	// SearchActive matches the staff name case-insensitively as a substring.
	SearchActive(ctx context.Context, term string) ([]Staff, error)
}
