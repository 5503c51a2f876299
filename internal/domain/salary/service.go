package salary

import "context"

type Service interface {
	GetCurrent(ctx context.Context, staffID string) (SalaryResponse, error)
	// GetAt resolves the wage in effect on date (YYYY-MM-DD).
	GetAt(ctx context.Context, staffID string, date string) (SalaryResponse, error)
	GetHistory(ctx context.Context, staffID string) ([]SalaryResponse, error)
	ChangeWage(ctx context.Context, req ChangeWageRequest) (SalaryResponse, error)
}
