package payroll

import "context"

type Service interface {
	GetPayroll(ctx context.Context, req GetPayrollRequest) ([]StaffPayrollView, error)
}
