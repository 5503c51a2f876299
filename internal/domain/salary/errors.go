package salary

import "errors"

var (
	ErrSalaryNotFound             = errors.New("salary not found")
	ErrInvalidWage                = errors.New("invalid hourly wage")
	ErrWageUnchanged              = errors.New("hourly wage is unchanged")
	ErrEffectiveDateBeforeCurrent = errors.New("effective date is before the current salary's effective date")
	ErrCurrentSalaryChanged       = errors.New("current salary was changed concurrently")
)
