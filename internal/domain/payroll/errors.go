package payroll

import (
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
)

var (
	ErrMissingParameter = planning.ErrMissingParameter
	ErrInvalidRange     = planning.ErrInvalidRange
)
