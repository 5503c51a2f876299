package planning

import (
	"errors"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidRange     = daterange.ErrInvalidRange
	ErrStaffNotFound    = staff.ErrStaffNotFound
)
