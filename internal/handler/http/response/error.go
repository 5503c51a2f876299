package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/auth"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/planning"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/salary"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/staff"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/timesheet"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrOtherStaffAccessDenied):
		Forbidden(w, "Staff may only access their own records")

	// Query window errors
	case errors.Is(err, planning.ErrMissingParameter):
		BadRequest(w, err.Error(), map[string]string{"from": "is required", "to": "is required"})
	case errors.Is(err, planning.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrStaffIDRequired):
		BadRequest(w, "Staff ID is required", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary not found")
	case errors.Is(err, salary.ErrWageUnchanged):
		Conflict(w, "Hourly wage is unchanged")
	case errors.Is(err, salary.ErrEffectiveDateBeforeCurrent):
		BadRequest(w, "Effective date is before the current salary's effective date", nil)
	case errors.Is(err, salary.ErrCurrentSalaryChanged):
		Conflict(w, "Current salary was changed concurrently, retry")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		Conflict(w, "Shift already has a timesheet")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
