package staff

import "errors"

var (
	ErrStaffNotFound   = errors.New("staff not found")
	ErrStaffIDRequired = errors.New("staff ID is required")
)
