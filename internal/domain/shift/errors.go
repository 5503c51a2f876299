package shift

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrCoverRequestNotFound = errors.New("shift cover request not found")
)
