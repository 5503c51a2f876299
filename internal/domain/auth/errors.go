package auth

import "errors"

var (
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrOtherStaffAccessDenied = errors.New("staff may only access their own records")
)
