package staff

import "time"

type Staff struct {
	ID          string
	Name        string
	Username    string
	Email       string
	PhoneNumber string
	Role        Role
	Status      Status
	WorkDays    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the staff member takes part in planning and payroll.
func (s Staff) IsActive() bool {
	return s.Status == StatusActive
}

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleCashier Role = "CASHIER"
	RoleGuard   Role = "GUARD"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusDisabled Status = "DISABLED"
)
