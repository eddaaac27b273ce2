package domain

import "time"

// UserRole determines which dashboard a user can access.
type UserRole string

const (
	RoleAccountant UserRole = "accountant"
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
)

// User represents a user of the application in the domain.
// Suspension is a closed date window; a user inside an open window cannot log
// in even while Active is true.
type User struct {
	UserID          string     `json:"userID"` // Primary Key (UUID)
	Username        string     `json:"username"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Role            UserRole   `json:"role"`
	PasswordHash    string     `json:"-"`
	Active          bool       `json:"active"`
	SuspensionStart *time.Time `json:"suspensionStart,omitempty"`
	SuspensionEnd   *time.Time `json:"suspensionEnd,omitempty"`
	AuditFields
}

// IsSuspended reports whether the user's suspension window contains now.
func (u User) IsSuspended(now time.Time) bool {
	if u.SuspensionStart == nil || u.SuspensionEnd == nil {
		return false
	}
	return !now.Before(*u.SuspensionStart) && !now.After(*u.SuspensionEnd)
}
