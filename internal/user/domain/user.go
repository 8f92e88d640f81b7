package domain

import (
	"time"
)

// Roles
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User represents a manager or employee account. Employees belong to the
// manager that created them via ManagerID.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	ManagerID    *string   `json:"manager_id,omitempty" db:"manager_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsManager reports whether the user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
