package models

import "time"

// UserRole distinguishes administrators from regular site users.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleUser  UserRole = "user"
)

// User represents an application user stored in the users table.
type User struct {
	ID              string     `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Email           string     `db:"email" json:"email"`
	Phone           string     `db:"phone" json:"phone"`
	Role            UserRole   `db:"role" json:"role"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	ResetCodeHash   *string    `db:"reset_code_hash" json:"-"`
	ResetCodeExpiry *time.Time `db:"reset_code_expiry" json:"-"`
	LastLogin       *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
