package domain

import "time"

// UserRole gates what a counter user may do.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CASHIER"
)

// User represents a counter/back-office user of the application.
type User struct {
	UserID string   `json:"userID"` // Primary Key (UUID)
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
