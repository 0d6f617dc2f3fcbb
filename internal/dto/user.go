package dto

import (
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a counter user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN CASHIER"`
}

// UpdateUserRequest defines the user fields allowed to change.
type UpdateUserRequest struct {
	Name *string          `json:"name"`
	Role *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN CASHIER"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginRequest carries counter login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token for subsequent requests.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
