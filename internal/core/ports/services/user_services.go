package services

import (
	"context"
	"time"

	"github.com/vastram/retail_pos_backend/internal/core/domain"
	"github.com/vastram/retail_pos_backend/internal/dto"
)

// UserReaderSvc defines read operations for users.
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users.
type UserWriterSvc interface {
	// CreateUser persists a new user with hashed credentials.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// AuthSvc verifies credentials for login.
type AuthSvc interface {
	// Authenticate checks a username/password pair and returns the user on
	// success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}

// TokenSvc issues signed bearer tokens for authenticated users.
type TokenSvc interface {
	// GenerateToken creates a signed JWT for the user.
	GenerateToken(user *domain.User) (token string, expiresAt time.Time, err error)
}
