package services

import (
	"context"

	"github.com/FinRoots/finance_tracker_app/internal/core/domain"
	"github.com/FinRoots/finance_tracker_app/internal/dto"
)

// UserSvcFacade defines the user management operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// AuthenticateUser verifies local credentials and returns the user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	// FindOrCreateOAuthUser resolves an external identity to a local user,
	// creating one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, providerUserID, email, name string) (*domain.User, error)
	// DeactivateUser soft-deletes the user's own account.
	DeactivateUser(ctx context.Context, userID string) error
}
