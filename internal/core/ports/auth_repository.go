package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
// Username uniqueness is enforced by the store; Create returns
// domain.ErrUserExists when the username is already taken.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
