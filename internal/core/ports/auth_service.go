package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// AuthService registers new accounts and authenticates logins. Both return a
// signed token alongside the stored user.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
