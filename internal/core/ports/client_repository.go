package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
// Insert assigns the store-generated ID on the passed struct. The email
// unique index is the source of truth for duplicates: Insert returns
// domain.ErrDuplicateEmail on a collision, ExistsByEmail only serves the
// service-level fast path. Delete is a no-op when the id does not exist.
type ClientRepository interface {
	Insert(ctx context.Context, client *domain.Client) error
	FindAll(ctx context.Context) ([]*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}
