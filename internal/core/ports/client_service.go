package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// CreateClientInput carries all data needed to register a new client.
type CreateClientInput struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

// UpdateClientInput carries the mutable fields of a client. Email and ID are
// immutable after creation.
type UpdateClientInput struct {
	Name        string
	Address     string
	PhoneNumber string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Update(ctx context.Context, id int64, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}
