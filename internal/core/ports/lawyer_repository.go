package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// LawyerRepository exposes the read-only lawyer surface. Lawyers are seeded
// or managed out of band; the API only lists them.
type LawyerRepository interface {
	FindAll(ctx context.Context) ([]*domain.Lawyer, error)
}
