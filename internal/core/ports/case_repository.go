package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// CaseRepository defines persistence operations for case records.
// Insert assigns the store-generated ID. Delete is a no-op when the id does
// not exist.
type CaseRepository interface {
	Insert(ctx context.Context, record *domain.CaseRecord) error
	FindAll(ctx context.Context) ([]*domain.CaseRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.CaseRecord, error)
	Update(ctx context.Context, record *domain.CaseRecord) error
	Delete(ctx context.Context, id int64) error
}
