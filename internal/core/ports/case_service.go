package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// CaseInput carries the writable fields of a case record. It is used for both
// create and update: an update overwrites every field listed here, the ID is
// immutable. LawyerID and ClientID may be nil (unassigned).
type CaseInput struct {
	CaseTitle   string
	CaseType    string
	CaseStatus  string
	HearingDate string
	Description string
	LawyerID    *int64
	ClientID    *int64
}

// CaseRecordService defines use-case operations for case records.
type CaseRecordService interface {
	Create(ctx context.Context, input CaseInput) (*domain.CaseRecord, error)
	GetAll(ctx context.Context) ([]*domain.CaseRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.CaseRecord, error)
	Update(ctx context.Context, id int64, input CaseInput) (*domain.CaseRecord, error)
	Delete(ctx context.Context, id int64) error
}
