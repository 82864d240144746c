package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

// Notifier enqueues notification events for asynchronous processing. A nil
// Notifier disables notifications.
type Notifier interface {
	Enqueue(input ports.NotificationInput)
}

// CaseRecordService implements case CRUD. Cases carry no uniqueness
// constraint and both entity references may be nil.
type CaseRecordService struct {
	repo     ports.CaseRepository
	notifier Notifier
	logger   zerolog.Logger
}

func NewCaseRecordService(repo ports.CaseRepository, notifier Notifier, logger zerolog.Logger) *CaseRecordService {
	return &CaseRecordService{repo: repo, notifier: notifier, logger: logger}
}

func (s *CaseRecordService) Create(ctx context.Context, input ports.CaseInput) (*domain.CaseRecord, error) {
	record := &domain.CaseRecord{
		CaseTitle:   input.CaseTitle,
		CaseType:    input.CaseType,
		CaseStatus:  input.CaseStatus,
		HearingDate: input.HearingDate,
		Description: input.Description,
		LawyerID:    input.LawyerID,
		ClientID:    input.ClientID,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("case_id", record.ID).Str("title", record.CaseTitle).Msg("case created")
	s.notify(record, "New case opened", fmt.Sprintf("Case %q has been opened.", record.CaseTitle))
	return record, nil
}

func (s *CaseRecordService) GetAll(ctx context.Context) ([]*domain.CaseRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *CaseRecordService) GetByID(ctx context.Context, id int64) (*domain.CaseRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites title, type, status, hearing date, description, and both
// references. The ID is immutable.
func (s *CaseRecordService) Update(ctx context.Context, id int64, input ports.CaseInput) (*domain.CaseRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.CaseTitle = input.CaseTitle
	record.CaseType = input.CaseType
	record.CaseStatus = input.CaseStatus
	record.HearingDate = input.HearingDate
	record.Description = input.Description
	record.LawyerID = input.LawyerID
	record.ClientID = input.ClientID

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	s.notify(record, "Case updated", fmt.Sprintf("Case %q was updated (status: %s).", record.CaseTitle, record.CaseStatus))
	return record, nil
}

// Delete removes the case by id; a nonexistent id is a silent no-op.
func (s *CaseRecordService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *CaseRecordService) notify(record *domain.CaseRecord, title, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Enqueue(ports.NotificationInput{
		Type:      domain.NotificationTypeCase,
		Title:     title,
		Message:   message,
		Priority:  domain.PriorityMedium,
		ClientID:  record.ClientID,
		CreatedAt: time.Now().UTC(),
	})
}
