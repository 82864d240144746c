package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

type stubCaseRepo struct {
	records map[int64]*domain.CaseRecord
	nextID  int64
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{records: make(map[int64]*domain.CaseRecord)}
}

func cloneCase(r *domain.CaseRecord) *domain.CaseRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubCaseRepo) Insert(_ context.Context, record *domain.CaseRecord) error {
	r.nextID++
	record.ID = r.nextID
	r.records[record.ID] = cloneCase(record)
	return nil
}

func (r *stubCaseRepo) FindAll(_ context.Context) ([]*domain.CaseRecord, error) {
	out := make([]*domain.CaseRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneCase(rec))
	}
	return out, nil
}

func (r *stubCaseRepo) FindByID(_ context.Context, id int64) (*domain.CaseRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	return cloneCase(rec), nil
}

func (r *stubCaseRepo) Update(_ context.Context, record *domain.CaseRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return domain.ErrCaseNotFound
	}
	r.records[record.ID] = cloneCase(record)
	return nil
}

func (r *stubCaseRepo) Delete(_ context.Context, id int64) error {
	delete(r.records, id)
	return nil
}

type stubNotifier struct {
	events []ports.NotificationInput
}

func (n *stubNotifier) Enqueue(input ports.NotificationInput) {
	n.events = append(n.events, input)
}

func TestCaseRecordService_Create_NilReferences(t *testing.T) {
	svc := NewCaseRecordService(newStubCaseRepo(), nil, zerolog.Nop())

	record, err := svc.Create(context.Background(), ports.CaseInput{
		CaseTitle:  "Estate of Doe",
		CaseType:   "probate",
		CaseStatus: "open",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if record.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if record.LawyerID != nil || record.ClientID != nil {
		t.Fatalf("expected nil references, got %+v", record)
	}

	fetched, err := svc.GetByID(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if fetched.LawyerID != nil || fetched.ClientID != nil {
		t.Fatalf("references must round-trip as nil, got %+v", fetched)
	}
}

func TestCaseRecordService_Create_Notifies(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewCaseRecordService(newStubCaseRepo(), notifier, zerolog.Nop())

	clientID := int64(7)
	if _, err := svc.Create(context.Background(), ports.CaseInput{CaseTitle: "Doe v. Roe", ClientID: &clientID}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.Type != domain.NotificationTypeCase {
		t.Fatalf("unexpected type: %s", event.Type)
	}
	if event.Priority != domain.PriorityMedium {
		t.Fatalf("unexpected priority: %s", event.Priority)
	}
	if event.ClientID == nil || *event.ClientID != clientID {
		t.Fatalf("unexpected client id: %v", event.ClientID)
	}
}

func TestCaseRecordService_Update(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewCaseRecordService(newStubCaseRepo(), notifier, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CaseInput{
		CaseTitle:  "Doe v. Roe",
		CaseStatus: "open",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	lawyerID := int64(3)
	updated, err := svc.Update(context.Background(), created.ID, ports.CaseInput{
		CaseTitle:   "Doe v. Roe",
		CaseType:    "civil",
		CaseStatus:  "closed",
		HearingDate: "2026-09-15",
		LawyerID:    &lawyerID,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.CaseStatus != "closed" || updated.HearingDate != "2026-09-15" {
		t.Fatalf("update did not apply: %+v", updated)
	}
	if updated.LawyerID == nil || *updated.LawyerID != lawyerID {
		t.Fatalf("lawyer reference not applied: %v", updated.LawyerID)
	}
	if updated.ClientID != nil {
		t.Fatalf("client reference must be overwritten to nil, got %v", updated.ClientID)
	}
	if len(notifier.events) != 2 {
		t.Fatalf("expected create + update notifications, got %d", len(notifier.events))
	}
}

func TestCaseRecordService_Update_NotFound(t *testing.T) {
	svc := NewCaseRecordService(newStubCaseRepo(), nil, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 99, ports.CaseInput{CaseTitle: "X"}); err != domain.ErrCaseNotFound {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestCaseRecordService_Delete_Idempotent(t *testing.T) {
	svc := NewCaseRecordService(newStubCaseRepo(), nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CaseInput{CaseTitle: "X"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}
