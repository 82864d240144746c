package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

type stubCaseService struct {
	createFn func(ctx context.Context, input ports.CaseInput) (*domain.CaseRecord, error)
	getAllFn func(ctx context.Context) ([]*domain.CaseRecord, error)
	getFn    func(ctx context.Context, id int64) (*domain.CaseRecord, error)
	updateFn func(ctx context.Context, id int64, input ports.CaseInput) (*domain.CaseRecord, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCaseService) Create(ctx context.Context, input ports.CaseInput) (*domain.CaseRecord, error) {
	return s.createFn(ctx, input)
}

func (s *stubCaseService) GetAll(ctx context.Context) ([]*domain.CaseRecord, error) {
	return s.getAllFn(ctx)
}

func (s *stubCaseService) GetByID(ctx context.Context, id int64) (*domain.CaseRecord, error) {
	return s.getFn(ctx, id)
}

func (s *stubCaseService) Update(ctx context.Context, id int64, input ports.CaseInput) (*domain.CaseRecord, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCaseService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestCaseHandler_Create_NullReferences(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		createFn: func(ctx context.Context, input ports.CaseInput) (*domain.CaseRecord, error) {
			if input.LawyerID != nil || input.ClientID != nil {
				t.Fatalf("expected nil references, got %+v", input)
			}
			return &domain.CaseRecord{ID: 1, CaseTitle: input.CaseTitle}, nil
		},
	}
	handler := NewCaseHandler(stub)

	body := strings.NewReader(`{"case_title":"Estate of Doe","lawyer_id":null,"client_id":null}`)
	req := httptest.NewRequest(http.MethodPost, "/api/cases", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["lawyer_id"] != nil || resp["client_id"] != nil {
		t.Fatalf("null references must serialize as null: %+v", resp)
	}
}

func TestCaseHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		createFn: func(ctx context.Context, input ports.CaseInput) (*domain.CaseRecord, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", strings.NewReader(`{"case_type":"civil"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCaseHandler_Update_PassesReferences(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		updateFn: func(ctx context.Context, id int64, input ports.CaseInput) (*domain.CaseRecord, error) {
			if input.LawyerID == nil || *input.LawyerID != 3 {
				t.Fatalf("lawyer reference not bound: %v", input.LawyerID)
			}
			return &domain.CaseRecord{ID: id, CaseTitle: input.CaseTitle, LawyerID: input.LawyerID}, nil
		},
	}
	handler := NewCaseHandler(stub)

	body := strings.NewReader(`{"case_title":"Doe v. Roe","case_status":"closed","lawyer_id":3}`)
	req := httptest.NewRequest(http.MethodPut, "/api/cases/9", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCaseHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		getFn: func(ctx context.Context, id int64) (*domain.CaseRecord, error) {
			return nil, domain.ErrCaseNotFound
		},
	}
	handler := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/cases/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Get(c); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestCaseHandler_Delete_NoContent(t *testing.T) {
	e := newTestEcho()
	stub := &stubCaseService{
		deleteFn: func(ctx context.Context, id int64) error { return nil },
	}
	handler := NewCaseHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/cases/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
