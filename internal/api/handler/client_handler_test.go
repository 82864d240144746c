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

type stubClientService struct {
	createFn func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error)
	getAllFn func(ctx context.Context) ([]*domain.Client, error)
	getFn    func(ctx context.Context, id int64) (*domain.Client, error)
	updateFn func(ctx context.Context, id int64, input ports.UpdateClientInput) (*domain.Client, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	return s.createFn(ctx, input)
}

func (s *stubClientService) GetAll(ctx context.Context) ([]*domain.Client, error) {
	return s.getAllFn(ctx)
}

func (s *stubClientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *stubClientService) Update(ctx context.Context, id int64, input ports.UpdateClientInput) (*domain.Client, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubClientService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestClientHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		createFn: func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
			if input.Email != "legal@acme.test" {
				t.Fatalf("unexpected email: %s", input.Email)
			}
			return &domain.Client{ID: 1, Name: input.Name, Email: input.Email}, nil
		},
	}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"name":"Acme Corp","email":"legal@acme.test"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clients", body)
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
	if resp["id"] != float64(1) || resp["name"] != "Acme Corp" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestClientHandler_Create_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		createFn: func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"name":"Acme Corp","email":"dup@acme.test"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clients", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors propagate to the central error handler.
	if err := handler.Create(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestClientHandler_Create_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		createFn: func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewClientHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"name":"Acme Corp"}`))
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

func TestClientHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		getFn: func(ctx context.Context, id int64) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	}
	handler := NewClientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/clients/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Get(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		getFn: func(ctx context.Context, id int64) (*domain.Client, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewClientHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/clients/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClientHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubClientService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateClientInput) (*domain.Client, error) {
			if id != 7 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.Client{ID: id, Name: input.Name, Email: "keep@acme.test"}, nil
		},
	}
	handler := NewClientHandler(stub)

	body := strings.NewReader(`{"name":"New Name","address":"New Address"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/clients/7", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestClientHandler_Delete_NoContent(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubClientService{
		deleteFn: func(ctx context.Context, id int64) error {
			called = true
			return nil
		},
	}
	handler := NewClientHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/clients/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !called {
		t.Fatalf("expected delete to reach the service")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
