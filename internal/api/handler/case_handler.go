package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawconnect/case-management/internal/api/metrics"
	"github.com/lawconnect/case-management/internal/core/ports"
)

// CaseHandler handles HTTP requests for case records.
type CaseHandler struct {
	service ports.CaseRecordService
}

func NewCaseHandler(service ports.CaseRecordService) *CaseHandler {
	return &CaseHandler{service: service}
}

func (h *CaseHandler) bindInput(c echo.Context) (ports.CaseInput, error) {
	var req caseRequest
	if err := c.Bind(&req); err != nil {
		return ports.CaseInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CaseInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.CaseInput{
		CaseTitle:   req.CaseTitle,
		CaseType:    req.CaseType,
		CaseStatus:  req.CaseStatus,
		HearingDate: req.HearingDate,
		Description: req.Description,
		LawyerID:    req.LawyerID,
		ClientID:    req.ClientID,
	}, nil
}

// Create handles POST /api/cases.
//
// @Summary      Open a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caseRequest  true  "Case details"
// @Success      201   {object}  domain.CaseRecord
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("case").Inc()
	return c.JSON(http.StatusCreated, record)
}

// List handles GET /api/cases.
//
// @Summary      List all cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CaseRecord
// @Router       /api/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	records, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get handles GET /api/cases/:id.
//
// @Summary      Get a case by id
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Case ID"
// @Success      200  {object}  domain.CaseRecord
// @Failure      404  {object}  errorResponse
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	record, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Update handles PUT /api/cases/:id.
//
// @Summary      Update a case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Case ID"
// @Param        body  body      caseRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.CaseRecord
// @Failure      404   {object}  errorResponse
// @Router       /api/cases/{id} [put]
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	record, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /api/cases/:id.
//
// @Summary      Delete a case
// @Tags         cases
// @Security     BearerAuth
// @Param        id  path  int  true  "Case ID"
// @Success      204
// @Router       /api/cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
