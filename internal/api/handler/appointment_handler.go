package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawconnect/case-management/internal/api/metrics"
	"github.com/lawconnect/case-management/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointments.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) bindInput(c echo.Context) (ports.AppointmentInput, error) {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return ports.AppointmentInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.AppointmentInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.AppointmentInput{
		DateTime:    req.DateTime,
		Description: req.Description,
		Status:      req.Status,
		LawyerID:    req.LawyerID,
		ClientID:    req.ClientID,
	}, nil
}

// Create handles POST /api/appointments.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	appointment, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("appointment").Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// List handles GET /api/appointments.
//
// @Summary      List all appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Appointment
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get handles GET /api/appointments/:id.
//
// @Summary      Get an appointment by id
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Appointment ID"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	appointment, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Update handles PUT /api/appointments/:id.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Appointment ID"
// @Param        body  body      appointmentRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	appointment, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/:id.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  int  true  "Appointment ID"
// @Success      204
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
