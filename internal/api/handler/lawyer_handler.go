package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lawconnect/case-management/internal/core/ports"
)

// LawyerHandler exposes the read-only lawyer listing.
type LawyerHandler struct {
	repo ports.LawyerRepository
}

func NewLawyerHandler(repo ports.LawyerRepository) *LawyerHandler {
	return &LawyerHandler{repo: repo}
}

// List handles GET /api/lawyers.
//
// @Summary      List all lawyers
// @Tags         lawyers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Lawyer
// @Router       /api/lawyers [get]
func (h *LawyerHandler) List(c echo.Context) error {
	lawyers, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lawyers)
}
