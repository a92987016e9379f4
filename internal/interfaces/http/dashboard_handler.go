package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Acueducto-api/internal/application/analytics"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
)

// DashboardHandler tablero de recaudo (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve los totales generales de recaudo.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Monthly devuelve la gráfica anual pagado vs pendiente (?year=, año actual
// por defecto).
// GET /api/dashboard/monthly
func (h *DashboardHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	points, err := h.uc.GetMonthlyChart(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(points)
}
