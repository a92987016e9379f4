package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
)

// BillingHandler maneja los listados de cartera y la tarifa (protegido).
type BillingHandler struct {
	billsUC    *billing.BillsUseCase
	settingsUC *billing.SettingsUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(billsUC *billing.BillsUseCase, settingsUC *billing.SettingsUseCase) *BillingHandler {
	return &BillingHandler{billsUC: billsUC, settingsUC: settingsUC}
}

// ListBills lista todas las facturas agrupadas por suscriptor.
// GET /api/billing/bills
func (h *BillingHandler) ListBills(c *fiber.Ctx) error {
	groups, err := h.billsUC.ListGrouped()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(groups)
}

// GetBill obtiene una factura por ID.
// GET /api/billing/bills/:id
func (h *BillingHandler) GetBill(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	bill, err := h.billsUC.Get(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(bill)
}

// GetSettings devuelve la tarifa vigente.
// GET /api/billing_settings
func (h *BillingHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsUC.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(settings)
}

// UpdateSettings actualiza la tarifa (solo admin; rige hacia adelante).
// PUT /api/billing_settings
func (h *BillingHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.settingsUC.Update(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fixed_charge y rate_per_unit deben ser >= 0 y al menos uno es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(settings)
}
