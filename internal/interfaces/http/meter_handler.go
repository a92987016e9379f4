package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/application/usecase"
	"github.com/jhoicas/Acueducto-api/internal/domain"
)

// MeterHandler maneja las peticiones HTTP de medidores (protegido).
type MeterHandler struct {
	uc *usecase.MeterUseCase
}

// NewMeterHandler construye el handler.
func NewMeterHandler(uc *usecase.MeterUseCase) *MeterHandler {
	return &MeterHandler{uc: uc}
}

// Create registra un medidor para un suscriptor existente.
// POST /api/meters
func (h *MeterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMeterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	meter, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "meter_no y customer_id son requeridos; installed_at en formato YYYY-MM-DD"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "suscriptor no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el número de medidor ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(meter)
}

// List lista todos los medidores.
// GET /api/meters
func (h *MeterHandler) List(c *fiber.Ctx) error {
	meters, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(meters)
}

// Search busca medidores por número de serie para el autocompletado (?q=).
// GET /api/meters/search
func (h *MeterHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	meters, err := h.uc.Search(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(meters)
}
