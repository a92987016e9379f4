package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Acueducto-api/internal/application/billing"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
)

// ReadingHandler maneja el registro de lecturas y la liquidación (protegido).
type ReadingHandler struct {
	uc *billing.RecordReadingUseCase
}

// NewReadingHandler construye el handler.
func NewReadingHandler(uc *billing.RecordReadingUseCase) *ReadingHandler {
	return &ReadingHandler{uc: uc}
}

// Create registra una lectura y genera la factura del periodo.
// POST /api/readings
//
// Errores:
//   - 400 VALIDATION          → campos faltantes, fecha o valor inválidos.
//   - 400 READING_REGRESSION  → la lectura es menor que la anterior.
//   - 404 NOT_FOUND           → medidor o suscriptor no existe.
//   - 409 DUPLICATE           → ya hay lectura de ese medidor en esa fecha.
func (h *ReadingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReadingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "meter_id, reading_date (YYYY-MM-DD) y reading_value >= 0 son requeridos"})
		}
		if err == domain.ErrReadingRegression {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "READING_REGRESSION", Message: "la lectura actual no puede ser menor que la anterior"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medidor o suscriptor no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una lectura de ese medidor en esa fecha"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
