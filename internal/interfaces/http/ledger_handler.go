package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/application/ledger"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// LedgerHandler maneja las peticiones HTTP de registro de eventos del
// ledger (entregas y consumos).
type LedgerHandler struct {
	record *ledger.RecordEventUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(record *ledger.RecordEventUseCase) *LedgerHandler {
	return &LedgerHandler{record: record}
}

// RecordDelivery godoc
// @Summary      Registrar entrega de material
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordDeliveryRequest  true  "material_id, project_id, quantity_delivered, received_by, notes"
// @Success      201   {object}  dto.LedgerEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ledger/deliveries [post]
func (h *LedgerHandler) RecordDelivery(c *fiber.Ctx) error {
	var in dto.RecordDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ev, err := h.record.RecordDelivery(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(deliveryResponse(ev))
}

// RecordUsage godoc
// @Summary      Registrar consumo de material
// @Description  Acepta el consumo aunque el stock derivado quede negativo;
//
//	la discrepancia se reporta en la reconciliación.
//
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordUsageRequest  true  "material_id, project_id, quantity_used, logged_by, notes"
// @Success      201   {object}  dto.LedgerEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ledger/usages [post]
func (h *LedgerHandler) RecordUsage(c *fiber.Ctx) error {
	var in dto.RecordUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ev, err := h.record.RecordUsage(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usageResponse(ev))
}

func deliveryResponse(ev *entity.DeliveryEvent) dto.LedgerEventResponse {
	return dto.LedgerEventResponse{
		ID:         ev.ID,
		MaterialID: ev.MaterialID,
		ProjectID:  ev.ProjectID,
		Quantity:   ev.Quantity,
		RecordedBy: ev.ReceivedBy,
		Notes:      ev.Notes,
		Timestamp:  ev.Timestamp,
	}
}

func usageResponse(ev *entity.UsageEvent) dto.LedgerEventResponse {
	return dto.LedgerEventResponse{
		ID:         ev.ID,
		MaterialID: ev.MaterialID,
		ProjectID:  ev.ProjectID,
		Quantity:   ev.Quantity,
		RecordedBy: ev.LoggedBy,
		Notes:      ev.Notes,
		Timestamp:  ev.Timestamp,
	}
}

// mapError traduce errores de dominio a estados HTTP. Los errores van
// envueltos con %w, por eso errors.Is y no comparación directa.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProjectNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
