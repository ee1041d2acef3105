package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/application/planning"
)

// PlanningHandler maneja las peticiones de aprovisionamiento: primer
// abastecimiento, calendario de pedidos e historial de pronósticos.
type PlanningHandler struct {
	firstStocking *planning.FirstStockingUseCase
	ordering      *planning.OrderingScheduleUseCase
	forecasts     *planning.ForecastHistoryUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(
	firstStocking *planning.FirstStockingUseCase,
	ordering *planning.OrderingScheduleUseCase,
	forecasts *planning.ForecastHistoryUseCase,
) *PlanningHandler {
	return &PlanningHandler{firstStocking: firstStocking, ordering: ordering, forecasts: forecasts}
}

// SuggestFirstStocking godoc
// @Summary      Sugerencia de primer abastecimiento
// @Description  Cantidad inicial de compra por material: consumo diario
//
//	promedio del pronóstico durante el lead time, +10% de margen,
//	redondeado hacia arriba.
//
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.FirstStockingRequest  false  "planned_duration_days y forecasts opcionales"
// @Success      200   {array}   dto.StockingSuggestionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/first-stocking [post]
func (h *PlanningHandler) SuggestFirstStocking(c *fiber.Ctx) error {
	projectID := c.Params("id")
	var in dto.FirstStockingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	suggestions, err := h.firstStocking.Suggest(c.Context(), projectID, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"project_id":  projectID,
		"suggestions": suggestions,
	})
}

// FirstStockingReport godoc
// @Summary      Informe PDF de primer abastecimiento
// @Tags         planning
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/first-stocking/report [get]
func (h *PlanningHandler) FirstStockingReport(c *fiber.Ctx) error {
	projectID := c.Params("id")
	pdfBytes, err := h.firstStocking.SuggestPDF(c.Context(), projectID, dto.FirstStockingRequest{})
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="primer-abastecimiento-`+projectID+`.pdf"`)
	return c.Send(pdfBytes)
}

// ComputeOrderingSchedule godoc
// @Summary      Calendario de pedidos
// @Description  order_date = need_by_date - lead_time por material,
//
//	ordenado por fecha de pedido ascendente.
//
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderingScheduleRequest  true  "need_by_date común o need_by_dates por material"
// @Success      200   {array}   dto.OrderingScheduleItemDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ordering/schedule [post]
func (h *PlanningHandler) ComputeOrderingSchedule(c *fiber.Ctx) error {
	var in dto.OrderingScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.ordering.Compute(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":    len(items),
		"schedule": items,
	})
}

// RecordForecast godoc
// @Summary      Registrar foto de pronóstico
// @Description  Agrega un snapshot al historial del proyecto. Sin
//
//	forecasts explícitos consulta el oráculo de predicción con las
//	features del proyecto.
//
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.RecordForecastRequest  true  "forecasts o features"
// @Success      201   {object}  dto.ForecastSnapshotDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/forecasts [post]
func (h *PlanningHandler) RecordForecast(c *fiber.Ctx) error {
	projectID := c.Params("id")
	var in dto.RecordForecastRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	snap, err := h.forecasts.Record(c.Context(), projectID, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ForecastSnapshotDTO{
		ID:           snap.ID,
		ProjectID:    snap.ProjectID,
		ForecastDate: snap.ForecastDate,
		Forecasts:    snap.Forecasts,
	})
}

// ListForecasts godoc
// @Summary      Historial de pronósticos de un proyecto
// @Tags         planning
// @Produce      json
// @Param        id     path   string  true   "ID del proyecto"
// @Param        limit  query  int     false  "Máximo de snapshots (default 50, tope 100)"
// @Success      200  {array}   dto.ForecastSnapshotDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/forecasts [get]
func (h *PlanningHandler) ListForecasts(c *fiber.Ctx) error {
	projectID := c.Params("id")
	limit := c.QueryInt("limit")
	snaps, err := h.forecasts.List(c.Context(), projectID, limit)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":     len(snaps),
		"forecasts": snaps,
	})
}
