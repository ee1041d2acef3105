package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/powerlinea/gridstock-api/internal/application/ledger"
)

// StockHandler maneja las consultas de stock reconciliado y las alertas
// de reorden.
type StockHandler struct {
	stock  *ledger.StockQueryUseCase
	alerts *ledger.AlertsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *ledger.StockQueryUseCase, alerts *ledger.AlertsUseCase) *StockHandler {
	return &StockHandler{stock: stock, alerts: alerts}
}

// GetProjectStock godoc
// @Summary      Stock reconciliado por material de un proyecto
// @Description  Deriva la posición de cada material del catálogo plegando
//
//	el ledger del proyecto. project_stock va null para materiales
//	sin entregas registradas (sin datos, no cero).
//
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {array}   dto.MaterialStockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/stock [get]
func (h *StockHandler) GetProjectStock(c *fiber.Ctx) error {
	projectID := c.Params("id")
	list, err := h.stock.MaterialsWithStock(c.Context(), projectID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"project_id": projectID,
		"materials":  list,
	})
}

// GetAlerts godoc
// @Summary      Alertas de reorden vigentes
// @Description  Recalcula las alertas contra el stock actual. Sin
//
//	project_id evalúa el stock agregado de todos los proyectos.
//
// @Tags         stock
// @Produce      json
// @Param        project_id  query  string  false  "Evaluar solo este proyecto"
// @Success      200  {array}   dto.ReorderAlertDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *StockHandler) GetAlerts(c *fiber.Ctx) error {
	projectID := c.Query("project_id")
	alerts, err := h.alerts.Evaluate(c.Context(), projectID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(alerts),
		"alerts": alerts,
	})
}
