package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/powerlinea/gridstock-api/internal/application/ledger"
	"github.com/powerlinea/gridstock-api/internal/application/planning"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordEvent      *ledger.RecordEventUseCase
	StockQuery       *ledger.StockQueryUseCase
	Alerts           *ledger.AlertsUseCase
	FirstStocking    *planning.FirstStockingUseCase
	OrderingSchedule *planning.OrderingScheduleUseCase
	ForecastHistory  *planning.ForecastHistoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ledger de materiales (append-only)
	ledgerGroup := api.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.RecordEvent)
	ledgerGroup.Post("/deliveries", ledgerHandler.RecordDelivery)
	ledgerGroup.Post("/usages", ledgerHandler.RecordUsage)

	// Stock reconciliado y alertas
	stockHandler := NewStockHandler(deps.StockQuery, deps.Alerts)
	api.Get("/projects/:id/stock", stockHandler.GetProjectStock)
	api.Get("/alerts", stockHandler.GetAlerts)

	// Planificación de aprovisionamiento
	planningHandler := NewPlanningHandler(deps.FirstStocking, deps.OrderingSchedule, deps.ForecastHistory)
	api.Post("/projects/:id/first-stocking", planningHandler.SuggestFirstStocking)
	api.Get("/projects/:id/first-stocking/report", planningHandler.FirstStockingReport)
	api.Post("/ordering/schedule", planningHandler.ComputeOrderingSchedule)
	api.Post("/projects/:id/forecasts", planningHandler.RecordForecast)
	api.Get("/projects/:id/forecasts", planningHandler.ListForecasts)
}
