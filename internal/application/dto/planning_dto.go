package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FirstStockingRequest body para POST /api/projects/:id/first-stocking.
// Forecasts permite pasar el mapa de pronóstico directamente; si viene
// vacío se usan los pronósticos guardados del proyecto (o el oráculo).
type FirstStockingRequest struct {
	PlannedDurationDays int                        `json:"planned_duration_days,omitempty"`
	Forecasts           map[string]decimal.Decimal `json:"forecasts,omitempty"`
}

// StockingSuggestionDTO sugerencia de primer abastecimiento por material.
type StockingSuggestionDTO struct {
	MaterialName      string          `json:"material_name"`
	Unit              string          `json:"unit"`
	SuggestedQuantity decimal.Decimal `json:"suggested_quantity"`
}

// OrderingScheduleRequest soporta las dos formas del cálculo de
// calendario: una fecha común para varios materiales, o fechas por
// material. LeadTimeOverrides pisa el lead time del catálogo.
type OrderingScheduleRequest struct {
	NeedByDate        string            `json:"need_by_date,omitempty"` // YYYY-MM-DD
	Materials         []string          `json:"materials,omitempty"`
	NeedByDates       map[string]string `json:"need_by_dates,omitempty"`
	LeadTimeOverrides map[string]int    `json:"lead_time_overrides,omitempty"`
}

// OrderingScheduleItemDTO línea del calendario de pedidos.
type OrderingScheduleItemDTO struct {
	Material     string `json:"material"`
	NeedByDate   string `json:"need_by_date"`
	LeadTimeDays int    `json:"lead_time_days"`
	OrderDate    string `json:"order_date"`
}

// ForecastSnapshotDTO foto histórica de pronóstico de un proyecto.
type ForecastSnapshotDTO struct {
	ID           string                     `json:"id"`
	ProjectID    string                     `json:"project_id"`
	ForecastDate time.Time                  `json:"forecast_date"`
	Forecasts    map[string]decimal.Decimal `json:"forecasts"`
}

// RecordForecastRequest body para POST /api/projects/:id/forecasts.
// Si Forecasts viene vacío, el use case consulta el oráculo de predicción
// con las características del proyecto (budget, location, towerType, etc).
type RecordForecastRequest struct {
	Forecasts map[string]decimal.Decimal `json:"forecasts,omitempty"`
	Features  map[string]string          `json:"features,omitempty"`
}
