package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordDeliveryRequest body para POST /api/ledger/deliveries.
type RecordDeliveryRequest struct {
	MaterialID        string          `json:"material_id"`
	ProjectID         string          `json:"project_id"`
	QuantityDelivered decimal.Decimal `json:"quantity_delivered"`
	ReceivedBy        string          `json:"received_by"`
	Notes             string          `json:"notes,omitempty"`
}

// RecordUsageRequest body para POST /api/ledger/usages.
type RecordUsageRequest struct {
	MaterialID   string          `json:"material_id"`
	ProjectID    string          `json:"project_id"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
	LoggedBy     string          `json:"logged_by"`
	Notes        string          `json:"notes,omitempty"`
}

// LedgerEventResponse evento creado, devuelto tal como quedó en el ledger.
type LedgerEventResponse struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"material_id"`
	ProjectID  string          `json:"project_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	RecordedBy string          `json:"recorded_by"`
	Notes      string          `json:"notes,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// MaterialStockDTO posición de stock por material para un proyecto.
// ProjectStock es puntero: nil cuando DeliveryCount == 0, para que el
// cliente muestre "sin datos" y no confunda "nunca abastecido" con
// "stock exactamente cero".
type MaterialStockDTO struct {
	MaterialID     string           `json:"material_id"`
	MaterialName   string           `json:"material_name"`
	Unit           string           `json:"unit"`
	DeliveredTotal decimal.Decimal  `json:"delivered_total"`
	UsedTotal      decimal.Decimal  `json:"used_total"`
	ProjectStock   *decimal.Decimal `json:"project_stock,omitempty"`
	DeliveryCount  int              `json:"delivery_count"`
}

// ReorderAlertDTO alerta de reorden derivada; existe solo mientras
// current_quantity < reorder_point.
type ReorderAlertDTO struct {
	MaterialID      string          `json:"material_id"`
	MaterialName    string          `json:"material_name"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	ReorderPoint    decimal.Decimal `json:"reorder_point"`
}
