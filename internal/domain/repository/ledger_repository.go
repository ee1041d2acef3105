package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// MaterialStockTotal es el agregado por material que alimenta la
// evaluación de alertas: sumas exactas y conteo de entregas tal como las
// produciría el fold del reconciliador sobre el mismo snapshot.
type MaterialStockTotal struct {
	MaterialID     string
	DeliveredTotal decimal.Decimal
	UsedTotal      decimal.Decimal
	DeliveryCount  int
	UsageCount     int
}

// CurrentStock cantidad actual derivada (entregado - consumido).
func (t MaterialStockTotal) CurrentStock() decimal.Decimal {
	return t.DeliveredTotal.Sub(t.UsedTotal)
}

// LedgerRepository define el puerto de persistencia del ledger
// append-only. Los eventos jamás se actualizan ni se borran; un fallo de
// escritura se propaga envuelto al llamador (reintentable), nunca se
// convierte en éxito silencioso.
type LedgerRepository interface {
	AppendDelivery(ctx context.Context, ev *entity.DeliveryEvent) error
	AppendUsage(ctx context.Context, ev *entity.UsageEvent) error

	// ListDeliveries / ListUsages devuelven los eventos del proyecto
	// ordenados por timestamp ascendente, desempate por orden de
	// inserción. materialID vacío = todos los materiales.
	ListDeliveries(ctx context.Context, projectID, materialID string) ([]*entity.DeliveryEvent, error)
	ListUsages(ctx context.Context, projectID, materialID string) ([]*entity.UsageEvent, error)

	// StockTotals agrega entregado/consumido por material. projectID
	// vacío = alcance sistema (todos los proyectos), para alertas globales.
	StockTotals(ctx context.Context, projectID string) ([]MaterialStockTotal, error)
}
