package repository

import (
	"context"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// ForecastHistoryRepository persiste las fotos históricas de pronóstico
// por proyecto. Append-only, igual que el ledger.
type ForecastHistoryRepository interface {
	Append(ctx context.Context, snap *entity.ForecastSnapshot) error
	// ListByProject devuelve el historial del proyecto, más reciente primero.
	ListByProject(ctx context.Context, projectID string, limit int) ([]*entity.ForecastSnapshot, error)
}
