package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

var _ repository.ForecastHistoryRepository = (*ForecastHistoryRepo)(nil)

// ForecastHistoryRepo historial append-only de pronósticos por proyecto.
// Los pronósticos van como JSONB: un snapshot es un mapa material ->
// cantidad y la lista de materiales puede crecer sin migración.
type ForecastHistoryRepo struct {
	q Querier
}

// NewForecastHistoryRepository construye el adaptador.
func NewForecastHistoryRepository(q Querier) *ForecastHistoryRepo {
	return &ForecastHistoryRepo{q: q}
}

// Append persiste un snapshot de pronóstico.
func (r *ForecastHistoryRepo) Append(ctx context.Context, snap *entity.ForecastSnapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	forecastsRaw, err := json.Marshal(snap.Forecasts)
	if err != nil {
		return fmt.Errorf("encode forecasts: %w", err)
	}
	query := `
		INSERT INTO forecast_history (id, project_id, forecast_date, forecasts, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query,
		snap.ID, snap.ProjectID, snap.ForecastDate, forecastsRaw, snap.CreatedAt,
	); err != nil {
		return fmt.Errorf("append forecast snapshot: %w", err)
	}
	return nil
}

// ListByProject devuelve snapshots del más reciente al más antiguo.
// limit <= 0 significa sin límite.
func (r *ForecastHistoryRepo) ListByProject(ctx context.Context, projectID string, limit int) ([]*entity.ForecastSnapshot, error) {
	query := `
		SELECT id, project_id, forecast_date, forecasts, created_at
		FROM forecast_history
		WHERE project_id = $1
		ORDER BY forecast_date DESC, created_at DESC`
	args := []any{projectID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list forecast history: %w", err)
	}
	defer rows.Close()

	var snaps []*entity.ForecastSnapshot
	for rows.Next() {
		var snap entity.ForecastSnapshot
		var forecastsRaw []byte
		if err := rows.Scan(&snap.ID, &snap.ProjectID, &snap.ForecastDate, &forecastsRaw, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan forecast snapshot: %w", err)
		}
		snap.Forecasts = make(map[string]decimal.Decimal)
		if len(forecastsRaw) > 0 {
			if err := json.Unmarshal(forecastsRaw, &snap.Forecasts); err != nil {
				return nil, fmt.Errorf("decode forecasts: %w", err)
			}
		}
		snaps = append(snaps, &snap)
	}
	return snaps, rows.Err()
}
