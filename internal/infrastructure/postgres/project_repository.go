package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo adaptador de solo lectura sobre la tabla projects. El
// ciclo de vida de los proyectos lo administra otro sistema; aquí solo
// se consultan para validar referencias y leer parámetros de
// planificación.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// GetByID busca un proyecto. Devuelve (nil, nil) si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `
		SELECT id, status, planned_duration_days, forecasts, created_at
		FROM projects WHERE id = $1`

	var p entity.Project
	var forecastsRaw []byte
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Status, &p.PlannedDurationDays, &forecastsRaw, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	if len(forecastsRaw) > 0 {
		p.Forecasts = make(map[string]decimal.Decimal)
		if err := json.Unmarshal(forecastsRaw, &p.Forecasts); err != nil {
			return nil, fmt.Errorf("decode forecasts de proyecto %s: %w", id, err)
		}
	}
	return &p, nil
}

// Exists verifica existencia sin traer la fila completa.
func (r *ProjectRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check project %s: %w", id, err)
	}
	return exists, nil
}
