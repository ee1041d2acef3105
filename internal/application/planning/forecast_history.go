package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/application/ports"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

// ForecastHistoryUseCase registra y consulta fotos históricas del
// pronóstico de demanda por proyecto. Cuando el request no trae el mapa
// de pronóstico, se consulta el oráculo de predicción con las
// características del proyecto.
type ForecastHistoryUseCase struct {
	projects repository.ProjectRepository
	history  repository.ForecastHistoryRepository
	oracle   ports.ForecastOracle
}

// NewForecastHistoryUseCase construye el caso de uso. oracle puede ser
// nil: en ese caso el request debe traer el pronóstico explícito.
func NewForecastHistoryUseCase(
	projects repository.ProjectRepository,
	history repository.ForecastHistoryRepository,
	oracle ports.ForecastOracle,
) *ForecastHistoryUseCase {
	return &ForecastHistoryUseCase{projects: projects, history: history, oracle: oracle}
}

// Record agrega una foto de pronóstico al historial del proyecto.
func (uc *ForecastHistoryUseCase) Record(ctx context.Context, projectID string, in dto.RecordForecastRequest) (*entity.ForecastSnapshot, error) {
	ok, err := uc.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("proyecto %q: %w", projectID, domain.ErrProjectNotFound)
	}

	forecasts := in.Forecasts
	if len(forecasts) == 0 {
		if uc.oracle == nil {
			return nil, fmt.Errorf("sin pronóstico y sin oráculo configurado: %w", domain.ErrInvalidInput)
		}
		if len(in.Features) == 0 {
			return nil, fmt.Errorf("features del proyecto requeridas para consultar el oráculo: %w", domain.ErrInvalidInput)
		}
		forecasts, err = uc.oracle.PredictAll(ctx, in.Features)
		if err != nil {
			return nil, fmt.Errorf("oráculo de predicción: %w", err)
		}
	}

	now := time.Now().UTC()
	snap := &entity.ForecastSnapshot{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		ForecastDate: now,
		Forecasts:    forecasts,
		CreatedAt:    now,
	}
	if err := uc.history.Append(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// List devuelve el historial del proyecto, más reciente primero.
func (uc *ForecastHistoryUseCase) List(ctx context.Context, projectID string, limit int) ([]dto.ForecastSnapshotDTO, error) {
	ok, err := uc.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("proyecto %q: %w", projectID, domain.ErrProjectNotFound)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	snaps, err := uc.history.ListByProject(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ForecastSnapshotDTO, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, dto.ForecastSnapshotDTO{
			ID:           s.ID,
			ProjectID:    s.ProjectID,
			ForecastDate: s.ForecastDate,
			Forecasts:    s.Forecasts,
		})
	}
	return out, nil
}
