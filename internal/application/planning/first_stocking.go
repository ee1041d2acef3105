// Package planning contiene los casos de uso de aprovisionamiento:
// sugerencias de primer abastecimiento, calendario de pedidos y el
// historial de pronósticos de demanda.
package planning

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/planning"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

// FirstStockingUseCase traduce el pronóstico de demanda total de un
// proyecto en cantidades iniciales de compra por material, dimensionadas
// para cubrir el lead time con colchón del 10%, antes de que exista
// señal de consumo propia en el ledger.
type FirstStockingUseCase struct {
	cat      *catalog.Catalog
	projects repository.ProjectRepository
	history  repository.ForecastHistoryRepository
	report   StockingReportGenerator
}

// NewFirstStockingUseCase construye el caso de uso. report puede ser nil
// si no se expone la salida PDF.
func NewFirstStockingUseCase(
	cat *catalog.Catalog,
	projects repository.ProjectRepository,
	history repository.ForecastHistoryRepository,
	report StockingReportGenerator,
) *FirstStockingUseCase {
	return &FirstStockingUseCase{cat: cat, projects: projects, history: history, report: report}
}

// resolveForecasts decide el mapa de pronóstico a usar, en orden:
// el del request → el guardado en el proyecto → la foto más reciente del
// historial. Mapa vacío produce sugerencias en cero (sin dato ≠ error).
func (uc *FirstStockingUseCase) resolveForecasts(
	ctx context.Context,
	projectID string,
	fromRequest map[string]decimal.Decimal,
) (map[string]decimal.Decimal, error) {
	if len(fromRequest) > 0 {
		return fromRequest, nil
	}
	p, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("proyecto %q: %w", projectID, domain.ErrProjectNotFound)
	}
	if len(p.Forecasts) > 0 {
		return p.Forecasts, nil
	}
	if uc.history != nil {
		snaps, err := uc.history.ListByProject(ctx, projectID, 1)
		if err != nil {
			return nil, err
		}
		if len(snaps) > 0 {
			return snaps[0].Forecasts, nil
		}
	}
	return map[string]decimal.Decimal{}, nil
}

// Suggest calcula la sugerencia de primer abastecimiento por material del
// catálogo, en orden estable. Duración: request → proyecto → 1095 días.
func (uc *FirstStockingUseCase) Suggest(ctx context.Context, projectID string, in dto.FirstStockingRequest) ([]dto.StockingSuggestionDTO, error) {
	if projectID == "" {
		return nil, fmt.Errorf("project_id requerido: %w", domain.ErrInvalidInput)
	}
	p, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("proyecto %q: %w", projectID, domain.ErrProjectNotFound)
	}

	duration := in.PlannedDurationDays
	if duration <= 0 {
		duration = p.Duration()
	}

	forecasts, err := uc.resolveForecasts(ctx, projectID, in.Forecasts)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockingSuggestionDTO, 0, uc.cat.Len())
	for _, m := range uc.cat.Materials() {
		total := forecasts[m.Name]
		if total.IsZero() {
			// Los pronósticos pueden venir por nombre en minúsculas (clave
			// histórica del oráculo); segunda oportunidad por id.
			total = forecasts[m.ID]
		}
		out = append(out, dto.StockingSuggestionDTO{
			MaterialName:      m.Name,
			Unit:              m.Unit,
			SuggestedQuantity: planning.SuggestFirstStock(total, duration, m.LeadTimeDays),
		})
	}
	return out, nil
}

// SuggestPDF genera el informe PDF de la lista de primer abastecimiento.
func (uc *FirstStockingUseCase) SuggestPDF(ctx context.Context, projectID string, in dto.FirstStockingRequest) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("generador de informe no configurado: %w", domain.ErrInvalidInput)
	}
	suggestions, err := uc.Suggest(ctx, projectID, in)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockingReport(ctx, projectID, suggestions)
}
