package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
	"github.com/powerlinea/gridstock-api/internal/domain/stock"
	"github.com/powerlinea/gridstock-api/pkg/logger"
)

// AlertsUseCase evalúa alertas de reorden contra el stock reconciliado.
// Las alertas no tienen identidad ni persistencia propia: se recalculan
// en cada consulta y se registran en el log estructurado como rastro de
// la notificación de reabastecimiento.
type AlertsUseCase struct {
	cat        *catalog.Catalog
	ledgerRepo repository.LedgerRepository
	projects   repository.ProjectRepository
	policy     stock.ReorderPolicy
	log        *logger.Logger
}

// NewAlertsUseCase construye el caso de uso. policy en nil usa la
// política por defecto (umbral cero, sin alertas).
func NewAlertsUseCase(
	cat *catalog.Catalog,
	ledgerRepo repository.LedgerRepository,
	projects repository.ProjectRepository,
	policy stock.ReorderPolicy,
	log *logger.Logger,
) *AlertsUseCase {
	if policy == nil {
		policy = stock.DefaultReorderPolicy()
	}
	return &AlertsUseCase{cat: cat, ledgerRepo: ledgerRepo, projects: projects, policy: policy, log: log}
}

// Evaluate calcula las alertas vigentes. projectID vacío evalúa a nivel
// sistema (stock agregado de todos los proyectos); con projectID evalúa
// solo ese proyecto. Material sin entregas evalúa como cantidad cero,
// así lo nunca abastecido también alerta. Resultado en orden de catálogo
// (id ascendente), determinista.
func (uc *AlertsUseCase) Evaluate(ctx context.Context, projectID string) ([]dto.ReorderAlertDTO, error) {
	if projectID != "" {
		ok, err := uc.projects.Exists(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("proyecto %q: %w", projectID, domain.ErrProjectNotFound)
		}
	}

	totals, err := uc.ledgerRepo.StockTotals(ctx, projectID)
	if err != nil {
		return nil, err
	}
	current := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		current[t.MaterialID] = t.CurrentStock()
	}

	alerts := stock.EvaluateAlerts(uc.cat.Materials(), current, uc.policy)

	out := make([]dto.ReorderAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.ReorderAlertDTO{
			MaterialID:      a.MaterialID,
			MaterialName:    a.MaterialName,
			Unit:            a.Unit,
			CurrentQuantity: a.CurrentQuantity,
			ReorderPoint:    a.ReorderPoint,
		})
		if uc.log != nil {
			uc.log.Warn().
				Str("material", a.MaterialID).
				Str("project", projectID).
				Str("current_quantity", a.CurrentQuantity.String()).
				Str("reorder_point", a.ReorderPoint.String()).
				Msg("alerta de reabastecimiento")
		}
	}
	return out, nil
}
