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
)

// StockQueryUseCase deriva posiciones de stock desde el ledger en cada
// consulta. No hay caché: el ledger es la única fuente de verdad y la
// reconciliación se recalcula siempre sobre el snapshot actual.
type StockQueryUseCase struct {
	cat        *catalog.Catalog
	ledgerRepo repository.LedgerRepository
	projects   repository.ProjectRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(
	cat *catalog.Catalog,
	ledgerRepo repository.LedgerRepository,
	projects repository.ProjectRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{cat: cat, ledgerRepo: ledgerRepo, projects: projects}
}

// Reconcile pliega los eventos del par (proyecto, material) en su
// posición actual. Dos llamadas sin escrituras intermedias producen
// resultados idénticos.
func (uc *StockQueryUseCase) Reconcile(ctx context.Context, projectID, materialID string) (stock.Position, error) {
	if _, err := uc.cat.Lookup(materialID); err != nil {
		return stock.Position{}, err
	}
	deliveries, err := uc.ledgerRepo.ListDeliveries(ctx, projectID, materialID)
	if err != nil {
		return stock.Position{}, err
	}
	usages, err := uc.ledgerRepo.ListUsages(ctx, projectID, materialID)
	if err != nil {
		return stock.Position{}, err
	}
	return stock.Reconcile(deliveries, usages), nil
}

// MaterialsWithStock devuelve la posición por material del proyecto, en
// orden de catálogo (id ascendente). ProjectStock va nil cuando no hay
// entregas registradas: "sin datos" nunca se presenta como stock cero.
func (uc *StockQueryUseCase) MaterialsWithStock(ctx context.Context, projectID string) ([]dto.MaterialStockDTO, error) {
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

	totals, err := uc.ledgerRepo.StockTotals(ctx, projectID)
	if err != nil {
		return nil, err
	}
	byMaterial := make(map[string]repository.MaterialStockTotal, len(totals))
	for _, t := range totals {
		byMaterial[t.MaterialID] = t
	}

	out := make([]dto.MaterialStockDTO, 0, uc.cat.Len())
	for _, m := range uc.cat.Materials() {
		t, ok := byMaterial[m.ID]
		if !ok {
			// Material sin eventos: totales en cero explícito.
			t = repository.MaterialStockTotal{
				MaterialID:     m.ID,
				DeliveredTotal: decimal.Zero,
				UsedTotal:      decimal.Zero,
			}
		}
		item := dto.MaterialStockDTO{
			MaterialID:     m.ID,
			MaterialName:   m.Name,
			Unit:           m.Unit,
			DeliveredTotal: t.DeliveredTotal,
			UsedTotal:      t.UsedTotal,
			DeliveryCount:  t.DeliveryCount,
		}
		if t.DeliveryCount > 0 {
			s := t.CurrentStock()
			item.ProjectStock = &s
		}
		out = append(out, item)
	}
	return out, nil
}

// CatalogWideStock agrega el stock actual de un material a través de
// TODOS los proyectos (alerta a nivel sistema).
func (uc *StockQueryUseCase) CatalogWideStock(ctx context.Context, materialID string) (decimal.Decimal, error) {
	if _, err := uc.cat.Lookup(materialID); err != nil {
		return decimal.Zero, err
	}
	totals, err := uc.ledgerRepo.StockTotals(ctx, "")
	if err != nil {
		return decimal.Zero, err
	}
	for _, t := range totals {
		if t.MaterialID == materialID {
			return t.CurrentStock(), nil
		}
	}
	return decimal.Zero, nil
}
