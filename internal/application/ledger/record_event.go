// Package ledger contiene los casos de uso del ledger de materiales:
// registro de entregas/consumos, consulta de stock reconciliado y
// evaluación de alertas de reorden.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

// RecordEventUseCase registra eventos de entrega y consumo en el ledger.
// Toda la validación ocurre ANTES del append: un evento malformado jamás
// toca el almacenamiento. El append de un evento es atómico (un INSERT);
// no hay exclusión mutua entre escritores porque la reconciliación es un
// fold conmutativo sobre el conjunto de eventos.
type RecordEventUseCase struct {
	cat        *catalog.Catalog
	ledgerRepo repository.LedgerRepository
	projects   repository.ProjectRepository
}

// NewRecordEventUseCase construye el caso de uso.
func NewRecordEventUseCase(
	cat *catalog.Catalog,
	ledgerRepo repository.LedgerRepository,
	projects repository.ProjectRepository,
) *RecordEventUseCase {
	return &RecordEventUseCase{cat: cat, ledgerRepo: ledgerRepo, projects: projects}
}

// validate chequea cantidad positiva, material conocido y proyecto
// existente. Cualquier incumplimiento es domain.ErrInvalidInput.
func (uc *RecordEventUseCase) validate(ctx context.Context, materialID, projectID string, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if _, err := uc.cat.Lookup(materialID); err != nil {
		return fmt.Errorf("material %q desconocido: %w", materialID, domain.ErrInvalidInput)
	}
	if projectID == "" {
		return fmt.Errorf("project_id requerido: %w", domain.ErrInvalidInput)
	}
	ok, err := uc.projects.Exists(ctx, projectID)
	if err != nil {
		// Fallo de lectura del store: se propaga, el caller decide reintentar.
		return fmt.Errorf("verificar proyecto: %w", err)
	}
	if !ok {
		return fmt.Errorf("proyecto %q inexistente: %w", projectID, domain.ErrInvalidInput)
	}
	return nil
}

// RecordDelivery valida y agrega una entrega al ledger.
func (uc *RecordEventUseCase) RecordDelivery(ctx context.Context, in dto.RecordDeliveryRequest) (*entity.DeliveryEvent, error) {
	if err := uc.validate(ctx, in.MaterialID, in.ProjectID, in.QuantityDelivered); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ev := &entity.DeliveryEvent{
		ID:         uuid.New().String(),
		MaterialID: in.MaterialID,
		ProjectID:  in.ProjectID,
		Quantity:   in.QuantityDelivered,
		ReceivedBy: in.ReceivedBy,
		Notes:      in.Notes,
		Timestamp:  now,
		CreatedAt:  now,
	}
	if err := uc.ledgerRepo.AppendDelivery(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// RecordUsage valida y agrega un consumo al ledger. Se acepta aunque el
// stock derivado quede negativo: esa política se reporta como dato en la
// reconciliación, no se bloquea aquí.
func (uc *RecordEventUseCase) RecordUsage(ctx context.Context, in dto.RecordUsageRequest) (*entity.UsageEvent, error) {
	if err := uc.validate(ctx, in.MaterialID, in.ProjectID, in.QuantityUsed); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ev := &entity.UsageEvent{
		ID:         uuid.New().String(),
		MaterialID: in.MaterialID,
		ProjectID:  in.ProjectID,
		Quantity:   in.QuantityUsed,
		LoggedBy:   in.LoggedBy,
		Notes:      in.Notes,
		Timestamp:  now,
		CreatedAt:  now,
	}
	if err := uc.ledgerRepo.AppendUsage(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}
