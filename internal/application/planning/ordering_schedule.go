package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/planning"
)

const dateLayout = "2006-01-02"

// OrderingScheduleUseCase calcula la fecha óptima de pedido por material:
// order_date = need_by_date - lead_time. Acepta una fecha común para
// varios materiales o fechas por material, con overrides de lead time.
type OrderingScheduleUseCase struct {
	cat *catalog.Catalog
}

// NewOrderingScheduleUseCase construye el caso de uso.
func NewOrderingScheduleUseCase(cat *catalog.Catalog) *OrderingScheduleUseCase {
	return &OrderingScheduleUseCase{cat: cat}
}

// Compute resuelve el request a un calendario ordenado por fecha de
// pedido ascendente. Sin need_by_date ni need_by_dates es ErrInvalidInput.
func (uc *OrderingScheduleUseCase) Compute(_ context.Context, in dto.OrderingScheduleRequest) ([]dto.OrderingScheduleItemDTO, error) {
	needBy := make(map[string]time.Time)

	switch {
	case in.NeedByDate != "":
		date, err := time.Parse(dateLayout, in.NeedByDate)
		if err != nil {
			return nil, fmt.Errorf("need_by_date debe ser YYYY-MM-DD: %w", domain.ErrInvalidInput)
		}
		materials := in.Materials
		if len(materials) == 0 {
			// Sin lista explícita: todos los materiales del catálogo.
			for _, m := range uc.cat.Materials() {
				materials = append(materials, m.ID)
			}
		}
		for _, m := range materials {
			needBy[m] = date
		}

	case len(in.NeedByDates) > 0:
		for m, s := range in.NeedByDates {
			date, err := time.Parse(dateLayout, s)
			if err != nil {
				return nil, fmt.Errorf("fecha inválida para %s, debe ser YYYY-MM-DD: %w", m, domain.ErrInvalidInput)
			}
			needBy[m] = date
		}

	default:
		return nil, fmt.Errorf("se requiere need_by_date o need_by_dates: %w", domain.ErrInvalidInput)
	}

	items := planning.OrderingSchedule(needBy, uc.cat.LeadTimeDays, in.LeadTimeOverrides)

	out := make([]dto.OrderingScheduleItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderingScheduleItemDTO{
			Material:     it.Material,
			NeedByDate:   it.NeedByDate.Format(dateLayout),
			LeadTimeDays: it.LeadTimeDays,
			OrderDate:    it.OrderDate.Format(dateLayout),
		})
	}
	return out, nil
}
