package ledger_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
)

// ── Fakes en memoria para los casos de uso del ledger ─────────────────────────

// fakeLedgerRepo almacena los eventos en slices y reproduce el contrato
// del puerto: append-only, orden por timestamp con desempate de inserción.
type fakeLedgerRepo struct {
	deliveries []*entity.DeliveryEvent
	usages     []*entity.UsageEvent
	failAppend bool
}

var errStore = errors.New("store caído")

func (f *fakeLedgerRepo) AppendDelivery(_ context.Context, ev *entity.DeliveryEvent) error {
	if f.failAppend {
		return errStore
	}
	f.deliveries = append(f.deliveries, ev)
	return nil
}

func (f *fakeLedgerRepo) AppendUsage(_ context.Context, ev *entity.UsageEvent) error {
	if f.failAppend {
		return errStore
	}
	f.usages = append(f.usages, ev)
	return nil
}

func (f *fakeLedgerRepo) ListDeliveries(_ context.Context, projectID, materialID string) ([]*entity.DeliveryEvent, error) {
	var out []*entity.DeliveryEvent
	for _, ev := range f.deliveries {
		if ev.ProjectID == projectID && (materialID == "" || ev.MaterialID == materialID) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) ListUsages(_ context.Context, projectID, materialID string) ([]*entity.UsageEvent, error) {
	var out []*entity.UsageEvent
	for _, ev := range f.usages {
		if ev.ProjectID == projectID && (materialID == "" || ev.MaterialID == materialID) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) StockTotals(_ context.Context, projectID string) ([]repository.MaterialStockTotal, error) {
	byMaterial := map[string]*repository.MaterialStockTotal{}
	get := func(id string) *repository.MaterialStockTotal {
		t, ok := byMaterial[id]
		if !ok {
			t = &repository.MaterialStockTotal{
				MaterialID:     id,
				DeliveredTotal: decimal.Zero,
				UsedTotal:      decimal.Zero,
			}
			byMaterial[id] = t
		}
		return t
	}
	for _, ev := range f.deliveries {
		if projectID == "" || ev.ProjectID == projectID {
			t := get(ev.MaterialID)
			t.DeliveredTotal = t.DeliveredTotal.Add(ev.Quantity)
			t.DeliveryCount++
		}
	}
	for _, ev := range f.usages {
		if projectID == "" || ev.ProjectID == projectID {
			t := get(ev.MaterialID)
			t.UsedTotal = t.UsedTotal.Add(ev.Quantity)
			t.UsageCount++
		}
	}
	out := make([]repository.MaterialStockTotal, 0, len(byMaterial))
	for _, t := range byMaterial {
		out = append(out, *t)
	}
	return out, nil
}

// fakeProjectRepo proyectos conocidos por id.
type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjects(ids ...string) *fakeProjectRepo {
	f := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, id := range ids {
		f.projects[id] = &entity.Project{ID: id, Status: "active", CreatedAt: time.Now()}
	}
	return f
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.projects[id]
	return ok, nil
}
