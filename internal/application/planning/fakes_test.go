package planning_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// ── Fakes en memoria para los casos de uso de planificación ───────────────────

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjects(projects ...*entity.Project) *fakeProjectRepo {
	f := &fakeProjectRepo{projects: map[string]*entity.Project{}}
	for _, p := range projects {
		f.projects[p.ID] = p
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

type fakeHistoryRepo struct {
	snaps []*entity.ForecastSnapshot
}

func (f *fakeHistoryRepo) Append(_ context.Context, snap *entity.ForecastSnapshot) error {
	// Más reciente primero, como el adaptador real.
	f.snaps = append([]*entity.ForecastSnapshot{snap}, f.snaps...)
	return nil
}

func (f *fakeHistoryRepo) ListByProject(_ context.Context, projectID string, limit int) ([]*entity.ForecastSnapshot, error) {
	var out []*entity.ForecastSnapshot
	for _, s := range f.snaps {
		if s.ProjectID == projectID {
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeOracle struct {
	predictions map[string]decimal.Decimal
	err         error
	calls       int
}

func (f *fakeOracle) PredictAll(_ context.Context, _ map[string]string) (map[string]decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.predictions, nil
}

type fakeReportGenerator struct {
	lastProjectID string
}

func (f *fakeReportGenerator) GenerateStockingReport(_ context.Context, projectID string, _ []dto.StockingSuggestionDTO) ([]byte, error) {
	f.lastProjectID = projectID
	return []byte("%PDF-1.7 fake"), nil
}

var errOracle = errors.New("oráculo caído")

func activeProject(id string, durationDays int, forecasts map[string]decimal.Decimal) *entity.Project {
	return &entity.Project{
		ID:                  id,
		Status:              "active",
		PlannedDurationDays: durationDays,
		Forecasts:           forecasts,
		CreatedAt:           time.Now(),
	}
}
