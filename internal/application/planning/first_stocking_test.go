package planning_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	"github.com/powerlinea/gridstock-api/internal/application/planning"
	"github.com/powerlinea/gridstock-api/internal/domain"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

func newFirstStockingUC(projects *fakeProjectRepo, history *fakeHistoryRepo, report *fakeReportGenerator) *planning.FirstStockingUseCase {
	var gen planning.StockingReportGenerator
	if report != nil {
		gen = report
	}
	return planning.NewFirstStockingUseCase(catalog.Default(), projects, history, gen)
}

// TestSuggest_VectorSteel el vector canónico de extremo a extremo: con
// pronóstico de 1000 tons y duración por defecto (1095 días), Steel
// (lead 75) sugiere exactamente 76.
func TestSuggest_VectorSteel(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 0, map[string]decimal.Decimal{
		"Steel": decimal.NewFromInt(1000),
	}))
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, nil)

	suggestions, err := uc.Suggest(context.Background(), "p1", dto.FirstStockingRequest{})

	require.NoError(t, err)
	require.Len(t, suggestions, catalog.Default().Len())
	for _, s := range suggestions {
		if s.MaterialName == "Steel" {
			assert.True(t, s.SuggestedQuantity.Equal(decimal.NewFromInt(76)),
				"Steel debe sugerir 76, got %s", s.SuggestedQuantity)
			assert.Equal(t, "tons", s.Unit)
		} else {
			assert.True(t, s.SuggestedQuantity.IsZero(),
				"%s sin pronóstico debe sugerir cero", s.MaterialName)
		}
	}
}

func TestSuggest_DuracionDelRequestPisaProyecto(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 1095, map[string]decimal.Decimal{
		"Steel": decimal.NewFromInt(1000),
	}))
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, nil)

	// Con duración 500: 1000/500 * 75 * 1.10 = 165 exacto.
	suggestions, err := uc.Suggest(context.Background(), "p1", dto.FirstStockingRequest{
		PlannedDurationDays: 500,
	})

	require.NoError(t, err)
	for _, s := range suggestions {
		if s.MaterialName == "Steel" {
			assert.True(t, s.SuggestedQuantity.Equal(decimal.NewFromInt(165)),
				"got %s", s.SuggestedQuantity)
		}
	}
}

// TestSuggest_PronosticoDelRequestPisaProyecto el mapa del request tiene
// prioridad sobre el guardado en el proyecto.
func TestSuggest_PronosticoDelRequestPisaProyecto(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 1095, map[string]decimal.Decimal{
		"Steel": decimal.NewFromInt(99999),
	}))
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, nil)

	suggestions, err := uc.Suggest(context.Background(), "p1", dto.FirstStockingRequest{
		Forecasts: map[string]decimal.Decimal{"Steel": decimal.NewFromInt(1000)},
	})

	require.NoError(t, err)
	for _, s := range suggestions {
		if s.MaterialName == "Steel" {
			assert.True(t, s.SuggestedQuantity.Equal(decimal.NewFromInt(76)))
		}
	}
}

// TestSuggest_CaeAlHistorial sin pronóstico en request ni proyecto se usa
// la foto más reciente del historial.
func TestSuggest_CaeAlHistorial(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 0, nil))
	history := &fakeHistoryRepo{}
	_ = history.Append(context.Background(), &entity.ForecastSnapshot{
		ID: "old", ProjectID: "p1", ForecastDate: time.Now().Add(-48 * time.Hour),
		Forecasts: map[string]decimal.Decimal{"Steel": decimal.NewFromInt(1)},
	})
	_ = history.Append(context.Background(), &entity.ForecastSnapshot{
		ID: "new", ProjectID: "p1", ForecastDate: time.Now(),
		Forecasts: map[string]decimal.Decimal{"Steel": decimal.NewFromInt(1000)},
	})
	uc := newFirstStockingUC(projects, history, nil)

	suggestions, err := uc.Suggest(context.Background(), "p1", dto.FirstStockingRequest{})

	require.NoError(t, err)
	for _, s := range suggestions {
		if s.MaterialName == "Steel" {
			assert.True(t, s.SuggestedQuantity.Equal(decimal.NewFromInt(76)),
				"debe usar la foto más reciente (1000), got %s", s.SuggestedQuantity)
		}
	}
}

// TestSuggest_SinPronosticoTodoCero sin dato en ninguna fuente todas las
// sugerencias son cero; nunca error.
func TestSuggest_SinPronosticoTodoCero(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 0, nil))
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, nil)

	suggestions, err := uc.Suggest(context.Background(), "p1", dto.FirstStockingRequest{})

	require.NoError(t, err)
	for _, s := range suggestions {
		assert.True(t, s.SuggestedQuantity.IsZero())
	}
}

func TestSuggest_ProyectoInexistente(t *testing.T) {
	uc := newFirstStockingUC(newFakeProjects(), &fakeHistoryRepo{}, nil)

	_, err := uc.Suggest(context.Background(), "fantasma", dto.FirstStockingRequest{})

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestSuggestPDF_GeneraConElGenerador(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 0, nil))
	report := &fakeReportGenerator{}
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, report)

	pdfBytes, err := uc.SuggestPDF(context.Background(), "p1", dto.FirstStockingRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "p1", report.lastProjectID)
}

func TestSuggestPDF_SinGeneradorConfigurado(t *testing.T) {
	projects := newFakeProjects(activeProject("p1", 0, nil))
	uc := newFirstStockingUC(projects, &fakeHistoryRepo{}, nil)

	_, err := uc.SuggestPDF(context.Background(), "p1", dto.FirstStockingRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
