package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/powerlinea/gridstock-api/internal/application/ledger"
	appplanning "github.com/powerlinea/gridstock-api/internal/application/planning"
	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/repository"
	"github.com/powerlinea/gridstock-api/internal/domain/stock"
	apphttp "github.com/powerlinea/gridstock-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de extremo a extremo sobre el router Fiber con repositorios en
// memoria: request JSON real, respuesta JSON real, sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

// memLedger implementa repository.LedgerRepository en memoria.
type memLedger struct {
	deliveries []*entity.DeliveryEvent
	usages     []*entity.UsageEvent
}

func (m *memLedger) AppendDelivery(_ context.Context, ev *entity.DeliveryEvent) error {
	m.deliveries = append(m.deliveries, ev)
	return nil
}

func (m *memLedger) AppendUsage(_ context.Context, ev *entity.UsageEvent) error {
	m.usages = append(m.usages, ev)
	return nil
}

func (m *memLedger) ListDeliveries(_ context.Context, projectID, materialID string) ([]*entity.DeliveryEvent, error) {
	var out []*entity.DeliveryEvent
	for _, ev := range m.deliveries {
		if ev.ProjectID == projectID && (materialID == "" || ev.MaterialID == materialID) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memLedger) ListUsages(_ context.Context, projectID, materialID string) ([]*entity.UsageEvent, error) {
	var out []*entity.UsageEvent
	for _, ev := range m.usages {
		if ev.ProjectID == projectID && (materialID == "" || ev.MaterialID == materialID) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memLedger) StockTotals(_ context.Context, projectID string) ([]repository.MaterialStockTotal, error) {
	byMaterial := map[string]*repository.MaterialStockTotal{}
	get := func(id string) *repository.MaterialStockTotal {
		t, ok := byMaterial[id]
		if !ok {
			t = &repository.MaterialStockTotal{
				MaterialID: id, DeliveredTotal: decimal.Zero, UsedTotal: decimal.Zero,
			}
			byMaterial[id] = t
		}
		return t
	}
	for _, ev := range m.deliveries {
		if projectID == "" || ev.ProjectID == projectID {
			t := get(ev.MaterialID)
			t.DeliveredTotal = t.DeliveredTotal.Add(ev.Quantity)
			t.DeliveryCount++
		}
	}
	for _, ev := range m.usages {
		if projectID == "" || ev.ProjectID == projectID {
			t := get(ev.MaterialID)
			t.UsedTotal = t.UsedTotal.Add(ev.Quantity)
			t.UsageCount++
		}
	}
	var out []repository.MaterialStockTotal
	for _, t := range byMaterial {
		out = append(out, *t)
	}
	return out, nil
}

// memProjects implementa repository.ProjectRepository en memoria.
type memProjects struct {
	ids map[string]bool
}

func (m *memProjects) GetByID(_ context.Context, id string) (*entity.Project, error) {
	if !m.ids[id] {
		return nil, nil
	}
	return &entity.Project{ID: id, Status: "active", CreatedAt: time.Now()}, nil
}

func (m *memProjects) Exists(_ context.Context, id string) (bool, error) {
	return m.ids[id], nil
}

// memHistory implementa repository.ForecastHistoryRepository en memoria.
type memHistory struct {
	snaps []*entity.ForecastSnapshot
}

func (m *memHistory) Append(_ context.Context, snap *entity.ForecastSnapshot) error {
	m.snaps = append([]*entity.ForecastSnapshot{snap}, m.snaps...)
	return nil
}

func (m *memHistory) ListByProject(_ context.Context, projectID string, limit int) ([]*entity.ForecastSnapshot, error) {
	var out []*entity.ForecastSnapshot
	for _, s := range m.snaps {
		if s.ProjectID == projectID {
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// buildTestApp arma la app Fiber completa con el catálogo por defecto y
// un umbral de reorden de 40 para steel.
func buildTestApp(ledgerRepo *memLedger) *fiber.App {
	cat := catalog.Default()
	projects := &memProjects{ids: map[string]bool{"p1": true}}
	history := &memHistory{}
	policy := stock.FixedReorderPolicy(decimal.Zero, map[string]decimal.Decimal{
		"steel": decimal.NewFromInt(40),
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RecordEvent:      appledger.NewRecordEventUseCase(cat, ledgerRepo, projects),
		StockQuery:       appledger.NewStockQueryUseCase(cat, ledgerRepo, projects),
		Alerts:           appledger.NewAlertsUseCase(cat, ledgerRepo, projects, policy, nil),
		FirstStocking:    appplanning.NewFirstStockingUseCase(cat, projects, history, nil),
		OrderingSchedule: appplanning.NewOrderingScheduleUseCase(cat),
		ForecastHistory:  appplanning.NewForecastHistoryUseCase(projects, history, nil),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestPostDelivery_Creado(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/ledger/deliveries", fiber.Map{
		"material_id":        "steel",
		"project_id":         "p1",
		"quantity_delivered": "12.5",
		"received_by":        "jmartinez",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "steel", body["material_id"])
	assert.NotEmpty(t, body["id"])
}

func TestPostDelivery_CantidadInvalida(t *testing.T) {
	repo := &memLedger{}
	app := buildTestApp(repo)

	resp := doJSON(t, app, fiber.MethodPost, "/api/ledger/deliveries", fiber.Map{
		"material_id":        "steel",
		"project_id":         "p1",
		"quantity_delivered": "-5",
		"received_by":        "jmartinez",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.deliveries, "el rechazo no debe dejar rastro en el ledger")
}

func TestPostDelivery_ProyectoInexistente(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/ledger/deliveries", fiber.Map{
		"material_id":        "steel",
		"project_id":         "fantasma",
		"quantity_delivered": "5",
		"received_by":        "jmartinez",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProjectStock_SinDatosVsCero(t *testing.T) {
	app := buildTestApp(&memLedger{})

	// Entrega y consumo que se cancelan: steel queda en 0 con historial.
	doJSON(t, app, fiber.MethodPost, "/api/ledger/deliveries", fiber.Map{
		"material_id": "steel", "project_id": "p1",
		"quantity_delivered": "60", "received_by": "jmartinez",
	})
	doJSON(t, app, fiber.MethodPost, "/api/ledger/usages", fiber.Map{
		"material_id": "steel", "project_id": "p1",
		"quantity_used": "60", "logged_by": "rgomez",
	})

	resp := doJSON(t, app, fiber.MethodGet, "/api/projects/p1/stock", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	materials, ok := body["materials"].([]any)
	require.True(t, ok)
	require.Len(t, materials, catalog.Default().Len())

	for _, raw := range materials {
		item := raw.(map[string]any)
		switch item["material_id"] {
		case "steel":
			// Stock 0 con historial: project_stock presente y en cero.
			require.Contains(t, item, "project_stock")
			assert.Equal(t, "0", item["project_stock"])
		case "tower":
			// Sin entregas: el campo se omite (nil), no se muestra cero.
			assert.NotContains(t, item, "project_stock")
		}
	}
}

func TestGetProjectStock_Inexistente(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodGet, "/api/projects/fantasma/stock", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAlerts_PorProyecto(t *testing.T) {
	app := buildTestApp(&memLedger{})

	doJSON(t, app, fiber.MethodPost, "/api/ledger/deliveries", fiber.Map{
		"material_id": "steel", "project_id": "p1",
		"quantity_delivered": "30", "received_by": "jmartinez",
	})

	resp := doJSON(t, app, fiber.MethodGet, "/api/alerts?project_id=p1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	// steel en 30 < umbral 40: una alerta.
	assert.Equal(t, float64(1), body["total"])
	alerts := body["alerts"].([]any)
	first := alerts[0].(map[string]any)
	assert.Equal(t, "steel", first["material_id"])
}

func TestPostFirstStocking_VectorSteel(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/projects/p1/first-stocking", fiber.Map{
		"forecasts": fiber.Map{"Steel": "1000"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	suggestions := body["suggestions"].([]any)
	require.Len(t, suggestions, catalog.Default().Len())
	for _, raw := range suggestions {
		s := raw.(map[string]any)
		if s["material_name"] == "Steel" {
			assert.Equal(t, "76", s["suggested_quantity"],
				"1000 tons / 1095 dias, lead 75, margen 10%: 76")
		}
	}
}

func TestPostOrderingSchedule(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/ordering/schedule", fiber.Map{
		"need_by_date": "2026-06-01",
		"materials":    []string{"Steel", "Transformers"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	schedule := body["schedule"].([]any)
	require.Len(t, schedule, 2)
	first := schedule[0].(map[string]any)
	assert.Equal(t, "Transformers", first["material"])
	assert.Equal(t, "2026-02-01", first["order_date"])
}

func TestForecasts_RegistrarYListar(t *testing.T) {
	app := buildTestApp(&memLedger{})

	resp := doJSON(t, app, fiber.MethodPost, "/api/projects/p1/forecasts", fiber.Map{
		"forecasts": fiber.Map{"Steel": "1000"},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/projects/p1/forecasts", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"])
}
