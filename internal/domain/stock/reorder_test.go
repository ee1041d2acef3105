package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerlinea/gridstock-api/internal/domain/catalog"
	"github.com/powerlinea/gridstock-api/internal/domain/entity"
	"github.com/powerlinea/gridstock-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// La comparación de alertas es ESTRICTA: current < point dispara, la
// igualdad exacta no. Material sin cantidad registrada evalúa como cero.
// ──────────────────────────────────────────────────────────────────────────────

func fixedPolicy(point float64) stock.ReorderPolicy {
	return stock.FixedReorderPolicy(decimal.NewFromFloat(point), nil)
}

func soloSteel(t *testing.T) []*entity.Material {
	t.Helper()
	m, err := catalog.Default().Lookup("steel")
	require.NoError(t, err)
	return []*entity.Material{m}
}

func TestEvaluateAlerts_DebajoDelUmbral(t *testing.T) {
	current := map[string]decimal.Decimal{
		"steel": decimal.NewFromInt(39),
	}

	alerts := stock.EvaluateAlerts(soloSteel(t), current, fixedPolicy(40))

	require.Len(t, alerts, 1)
	assert.Equal(t, "steel", alerts[0].MaterialID)
	assert.Equal(t, "Steel", alerts[0].MaterialName)
	assert.True(t, alerts[0].ReorderPoint.Equal(decimal.NewFromInt(40)))
}

func TestEvaluateAlerts_IgualdadNoDispara(t *testing.T) {
	current := map[string]decimal.Decimal{
		"steel": decimal.NewFromInt(40),
	}

	alerts := stock.EvaluateAlerts(soloSteel(t), current, fixedPolicy(40))

	assert.Empty(t, alerts, "current == reorder_point NO debe alertar")
}

func TestEvaluateAlerts_NuncaAbastecidoEvaluaComoCero(t *testing.T) {
	cat := catalog.Default()

	// Ningún material tiene cantidad registrada: todos evalúan como 0 y
	// con umbral positivo todos alertan.
	alerts := stock.EvaluateAlerts(cat.Materials(), nil, fixedPolicy(10))

	require.Len(t, alerts, cat.Len())
	for _, a := range alerts {
		assert.True(t, a.CurrentQuantity.IsZero())
	}
}

func TestEvaluateAlerts_OrdenDeterminista(t *testing.T) {
	cat := catalog.Default()

	alerts := stock.EvaluateAlerts(cat.Materials(), nil, fixedPolicy(10))

	require.Len(t, alerts, cat.Len())
	for i := 1; i < len(alerts); i++ {
		assert.Less(t, alerts[i-1].MaterialID, alerts[i].MaterialID,
			"las alertas deben salir en orden de catálogo (id ascendente)")
	}
}

func TestEvaluateAlerts_StockNegativoAlerta(t *testing.T) {
	cat := catalog.Default()
	current := map[string]decimal.Decimal{
		"tower": decimal.NewFromInt(-5),
	}
	for _, m := range cat.Materials() {
		if m.ID != "tower" {
			current[m.ID] = decimal.NewFromInt(100)
		}
	}

	alerts := stock.EvaluateAlerts(cat.Materials(), current, stock.DefaultReorderPolicy())

	// Con umbral cero, solo el stock negativo queda por debajo.
	require.Len(t, alerts, 1)
	assert.Equal(t, "tower", alerts[0].MaterialID)
	assert.True(t, alerts[0].CurrentQuantity.Equal(decimal.NewFromInt(-5)))
}

func TestEvaluateAlerts_PoliticaPorDefectoSinAlertas(t *testing.T) {
	cat := catalog.Default()
	current := map[string]decimal.Decimal{
		"steel":     decimal.NewFromInt(100),
		"conductor": decimal.Zero,
	}

	alerts := stock.EvaluateAlerts(cat.Materials(), current, stock.DefaultReorderPolicy())

	assert.Empty(t, alerts, "con umbral cero ningún stock >= 0 alerta")
}

func TestFixedReorderPolicy_Overrides(t *testing.T) {
	cat := catalog.Default()
	steel, _ := cat.Lookup("steel")
	tower, _ := cat.Lookup("tower")

	policy := stock.FixedReorderPolicy(decimal.NewFromInt(10), map[string]decimal.Decimal{
		"steel": decimal.NewFromInt(40),
	})

	assert.True(t, policy(steel).Equal(decimal.NewFromInt(40)), "override por material")
	assert.True(t, policy(tower).Equal(decimal.NewFromInt(10)), "umbral por defecto")
}

func TestEvaluateAlerts_PoliticaNilUsaDefecto(t *testing.T) {
	cat := catalog.Default()

	alerts := stock.EvaluateAlerts(cat.Materials(), nil, nil)

	assert.Empty(t, alerts)
}
