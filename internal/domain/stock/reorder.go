package stock

import (
	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// ReorderPolicy devuelve el punto de reorden para un material. Es
// deliberadamente una función inyectable: el umbral es política del
// backend, no una constante del dominio.
type ReorderPolicy func(m *entity.Material) decimal.Decimal

// DefaultReorderPolicy retorna punto de reorden cero para todo material:
// con umbral cero ningún stock dispara alerta (current < 0 solo con
// stock negativo). Es el valor por defecto documentado cuando la
// configuración no define umbrales.
func DefaultReorderPolicy() ReorderPolicy {
	return func(_ *entity.Material) decimal.Decimal { return decimal.Zero }
}

// FixedReorderPolicy construye una política con un umbral por defecto y
// overrides por id de material.
func FixedReorderPolicy(def decimal.Decimal, overrides map[string]decimal.Decimal) ReorderPolicy {
	return func(m *entity.Material) decimal.Decimal {
		if p, ok := overrides[m.ID]; ok {
			return p
		}
		return def
	}
}

// Alert es derivada y efímera: existe solo mientras la cantidad actual
// esté por debajo del punto de reorden; se recalcula en cada consulta.
type Alert struct {
	MaterialID      string
	MaterialName    string
	Unit            string
	CurrentQuantity decimal.Decimal
	ReorderPoint    decimal.Decimal
}

// EvaluateAlerts recorre los materiales en el orden recibido (el catálogo
// entrega id ascendente, así el resultado es determinista) y emite alerta
// solo si current < punto de reorden, comparación estricta: igualdad NO
// dispara. Material sin cantidad registrada evalúa como cero, de modo que
// lo nunca abastecido también puede alertar.
func EvaluateAlerts(materials []*entity.Material, current map[string]decimal.Decimal, policy ReorderPolicy) []Alert {
	if policy == nil {
		policy = DefaultReorderPolicy()
	}
	alerts := make([]Alert, 0)
	for _, m := range materials {
		qty, ok := current[m.ID]
		if !ok {
			qty = decimal.Zero
		}
		point := policy(m)
		if qty.LessThan(point) {
			alerts = append(alerts, Alert{
				MaterialID:      m.ID,
				MaterialName:    m.Name,
				Unit:            m.Unit,
				CurrentQuantity: qty,
				ReorderPoint:    point,
			})
		}
	}
	return alerts
}
