// Package planning implementa la aritmética de aprovisionamiento inicial
// (primer abastecimiento a partir del pronóstico de demanda total) y el
// calendario óptimo de pedidos por lead time. Computación pura, sin I/O.
package planning

import (
	"github.com/shopspring/decimal"
)

// safetyBuffer factor fijo de seguridad del 10% sobre la demanda del
// lead time. Sesgo deliberado contra el sub-aprovisionamiento.
var safetyBuffer = decimal.NewFromFloat(1.10)

// SuggestFirstStock calcula la cantidad inicial a procurar para cubrir el
// lead time de un material antes de que exista señal de consumo propia:
//
//	demanda_diaria = pronóstico_total / duración_planificada
//	sugerencia     = ceil(demanda_diaria * lead_time * 1.10)
//
// El redondeo es SIEMPRE hacia arriba (nunca al más cercano ni truncado).
// Entradas degeneradas (pronóstico o duración <= 0) retornan cero, no
// error: el llamador trata cero como "sin sugerencia disponible".
// leadTimeDays en cero (material desconocido) también produce cero.
func SuggestFirstStock(totalForecast decimal.Decimal, plannedDurationDays, leadTimeDays int) decimal.Decimal {
	if totalForecast.LessThanOrEqual(decimal.Zero) || plannedDurationDays <= 0 {
		return decimal.Zero
	}
	avgDaily := totalForecast.Div(decimal.NewFromInt(int64(plannedDurationDays)))
	leadDemand := avgDaily.Mul(decimal.NewFromInt(int64(leadTimeDays)))
	return leadDemand.Mul(safetyBuffer).Ceil()
}
