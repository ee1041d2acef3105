// Package stock implementa la reconciliación del ledger (fold de eventos
// de entrega y consumo hacia una posición de stock derivada) y la
// evaluación de alertas de reorden. Todo es computación pura sobre un
// snapshot: el estado derivado nunca se persiste por separado.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/domain/entity"
)

// Position es la posición de stock derivada para un par (proyecto, material).
// ProjectStock puede ser negativo: consumo registrado sin entrega previa
// (stock de apertura anterior al ledger). Eso es dato, no error, y no se
// recorta a cero en ninguna capa de este núcleo.
type Position struct {
	DeliveredTotal decimal.Decimal
	UsedTotal      decimal.Decimal
	ProjectStock   decimal.Decimal // DeliveredTotal - UsedTotal
	DeliveryCount  int
	UsageCount     int
}

// HasDeliveries distingue "sin datos" (cero entregas registradas) de
// "stock exactamente cero con historial": son estados operativos
// distintos y no deben confundirse en la presentación.
func (p Position) HasDeliveries() bool { return p.DeliveryCount > 0 }

// Reconcile pliega todos los eventos de un par (proyecto, material) en
// su posición actual. La suma es conmutativa: el orden de los eventos no
// afecta el resultado, solo importa que el snapshot esté completo.
func Reconcile(deliveries []*entity.DeliveryEvent, usages []*entity.UsageEvent) Position {
	pos := Position{
		DeliveredTotal: decimal.Zero,
		UsedTotal:      decimal.Zero,
	}
	for _, d := range deliveries {
		pos.DeliveredTotal = pos.DeliveredTotal.Add(d.Quantity)
	}
	for _, u := range usages {
		pos.UsedTotal = pos.UsedTotal.Add(u.Quantity)
	}
	pos.DeliveryCount = len(deliveries)
	pos.UsageCount = len(usages)
	pos.ProjectStock = pos.DeliveredTotal.Sub(pos.UsedTotal)
	return pos
}
