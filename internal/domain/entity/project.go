package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPlannedDurationDays duración planificada por defecto (3 años)
// cuando el proyecto no declara una propia.
const DefaultPlannedDurationDays = 1095

// Project es contexto de solo lectura: el proyecto pertenece al
// subsistema de gestión (externo a este núcleo) y aquí solo se consultan
// sus pronósticos de demanda total y su duración planificada.
type Project struct {
	ID                  string
	Status              string
	PlannedDurationDays int                        // 0 = usar DefaultPlannedDurationDays
	Forecasts           map[string]decimal.Decimal // demanda total por nombre de material
	CreatedAt           time.Time
}

// Duration devuelve la duración planificada efectiva en días.
func (p *Project) Duration() int {
	if p.PlannedDurationDays > 0 {
		return p.PlannedDurationDays
	}
	return DefaultPlannedDurationDays
}
