package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryEvent registra la recepción de material en un proyecto.
// Inmutable una vez persistido: el ledger es append-only, nunca se
// actualiza ni se borra un evento.
type DeliveryEvent struct {
	ID         string
	MaterialID string
	ProjectID  string
	Quantity   decimal.Decimal // cantidad recibida, siempre > 0
	ReceivedBy string
	Notes      string
	Timestamp  time.Time // momento del evento físico
	CreatedAt  time.Time // momento de inserción (desempate de orden)
}

// UsageEvent registra el consumo de material por un proyecto.
// Se acepta aunque deje el stock derivado en negativo: esa condición es
// dato reportable (stock de apertura previo al ledger), no un error.
type UsageEvent struct {
	ID         string
	MaterialID string
	ProjectID  string
	Quantity   decimal.Decimal // cantidad consumida, siempre > 0
	LoggedBy   string
	Notes      string
	Timestamp  time.Time
	CreatedAt  time.Time
}
