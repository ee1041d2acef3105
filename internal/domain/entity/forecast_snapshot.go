package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastSnapshot es una foto histórica de los pronósticos de demanda
// de un proyecto (una fila por corrida del oráculo de predicción).
type ForecastSnapshot struct {
	ID           string
	ProjectID    string
	ForecastDate time.Time
	Forecasts    map[string]decimal.Decimal // demanda total por nombre de material
	CreatedAt    time.Time
}
