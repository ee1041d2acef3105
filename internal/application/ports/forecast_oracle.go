package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ForecastOracle es el puerto hacia el servicio externo de predicción de
// demanda (modelos por material). Para este núcleo el modelo es una caja
// negra: entran características del proyecto, sale demanda total por
// nombre de material.
type ForecastOracle interface {
	PredictAll(ctx context.Context, features map[string]string) (map[string]decimal.Decimal, error)
}
