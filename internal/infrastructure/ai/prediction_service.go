package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/powerlinea/gridstock-api/internal/application/ports"
)

// Verificar en tiempo de compilación que PredictionService implementa ForecastOracle.
var _ ports.ForecastOracle = (*PredictionService)(nil)

// PredictionService adaptador HTTP contra el servicio externo de
// predicción de demanda (endpoint /predict_all). El servicio recibe las
// características del proyecto y devuelve una cantidad pronosticada por
// material del catálogo.
type PredictionService struct {
	baseURL    string
	httpClient *http.Client
}

// NewPredictionService construye el adaptador. baseURL vacío devuelve
// errores descriptivos en lugar de panic; el use case decide si el
// oráculo es opcional.
func NewPredictionService(baseURL string, timeout time.Duration) *PredictionService {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &PredictionService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras del protocolo del oráculo ─────────────────────────────────────

// El servicio espera {"input_features": {...}} y responde con un mapa
// plano material → cantidad en el nivel superior del JSON. Cuando un
// modelo individual falla, el valor de ese material es el string
// "Prediction Error" en lugar de un número.

type predictAllRequest struct {
	InputFeatures map[string]string `json:"input_features"`
}

type oracleErrorResponse struct {
	Error string `json:"error"`
}

// failedPredictionValue marca un material cuyo modelo falló en el lado
// del oráculo. Se omite del resultado: el resto de predicciones sigue
// siendo utilizable.
const failedPredictionValue = "Prediction Error"

// ── Implementación del puerto ─────────────────────────────────────────────────

// PredictAll pide al oráculo un pronóstico para todos los materiales a
// partir de las características del proyecto.
func (s *PredictionService) PredictAll(ctx context.Context, features map[string]string) (map[string]decimal.Decimal, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("oracle: ORACLE_BASE_URL no configurado")
	}

	body, err := json.Marshal(predictAllRequest{InputFeatures: features})
	if err != nil {
		return nil, fmt.Errorf("oracle: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/predict_all", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("oracle: crear HTTP request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("oracle: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("oracle: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("oracle: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp oracleErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("oracle: error del servicio: %s", errResp.Error)
		}
		return nil, fmt.Errorf("oracle: HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rawBody, &raw); err != nil {
		return nil, fmt.Errorf("oracle: deserializar respuesta: %w", err)
	}

	predictions := make(map[string]decimal.Decimal, len(raw))
	for material, value := range raw {
		var marker string
		if err := json.Unmarshal(value, &marker); err == nil && marker == failedPredictionValue {
			continue
		}
		var qty decimal.Decimal
		if err := json.Unmarshal(value, &qty); err != nil {
			return nil, fmt.Errorf("oracle: valor no numérico para %q: %w", material, err)
		}
		predictions[material] = qty
	}
	if len(predictions) == 0 {
		return nil, fmt.Errorf("oracle: respuesta sin predicciones")
	}
	return predictions, nil
}
