package planning

import (
	"context"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
)

// StockingReportGenerator genera la representación imprimible (PDF) de la
// lista de primer abastecimiento de un proyecto.
type StockingReportGenerator interface {
	GenerateStockingReport(ctx context.Context, projectID string, suggestions []dto.StockingSuggestionDTO) ([]byte, error)
}
