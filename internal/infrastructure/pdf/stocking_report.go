// Package pdf genera la representación imprimible de la lista de primer
// abastecimiento de un proyecto de línea de transmisión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Proyecto + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Unidad | Cantidad sugerida                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTA: criterio de cálculo (lead time + margen de seguridad) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/powerlinea/gridstock-api/internal/application/dto"
	appplanning "github.com/powerlinea/gridstock-api/internal/application/planning"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 184, Green: 92, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ appplanning.StockingReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa StockingReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockingReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockingReport(
	_ context.Context,
	projectID string,
	suggestions []dto.StockingSuggestionDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Primer Abastecimiento", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(projectID))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(suggestions) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(noteRow(len(suggestions)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y proyecto + fecha de generación (der).
func headerRow(projectID string) core.Row {
	fecha := time.Now().UTC().Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("LISTA DE PRIMER ABASTECIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Materiales de línea de transmisión", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Proyecto: "+projectID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de sugerencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Material", 6, align.Left),
		h("Unidad", 2, align.Center),
		h("Cantidad sugerida", 4, align.Right),
	)
}

// tableRows: una fila por material del catálogo.
func tableRows(suggestions []dto.StockingSuggestionDTO) []core.Row {
	result := make([]core.Row, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				s.MaterialName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				s.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				s.SuggestedQuantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// noteRow: criterio de cálculo al pie.
func noteRow(n int) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Se listan %d materiales. Cada cantidad cubre el consumo diario promedio "+
				"durante el lead time del proveedor, con un margen de seguridad del 10%%, "+
				"redondeado hacia arriba.", n),
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}
