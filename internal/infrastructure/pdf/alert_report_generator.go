// Package pdf implementa la generación del reporte de alertas de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de alertas por prioridad                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Tipo | Prioridad | Umbral | Actual       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del reporte                                │
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
	"github.com/shopspring/decimal"

	"github.com/Detencio/SuperSetBI/internal/application/dto"
	"github.com/Detencio/SuperSetBI/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorHigh     = &props.Color{Red: 200, Green: 120, Blue: 0}
)

var _ reports.AlertReportGenerator = (*MarotoAlertReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoAlertReportGenerator implementa reports.AlertReportGenerator usando Maroto v2.
type MarotoAlertReportGenerator struct{}

// NewMarotoAlertReportGenerator construye el generador.
func NewMarotoAlertReportGenerator() *MarotoAlertReportGenerator {
	return &MarotoAlertReportGenerator{}
}

// GenerateAlertReport genera el PDF del reporte de alertas y devuelve sus bytes.
func (g *MarotoAlertReportGenerator) GenerateAlertReport(
	_ context.Context,
	alerts []dto.AlertDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Alertas de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(alerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(alerts) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Sin alertas activas: el inventario está dentro de los umbrales configurados.", props.Text{
				Size: 10, Align: align.Center, Top: 4, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableAlertRows(alerts) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE ALERTAS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Supervisión de existencias, vencimientos y sobre-stock", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: totales por prioridad.
func summaryRow(alerts []dto.AlertDTO) core.Row {
	var criticas, altas, medias int
	for _, a := range alerts {
		switch a.Priority {
		case "critical":
			criticas++
		case "high":
			altas++
		case "medium":
			medias++
		}
	}

	cell := func(label string, count int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: color, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", count), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6,
			}),
		)
	}

	return row.New(14).Add(
		cell("TOTAL", len(alerts), colorPrimary),
		cell("CRÍTICAS", criticas, colorCritical),
		cell("ALTAS", altas, colorHigh),
		cell("MEDIAS", medias, colorGray),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Left),
		h("Prioridad", 2, align.Center),
		h("Umbral", 2, align.Right),
		h("Actual", 2, align.Right),
	)
}

// tableAlertRows: una fila por alerta, con el mensaje debajo del nombre.
func tableAlertRows(alerts []dto.AlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, row.New(10).Add(
			col.New(4).Add(
				text.New(a.ProductName, props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
				}),
				text.New(a.Message, props.Text{
					Size: 6.5, Align: align.Left, Top: 5.5, Left: 1, Color: colorGray,
				}),
			),
			col.New(2).Add(text.New(
				alertTypeLabel(a.Type),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				priorityLabel(a.Priority),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: priorityColor(a.Priority)},
			)),
			col.New(2).Add(text.New(
				decimalOrDash(a.Threshold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				decimalOrDash(a.CurrentValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: leyenda del pie de página.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente a partir del estado actual del inventario. "+
				"Las prioridades indican la urgencia sugerida de reposición o liquidación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func alertTypeLabel(t string) string {
	switch t {
	case "low_stock":
		return "Stock bajo"
	case "out_of_stock":
		return "Sin stock"
	case "excess_stock":
		return "Sobre-stock"
	case "expiring":
		return "Por vencer"
	}
	return t
}

func priorityLabel(p string) string {
	switch p {
	case "critical":
		return "CRÍTICA"
	case "high":
		return "ALTA"
	case "medium":
		return "MEDIA"
	}
	return p
}

func priorityColor(p string) *props.Color {
	switch p {
	case "critical":
		return colorCritical
	case "high":
		return colorHigh
	}
	return colorGray
}

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return d.String()
}
