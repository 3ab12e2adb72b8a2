// Package pdf implementa la exportación PDF del dashboard con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del dashboard  │  Estado + fecha del ciclo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AVISO: endpoints que fallaron (solo si hay)                 │
//	│  AVISO: sin datos (asentado, sin fallo total, sin secciones) │
//	│  RESUMEN: Total Revenue / Total Orders                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRÁFICO: Revenue by Category (PNG)                          │
//	│  GRÁFICO: Monthly Revenue Trend (PNG)                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Origen | Destino | Valor  (transiciones del journey) │
//	│  FOOTER: id del ciclo                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/pkg/format"
)

// Verificar en tiempo de compilación que MarotoDashboardPDF implementa ReportGenerator.
var _ analytics.ReportGenerator = (*MarotoDashboardPDF)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 67, Green: 56, Blue: 202}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorDanger  = &props.Color{Red: 153, Green: 27, Blue: 27}
)

const chartImageHeight = 70

// BarImageRenderer dibuja un gráfico de barras como PNG.
type BarImageRenderer interface {
	Render(c *dto.BarChartDTO) ([]byte, error)
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDashboardPDF implementa analytics.ReportGenerator usando Maroto v2.
type MarotoDashboardPDF struct {
	bars BarImageRenderer
	nf   *format.NumberFormatter
}

// NewMarotoDashboardPDF construye el generador.
func NewMarotoDashboardPDF(bars BarImageRenderer, nf *format.NumberFormatter) *MarotoDashboardPDF {
	return &MarotoDashboardPDF{bars: bars, nf: nf}
}

// GenerateDashboardPDF genera el PDF de una vista asentada y devuelve sus bytes.
func (g *MarotoDashboardPDF) GenerateDashboardPDF(ctx context.Context, view *dto.DashboardViewDTO) ([]byte, error) {
	if view == nil || !view.Settled() {
		return nil, domain.ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(view.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(view))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(view.Failures) > 0 {
		m.AddRows(failureRows(view)...)
	}
	if view.State != dto.StateFailed && !view.HasSections() {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No analytics data to show yet.", props.Text{Size: 10, Color: colorGray, Top: 3}),
		)))
	}
	if view.Overview != nil {
		m.AddRows(g.overviewRow(view.Overview))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	for _, c := range []*dto.BarChartDTO{view.RevenueByCategory, view.MonthlyRevenue} {
		if c == nil {
			continue
		}
		rows, err := g.chartRows(c)
		if err != nil {
			return nil, err
		}
		m.AddRows(rows...)
	}

	if view.Journey != nil {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitle(analytics.JourneyChartTitle))
		m.AddRows(tableHeaderRow())
		m.AddRows(g.journeyRows(view.Journey)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(view))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y estado + fecha del ciclo (der).
func headerRow(view *dto.DashboardViewDTO) core.Row {
	settled := "—"
	if view.SettledAt != nil {
		settled = view.SettledAt.Format("2006-01-02 15:04:05 MST")
	}

	return row.New(16).Add(
		col.New(8).Add(
			text.New(view.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Estado: "+view.State, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(settled, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// failureRows: aviso con los endpoints que no respondieron.
func failureRows(view *dto.DashboardViewDTO) []core.Row {
	heading := "Some sections could not be loaded."
	if view.State == dto.StateFailed {
		heading = "The dashboard could not be loaded."
	}

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(heading, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorDanger, Top: 1}),
		)),
	}
	for _, f := range view.Failures {
		msg := f.Endpoint + ": " + f.Code
		if f.Retryable {
			msg += " (try again shortly)"
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(msg, props.Text{Size: 8, Color: colorDanger, Left: 3}),
		)))
	}
	return append(rows, row.New(3))
}

func (g *MarotoDashboardPDF) overviewRow(ov *dto.OverviewDTO) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 10, Top: top})
	}

	return row.New(16).Add(
		col.New(3).Add(
			label("Total Revenue:", 2),
			label("Total Orders:", 9),
		),
		col.New(9).Add(
			value(g.nf.Amount(ov.TotalRevenue), 2),
			value(g.nf.Count(ov.TotalOrders), 9),
		),
	)
}

// chartRows: título + imagen PNG del gráfico de barras.
func (g *MarotoDashboardPDF) chartRows(c *dto.BarChartDTO) ([]core.Row, error) {
	img, err := g.bars.Render(c)
	if err != nil {
		return nil, fmt.Errorf("pdf: gráfico %q: %w", c.Title, err)
	}
	return []core.Row{
		sectionTitle(c.Title),
		image.NewFromBytesRow(chartImageHeight, img, extension.Png, props.Rect{Percent: 100, Center: true}),
	}, nil
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
	))
}

// tableHeaderRow: cabecera de la tabla de transiciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Source", 5, align.Left),
		h("Target", 5, align.Left),
		h("Value", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// journeyRows: una fila por enlace, en el orden del backend.
func (g *MarotoDashboardPDF) journeyRows(graph *entity.SankeyGraph) []core.Row {
	result := make([]core.Row, 0, len(graph.Links))
	for _, l := range graph.Links {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(l.Source, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(l.Target, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatValue(l.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow(view *dto.DashboardViewDTO) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Ciclo: "+view.CycleID, props.Text{Size: 6.5, Color: colorGray, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatValue evita decimales de relleno: 5 → "5", 2.5 → "2.5".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
