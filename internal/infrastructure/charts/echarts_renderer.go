// Package charts arma los gráficos del dashboard: opciones ECharts (go-echarts)
// para la página HTML e imágenes PNG (go-chart) para la exportación PDF.
package charts

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/internal/domain/journey"
	"github.com/jhoicas/journey-dashboard/pkg/format"
)

// Verificar en tiempo de compilación que EChartsPageRenderer implementa PageRenderer.
var _ analytics.PageRenderer = (*EChartsPageRenderer)(nil)

const (
	// assetsHost mismo host de assets que usa go-echarts por defecto.
	assetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

	barChartHeight    = 300
	sankeyChartHeight = 500
	sankeyNodeGap     = 20
	loadingRefreshSec = 2
)

//go:embed templates/*.html
var templateFS embed.FS

type pageData struct {
	Title          string
	Loading        bool
	Failed         bool
	Empty          bool
	RefreshSeconds int
	AssetsHost     string
	Failures       []dto.EndpointFailureDTO
	Overview       *overviewData
	Charts         []chartData
}

type overviewData struct {
	Revenue string
	Orders  string
}

type chartData struct {
	ID     string
	Title  string
	Height int
	Option template.JS
}

// EChartsPageRenderer implementa analytics.PageRenderer: html/template para el
// esqueleto de la página y go-echarts para las opciones de cada gráfico.
type EChartsPageRenderer struct {
	tpl *template.Template
	nf  *format.NumberFormatter
}

// NewEChartsPageRenderer parsea la plantilla embebida.
func NewEChartsPageRenderer(nf *format.NumberFormatter) (*EChartsPageRenderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("charts: parsear plantilla: %w", err)
	}
	return &EChartsPageRenderer{tpl: tpl, nf: nf}, nil
}

// RenderPage escribe la página del dashboard para cualquier estado de la vista.
func (r *EChartsPageRenderer) RenderPage(w io.Writer, view *dto.DashboardViewDTO) error {
	data := pageData{
		Title:          view.Title,
		Loading:        !view.Settled(),
		Failed:         view.State == dto.StateFailed,
		Empty:          view.Settled() && view.State != dto.StateFailed && !view.HasSections(),
		RefreshSeconds: loadingRefreshSec,
		AssetsHost:     assetsHost,
		Failures:       view.Failures,
	}

	if view.Overview != nil {
		data.Overview = &overviewData{
			Revenue: r.nf.Amount(view.Overview.TotalRevenue),
			Orders:  r.nf.Count(view.Overview.TotalOrders),
		}
	}

	if view.RevenueByCategory != nil {
		opt, err := BarOption(view.RevenueByCategory)
		if err != nil {
			return err
		}
		data.Charts = append(data.Charts, chartData{
			ID: "chart-category", Title: view.RevenueByCategory.Title, Height: barChartHeight, Option: opt,
		})
	}
	if view.MonthlyRevenue != nil {
		opt, err := BarOption(view.MonthlyRevenue)
		if err != nil {
			return err
		}
		data.Charts = append(data.Charts, chartData{
			ID: "chart-monthly", Title: view.MonthlyRevenue.Title, Height: barChartHeight, Option: opt,
		})
	}
	if view.Journey != nil {
		opt, err := SankeyOption(view.Journey)
		if err != nil {
			return err
		}
		data.Charts = append(data.Charts, chartData{
			ID: "chart-journey", Title: analytics.JourneyChartTitle, Height: sankeyChartHeight, Option: opt,
		})
	}

	if err := r.tpl.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		return fmt.Errorf("charts: ejecutar plantilla: %w", err)
	}
	return nil
}

// BarOption construye las opciones ECharts de un gráfico de barras.
func BarOption(c *dto.BarChartDTO) (template.JS, error) {
	labels := make([]string, 0, len(c.Bars))
	values := make([]opts.BarData, 0, len(c.Bars))
	for _, b := range c.Bars {
		labels = append(labels, b.Label)
		values = append(values, opts.BarData{Name: b.Label, Value: b.Amount.InexactFloat64()})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XKey}),
		charts.WithYAxisOpts(opts.YAxis{Name: "amount"}),
		charts.WithColorsOpts(opts.Colors{c.Color}),
	)
	bar.SetXAxis(labels).AddSeries("amount", values)
	bar.Validate()

	return marshalOption(bar.JSON())
}

// SankeyOption construye las opciones ECharts del diagrama de flujo.
// El layout sankey de ECharts exige un grafo sin ciclos: el gráfico usa
// journey.AcyclicLinks; la vista JSON y el PDF conservan todos los enlaces.
func SankeyOption(g *entity.SankeyGraph) (template.JS, error) {
	nodes := make([]opts.SankeyNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, opts.SankeyNode{Name: n.Name})
	}
	// opts.SankeyLink usa float32; los enlaces se emiten aparte para no perder precisión.
	acyclic := journey.AcyclicLinks(g.Links)
	links := make([]sankeyLink, 0, len(acyclic))
	for _, l := range acyclic {
		links = append(links, sankeyLink{Source: l.Source, Target: l.Target, Value: l.Value})
	}

	sankey := charts.NewSankey()
	sankey.SetGlobalOptions(
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
	)
	sankey.AddSeries("journey", nodes, nil, charts.WithLabelOpts(opts.Label{Show: true}))
	sankey.Validate()

	option, err := withSeriesFields(sankey.JSON(), map[string]interface{}{
		"nodeGap": sankeyNodeGap,
		"links":   links,
	})
	if err != nil {
		return "", err
	}
	return marshalOption(option)
}

type sankeyLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// withSeriesFields agrega claves ECharts a cada serie; go-echarts no expone
// todas las opciones de la serie sankey.
func withSeriesFields(option map[string]interface{}, fields map[string]interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(option)
	if err != nil {
		return nil, fmt.Errorf("charts: serializar opciones: %w", err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("charts: decodificar opciones: %w", err)
	}
	series, _ := generic["series"].([]interface{})
	for _, s := range series {
		if m, ok := s.(map[string]interface{}); ok {
			for k, v := range fields {
				m[k] = v
			}
		}
	}
	return generic, nil
}

// marshalOption serializa con escape HTML (<, >, &) para poder incrustar en <script>.
func marshalOption(option map[string]interface{}) (template.JS, error) {
	b, err := json.Marshal(option)
	if err != nil {
		return "", fmt.Errorf("charts: serializar opciones: %w", err)
	}
	return template.JS(b), nil
}
