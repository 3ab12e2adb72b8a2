package charts_test

import (
	"bytes"
	"strings"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/internal/domain/journey"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/charts"
	"github.com/jhoicas/journey-dashboard/pkg/format"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func readyView() *dto.DashboardViewDTO {
	now := time.Now()
	return &dto.DashboardViewDTO{
		State:     dto.StateReady,
		Title:     "AstroArunPandit - Customer Journey Dashboard",
		CycleID:   "cycle-1",
		StartedAt: &now,
		SettledAt: &now,
		Overview:  &dto.OverviewDTO{TotalRevenue: decimal.RequireFromString("1234567.5"), TotalOrders: 4321},
		RevenueByCategory: &dto.BarChartDTO{
			Title: "Revenue by Category", XKey: "category", Color: "#4f46e5",
			Bars: []dto.BarDTO{{Label: "A", Amount: decimal.NewFromInt(100)}, {Label: "B", Amount: decimal.NewFromInt(50)}},
		},
		MonthlyRevenue: &dto.BarChartDTO{
			Title: "Monthly Revenue Trend", XKey: "month", Color: "#16a34a",
			Bars: []dto.BarDTO{{Label: "2024-01", Amount: decimal.NewFromInt(70)}},
		},
		Journey: &entity.SankeyGraph{
			Nodes: []entity.SankeyNode{{Name: "X"}, {Name: "Y"}, {Name: "Z"}},
			Links: []entity.SankeyLink{{Source: "X", Target: "Y", Value: 5}, {Source: "Y", Target: "Z", Value: 3}},
		},
		Failures: []dto.EndpointFailureDTO{},
	}
}

func render(t *testing.T, view *dto.DashboardViewDTO) string {
	t.Helper()
	r, err := charts.NewEChartsPageRenderer(format.New("en", "₹"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, view))
	return buf.String()
}

// ──────────────────────────────────────────────────────────────────────────────
// Página
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderPage_ReadyMuestraTodasLasSecciones(t *testing.T) {
	html := render(t, readyView())

	assert.Contains(t, html, "AstroArunPandit - Customer Journey Dashboard")
	assert.Contains(t, html, "Total Revenue:")
	assert.Contains(t, html, "₹1,234,567.5")
	assert.Contains(t, html, "4,321")
	assert.Contains(t, html, "Revenue by Category")
	assert.Contains(t, html, "Monthly Revenue Trend")
	assert.Contains(t, html, "Customer Journey Flow (Product Transitions)")
	assert.Contains(t, html, `id="chart-journey"`)
	assert.Contains(t, html, "echarts.min.js")
	assert.NotContains(t, html, `role="alert"`)
	assert.NotContains(t, html, "http-equiv=\"refresh\"")
}

func TestRenderPage_LoadingSinGraficos(t *testing.T) {
	html := render(t, &dto.DashboardViewDTO{State: dto.StateLoading, Title: "Dash", Failures: []dto.EndpointFailureDTO{}})

	assert.Contains(t, html, "Loading customer journey analytics...")
	assert.Contains(t, html, `http-equiv="refresh"`)
	assert.NotContains(t, html, "echarts.min.js")
}

func TestRenderPage_SinAristasOmiteSankey(t *testing.T) {
	view := readyView()
	view.Journey = nil

	html := render(t, view)

	assert.NotContains(t, html, `id="chart-journey"`)
	assert.Contains(t, html, `id="chart-category"`)
	assert.Contains(t, html, `id="chart-monthly"`)
}

// Backend sin datos todavía: ciclo ready pero sin secciones.
func TestRenderPage_ReadySinSeccionesMuestraAviso(t *testing.T) {
	html := render(t, &dto.DashboardViewDTO{State: dto.StateReady, Title: "Dash", Failures: []dto.EndpointFailureDTO{}})

	assert.Contains(t, html, "No analytics data to show yet.")
	assert.NotContains(t, html, "echarts.min.js")

	assert.NotContains(t, render(t, readyView()), "No analytics data to show yet.")
}

func TestRenderPage_DegradadoMuestraBanner(t *testing.T) {
	view := readyView()
	view.State = dto.StateDegraded
	view.Journey = nil
	view.Failures = []dto.EndpointFailureDTO{
		{Endpoint: "/journey/edges", Code: "NOT_READY", Retryable: true},
	}

	html := render(t, view)

	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Some sections could not be loaded.")
	assert.Contains(t, html, "/journey/edges")
	assert.Contains(t, html, "try again shortly")
}

func TestRenderPage_FailedSoloBanner(t *testing.T) {
	html := render(t, &dto.DashboardViewDTO{
		State: dto.StateFailed, Title: "Dash",
		Failures: []dto.EndpointFailureDTO{{Endpoint: "/analytics/overview", Code: "NETWORK"}},
	})

	assert.Contains(t, html, "The dashboard could not be loaded.")
	assert.NotContains(t, html, "echarts.min.js")
	assert.NotContains(t, html, "No analytics data to show yet.")
}

// Un nombre de producto malicioso no puede cerrar el <script> de la página.
func TestRenderPage_EscapaNombresEnOpciones(t *testing.T) {
	view := readyView()
	view.Journey = &entity.SankeyGraph{
		Nodes: []entity.SankeyNode{{Name: "</script><script>alert(1)</script>"}, {Name: "B"}},
		Links: []entity.SankeyLink{{Source: "</script><script>alert(1)</script>", Target: "B", Value: 1}},
	}

	html := render(t, view)
	assert.NotContains(t, html, "<script>alert(1)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Opciones ECharts
// ──────────────────────────────────────────────────────────────────────────────

func TestBarOption_ConservaOrdenDeBarras(t *testing.T) {
	opt, err := charts.BarOption(readyView().RevenueByCategory)
	require.NoError(t, err)

	s := string(opt)
	assert.Contains(t, s, `"bar"`)
	assert.Contains(t, s, "#4f46e5")
	a, b := strings.Index(s, `"A"`), strings.Index(s, `"B"`)
	require.NotEqual(t, -1, a)
	require.NotEqual(t, -1, b)
	assert.Less(t, a, b)
}

func TestSankeyOption_OmiteAutoEnlaces(t *testing.T) {
	g := &entity.SankeyGraph{
		Nodes: []entity.SankeyNode{{Name: "Kundli"}, {Name: "Puja"}},
		Links: []entity.SankeyLink{
			{Source: "Kundli", Target: "Puja", Value: 2},
			{Source: "Puja", Target: "Puja", Value: 9},
		},
	}

	opt, err := charts.SankeyOption(g)
	require.NoError(t, err)

	s := string(opt)
	assert.Contains(t, s, `"sankey"`)
	assert.Contains(t, s, `"nodeGap":20`)
	assert.Equal(t, 1, strings.Count(s, `"target":`), "solo queda el enlace Kundli→Puja")
}

type sankeyOptionLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// optionLinks extrae los enlaces de la primera serie de la opción emitida.
func optionLinks(t *testing.T, opt string) []sankeyOptionLink {
	t.Helper()
	var parsed struct {
		Series []struct {
			Links []sankeyOptionLink `json:"links"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal([]byte(opt), &parsed))
	require.Len(t, parsed.Series, 1)
	return parsed.Series[0].Links
}

// Un par inverso A→B / B→A haría fallar el layout sankey en el navegador.
func TestSankeyOption_SinCiclos(t *testing.T) {
	g := journey.BuildSankey([]entity.JourneyEdge{
		{Source: "Kundli", Target: "Gemstone", Value: 4},
		{Source: "Gemstone", Target: "Kundli", Value: 1},
		{Source: "Gemstone", Target: "Puja", Value: 2},
		{Source: "Puja", Target: "Kundli", Value: 3},
	})

	opt, err := charts.SankeyOption(&g)
	require.NoError(t, err)

	assert.Equal(t, []sankeyOptionLink{
		{Source: "Kundli", Target: "Gemstone", Value: 4},
		{Source: "Gemstone", Target: "Puja", Value: 2},
	}, optionLinks(t, string(opt)))
	assert.Len(t, g.Links, 4, "el grafo de la vista no se recorta")
}

func TestSankeyOption_ValorSinPerdidaDePrecision(t *testing.T) {
	g := &entity.SankeyGraph{
		Nodes: []entity.SankeyNode{{Name: "A"}, {Name: "B"}},
		Links: []entity.SankeyLink{{Source: "A", Target: "B", Value: 16777217}},
	}

	opt, err := charts.SankeyOption(g)
	require.NoError(t, err)

	links := optionLinks(t, string(opt))
	require.Len(t, links, 1)
	assert.Equal(t, 16777217.0, links[0].Value)
}
