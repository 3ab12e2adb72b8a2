package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/analyticsapi"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/charts"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/journey-dashboard/internal/interfaces/http"
	"github.com/jhoicas/journey-dashboard/pkg/format"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	overviewJSON = `{"total_revenue": 1500.5, "total_orders": 12}`
	revenueJSON  = `{"by_category": [{"category":"Kundli","amount":900},{"category":"Puja","amount":600.5}],
	                 "monthly": [{"month":"2024-01","amount":1000},{"month":"2024-02","amount":500.5}]}`
	edgesJSON = `[{"source":"X","target":"Y","value":5},{"source":"Y","target":"Z","value":3}]`
)

// backend simula el servicio de analítica. Si gate no es nil, las respuestas
// esperan a que se cierre.
type backend struct {
	edgesStatus int
	gate        chan struct{}
	once        sync.Once
}

func (b *backend) release() {
	if b.gate != nil {
		b.once.Do(func() { close(b.gate) })
	}
}

func (b *backend) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	hold := func(w http.ResponseWriter, r *http.Request) bool {
		if b.gate == nil {
			return true
		}
		select {
		case <-b.gate:
			return true
		case <-r.Context().Done():
			return false
		}
	}
	mux.HandleFunc("/analytics/overview", func(w http.ResponseWriter, r *http.Request) {
		if hold(w, r) {
			_, _ = io.WriteString(w, overviewJSON)
		}
	})
	mux.HandleFunc("/analytics/revenue", func(w http.ResponseWriter, r *http.Request) {
		if hold(w, r) {
			_, _ = io.WriteString(w, revenueJSON)
		}
	})
	mux.HandleFunc("/journey/edges", func(w http.ResponseWriter, r *http.Request) {
		if !hold(w, r) {
			return
		}
		if b.edgesStatus != 0 {
			w.WriteHeader(b.edgesStatus)
			_, _ = io.WriteString(w, `{"detail":"Data not loaded yet. Please wait..."}`)
			return
		}
		_, _ = io.WriteString(w, edgesJSON)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	// Cleanup es LIFO: se libera el gate antes de cerrar el servidor.
	t.Cleanup(b.release)
	return srv
}

type testEnv struct {
	app     *fiber.App
	session *analytics.Session
}

func buildTestApp(t *testing.T, b *backend, strict bool) testEnv {
	t.Helper()
	srv := b.start(t)

	log := logger.Nop()
	client := analyticsapi.NewClient(srv.URL, 5*time.Second)
	uc := analytics.NewDashboardUseCase(client, log, 0)
	session := analytics.NewSession(uc)

	nf := format.New("en", "₹")
	page, err := charts.NewEChartsPageRenderer(nf)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.AccessLog(log))
	apphttp.Router(app, apphttp.RouterDeps{
		MountCtx:  context.Background(),
		Session:   session,
		Presenter: analytics.NewPresenter("Customer Journey Dashboard", strict),
		Page:      page,
		Report:    pdf.NewMarotoDashboardPDF(charts.NewPNGBarRenderer(), nf),
		Log:       log,
		Service:   "journey-dashboard",
	})
	t.Cleanup(session.Unmount)

	return testEnv{app: app, session: session}
}

// mountAndWait monta la sesión y espera a que termine el ciclo.
func (e testEnv) mountAndWait(t *testing.T) {
	t.Helper()
	e.session.Mount(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.session.Wait(ctx))
}

func doRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeView(t *testing.T, resp *http.Response) dto.DashboardViewDTO {
	t.Helper()
	var view dto.DashboardViewDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	return view
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetView_SinMontarEsLoading(t *testing.T) {
	env := buildTestApp(t, &backend{}, false)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	view := decodeView(t, resp)
	assert.Equal(t, dto.StateLoading, view.State)
	assert.Nil(t, view.Overview)
	assert.Empty(t, view.Failures)
}

func TestGetView_Ready(t *testing.T) {
	env := buildTestApp(t, &backend{}, false)
	env.mountAndWait(t)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard")
	defer resp.Body.Close()

	view := decodeView(t, resp)
	assert.Equal(t, dto.StateReady, view.State)
	require.NotNil(t, view.Overview)
	assert.Equal(t, int64(12), view.Overview.TotalOrders)
	require.NotNil(t, view.RevenueByCategory)
	assert.Len(t, view.RevenueByCategory.Bars, 2)
	require.NotNil(t, view.MonthlyRevenue)
	assert.Equal(t, "2024-01", view.MonthlyRevenue.Bars[0].Label)
	require.NotNil(t, view.Journey)
	assert.Len(t, view.Journey.Nodes, 3)
	assert.Len(t, view.Journey.Links, 2)
	assert.NotEmpty(t, view.CycleID)
}

// El backend de aristas aún no terminó de cargar: el resto del dashboard se muestra.
func TestGetView_DegradadoPorAristas503(t *testing.T) {
	env := buildTestApp(t, &backend{edgesStatus: http.StatusServiceUnavailable}, false)
	env.mountAndWait(t)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard")
	defer resp.Body.Close()

	view := decodeView(t, resp)
	assert.Equal(t, dto.StateDegraded, view.State)
	assert.NotNil(t, view.Overview)
	assert.NotNil(t, view.RevenueByCategory)
	assert.Nil(t, view.Journey)
	require.Len(t, view.Failures, 1)
	assert.Equal(t, "/journey/edges", view.Failures[0].Endpoint)
	assert.Equal(t, "NOT_READY", view.Failures[0].Code)
	assert.True(t, view.Failures[0].Retryable)
}

func TestGetView_StrictFallaConUnEndpoint(t *testing.T) {
	env := buildTestApp(t, &backend{edgesStatus: http.StatusInternalServerError}, true)
	env.mountAndWait(t)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard")
	defer resp.Body.Close()

	view := decodeView(t, resp)
	assert.Equal(t, dto.StateFailed, view.State)
	assert.Nil(t, view.Overview)
	assert.Nil(t, view.RevenueByCategory)
	require.Len(t, view.Failures, 1)
	assert.Equal(t, "UPSTREAM_STATUS", view.Failures[0].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPage_LoadingYLuegoGraficos(t *testing.T) {
	b := &backend{gate: make(chan struct{})}
	env := buildTestApp(t, b, false)
	env.session.Mount(context.Background())

	resp := doRequest(t, env.app, http.MethodGet, "/")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, string(body), "Loading customer journey analytics...")

	b.release()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.session.Wait(ctx))

	resp = doRequest(t, env.app, http.MethodGet, "/")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Contains(t, string(body), "Revenue by Category")
	assert.Contains(t, string(body), "Monthly Revenue Trend")
	assert.Contains(t, string(body), "Customer Journey Flow (Product Transitions)")
	assert.Contains(t, string(body), "₹1,500.5")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/dashboard/reload
// ──────────────────────────────────────────────────────────────────────────────

func TestReload_VuelveALoadingYProgramaCiclo(t *testing.T) {
	b := &backend{gate: make(chan struct{})}
	env := buildTestApp(t, b, false)

	resp := doRequest(t, env.app, http.MethodPost, "/api/dashboard/reload")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	var body dto.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "scheduled", body.Status)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	assert.Nil(t, env.session.Current(), "mientras el backend no responde la vista es loading")

	b.release()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.session.Wait(ctx))
	assert.NotNil(t, env.session.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard/export.pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestExportPDF_ConflictoMientrasCarga(t *testing.T) {
	env := buildTestApp(t, &backend{}, false)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard/export.pdf")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_READY")
}

func TestExportPDF_OK(t *testing.T) {
	env := buildTestApp(t, &backend{}, false)
	env.mountAndWait(t)

	resp := doRequest(t, env.app, http.MethodGet, "/api/dashboard/export.pdf")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "journey-dashboard.pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_OKSinConsultarBackend(t *testing.T) {
	b := &backend{gate: make(chan struct{})}
	env := buildTestApp(t, b, false)
	env.session.Mount(context.Background())

	resp := doRequest(t, env.app, http.MethodGet, "/health")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "journey-dashboard", body.Service)
}
