// Package analyticsapi implementa repository.AnalyticsSource contra el backend
// de analítica (FastAPI) vía HTTP GET + JSON.
package analyticsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/journey-dashboard/internal/domain"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/internal/domain/repository"
)

// Verificar en tiempo de compilación que Client implementa AnalyticsSource.
var _ repository.AnalyticsSource = (*Client)(nil)

const (
	// maxBodyBytes límite de lectura por respuesta; la lista de aristas es la más grande.
	maxBodyBytes = 8 << 20

	statusLoading = "loading"
	statusEmpty   = "empty"
)

// Client adaptador HTTP del backend de analítica.
// Usa net/http de la librería estándar; cada request lleva el contexto del llamador,
// de modo que cancelar el ciclo de carga aborta las peticiones pendientes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL sin barra final, ej: "http://127.0.0.1:8000".
// timeout es el tope de red por request (0 = sin tope; el ciclo impone el suyo vía contexto).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ── Estructuras internas del contrato del backend ────────────────────────────

// statusEnvelope respuesta del backend mientras recalcula o cuando no hay datos.
type statusEnvelope struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Progress int    `json:"progress"`
}

type overviewPayload struct {
	statusEnvelope
	TotalRevenue *decimal.Decimal `json:"total_revenue"`
	TotalOrders  *int64           `json:"total_orders"`
}

type revenuePayload struct {
	statusEnvelope
	ByCategory []entity.CategoryRevenue `json:"by_category"`
	Monthly    []entity.MonthlyRevenue  `json:"monthly"`
}

// errorPayload cuerpo de error de FastAPI: {"detail": "..."} (detail puede ser lista en 422).
type errorPayload struct {
	Detail json.RawMessage `json:"detail"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GetOverview GET /analytics/overview.
func (c *Client) GetOverview(ctx context.Context) (*entity.OverviewStats, error) {
	var p overviewPayload
	if err := c.getJSON(ctx, repository.EndpointOverview, &p); err != nil {
		return nil, err
	}
	switch p.Status {
	case statusLoading:
		return nil, &domain.NotReadyError{Progress: p.Progress, Message: p.Message}
	case statusEmpty:
		return nil, nil
	}
	if p.TotalRevenue == nil || p.TotalOrders == nil {
		return nil, fmt.Errorf("overview: faltan total_revenue/total_orders: %w", domain.ErrInvalidPayload)
	}
	return &entity.OverviewStats{TotalRevenue: *p.TotalRevenue, TotalOrders: *p.TotalOrders}, nil
}

// GetRevenue GET /analytics/revenue.
func (c *Client) GetRevenue(ctx context.Context) (*entity.RevenueReport, error) {
	var p revenuePayload
	if err := c.getJSON(ctx, repository.EndpointRevenue, &p); err != nil {
		return nil, err
	}
	if p.Status == statusLoading {
		return nil, &domain.NotReadyError{Progress: p.Progress, Message: p.Message}
	}
	return &entity.RevenueReport{ByCategory: p.ByCategory, Monthly: p.Monthly}, nil
}

// GetJourneyEdges GET /journey/edges.
func (c *Client) GetJourneyEdges(ctx context.Context) ([]entity.JourneyEdge, error) {
	var edges []entity.JourneyEdge
	if err := c.getJSON(ctx, repository.EndpointEdges, &edges); err != nil {
		return nil, err
	}
	if edges == nil {
		edges = []entity.JourneyEdge{}
	}
	return edges, nil
}

// getJSON ejecuta el GET y decodifica el cuerpo en out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: crear HTTP request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: timeout o cancelación: %w", path, ctx.Err())
		}
		return fmt.Errorf("%s: %w: %v", path, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: timeout o cancelación: %w", path, ctx.Err())
		}
		return fmt.Errorf("%s: %w: leer respuesta: %v", path, domain.ErrBackendUnavailable, err)
	}
	if len(rawBody) > maxBodyBytes {
		return fmt.Errorf("%s: respuesta supera %d bytes: %w", path, maxBodyBytes, domain.ErrInvalidPayload)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w", path, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(rawBody),
		})
	}

	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("%s: %w: %v", path, domain.ErrInvalidPayload, err)
	}
	return nil
}

// extractDetail obtiene el mensaje "detail" de FastAPI, o el cuerpo recortado si no es JSON.
func extractDetail(body []byte) string {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err == nil && len(p.Detail) > 0 {
		var s string
		if json.Unmarshal(p.Detail, &s) == nil {
			return s
		}
		return string(p.Detail)
	}
	body = bytes.TrimSpace(body)
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}

