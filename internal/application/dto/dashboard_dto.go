package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
)

// Estados de la vista del dashboard.
const (
	StateLoading  = "loading"  // ciclo de carga en curso
	StateReady    = "ready"    // los tres endpoints respondieron
	StateDegraded = "degraded" // algunos endpoints fallaron; se muestran las secciones con datos
	StateFailed   = "failed"   // no hay nada que mostrar
)

// DashboardViewDTO respuesta de GET /api/dashboard; también alimenta la página HTML y el PDF.
// Instantánea inmutable: se arma una vez por ciclo y nunca se modifica.
type DashboardViewDTO struct {
	State     string     `json:"state"`
	Title     string     `json:"title"`
	CycleID   string     `json:"cycle_id,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	SettledAt *time.Time `json:"settled_at,omitempty"`

	// Secciones; nil = nada que mostrar (no es error)
	Overview          *OverviewDTO        `json:"overview,omitempty"`
	RevenueByCategory *BarChartDTO        `json:"revenue_by_category,omitempty"`
	MonthlyRevenue    *BarChartDTO        `json:"monthly_revenue,omitempty"`
	Journey           *entity.SankeyGraph `json:"journey,omitempty"`

	// Un elemento por endpoint que falló en el ciclo
	Failures []EndpointFailureDTO `json:"failures"`
}

// Settled indica si el ciclo ya terminó (cualquier estado distinto de loading).
func (v *DashboardViewDTO) Settled() bool {
	return v.State != StateLoading
}

// HasSections indica si hay al menos una sección con datos.
func (v *DashboardViewDTO) HasSections() bool {
	return v.Overview != nil || v.RevenueByCategory != nil || v.MonthlyRevenue != nil || v.Journey != nil
}

// OverviewDTO totales del encabezado.
type OverviewDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
}

// BarChartDTO serie de barras lista para el gráfico; el orden es el del backend.
type BarChartDTO struct {
	Title string   `json:"title"`
	XKey  string   `json:"x_key"` // "category" o "month"
	Color string   `json:"color"`
	Bars  []BarDTO `json:"bars"`
}

// BarDTO una barra: etiqueta del eje X y monto.
type BarDTO struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// EndpointFailureDTO resultado Err(reason) de un endpoint.
type EndpointFailureDTO struct {
	Endpoint  string `json:"endpoint"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}
