package repository

import (
	"context"

	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
)

// AnalyticsSource define las consultas de lectura contra el backend de analítica.
// Las implementaciones son read-only y no cachean; cada llamada va al backend.
// Toda la agregación (ingresos, aristas de recorrido) ocurre del otro lado.
type AnalyticsSource interface {
	// GetOverview devuelve los totales globales. (nil, nil) significa "sin datos".
	GetOverview(ctx context.Context) (*entity.OverviewStats, error)

	// GetRevenue devuelve el desglose por categoría y mensual.
	GetRevenue(ctx context.Context) (*entity.RevenueReport, error)

	// GetJourneyEdges devuelve las transiciones agregadas entre productos.
	GetJourneyEdges(ctx context.Context) ([]entity.JourneyEdge, error)
}

// Rutas fijas del backend; también identifican cada sección en la vista y en los logs.
const (
	EndpointOverview = "/analytics/overview"
	EndpointRevenue  = "/analytics/revenue"
	EndpointEdges    = "/journey/edges"
)
