// Package analytics contiene los casos de uso del Dashboard de recorrido de
// clientes: carga concurrente de los tres endpoints, forma de los datos para
// los gráficos y la compuerta de render (loading / ready / degraded / failed).
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/internal/domain/repository"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

// Snapshot resultado inmutable de un ciclo de carga.
// Cada endpoint escribe en su propio campo; un fallo no descarta los demás.
type Snapshot struct {
	CycleID   string
	StartedAt time.Time
	SettledAt time.Time

	Overview Result[*entity.OverviewStats]
	Revenue  Result[*entity.RevenueReport]
	Edges    Result[[]entity.JourneyEdge]
}

// Failures devuelve los endpoints fallidos en orden fijo (overview, revenue, edges).
func (s *Snapshot) Failures() []dto.EndpointFailureDTO {
	failures := make([]dto.EndpointFailureDTO, 0, 3)
	add := func(endpoint string, err error) {
		if err == nil {
			return
		}
		failures = append(failures, dto.EndpointFailureDTO{
			Endpoint:  endpoint,
			Code:      domain.FailureCode(err),
			Message:   err.Error(),
			Retryable: domain.IsTransient(err),
		})
	}
	add(repository.EndpointOverview, s.Overview.Err)
	add(repository.EndpointRevenue, s.Revenue.Err)
	add(repository.EndpointEdges, s.Edges.Err)
	return failures
}

// DashboardUseCase ejecuta un ciclo de carga: tres GET concurrentes y un join.
//
// Fuente de datos: AnalyticsSource (backend opaco, solo lectura).
// No cachea ni reintenta; cada llamada a Load es un ciclo nuevo.
type DashboardUseCase struct {
	source  repository.AnalyticsSource
	log     *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso. timeout 0 = sin tope por ciclo.
func NewDashboardUseCase(source repository.AnalyticsSource, log *logger.Logger, timeout time.Duration) *DashboardUseCase {
	return &DashboardUseCase{source: source, log: log, timeout: timeout, now: time.Now}
}

// Load ejecuta exactamente un ciclo y espera a que los tres endpoints terminen.
//
// Tres llamadas en paralelo:
//  1. GetOverview      → Snapshot.Overview
//  2. GetRevenue       → Snapshot.Revenue
//  3. GetJourneyEdges  → Snapshot.Edges
//
// Nunca devuelve error: cada fallo queda etiquetado en su Result y se registra en el log.
// Cancelar ctx aborta las peticiones pendientes; sus Result quedan con el error de contexto.
func (uc *DashboardUseCase) Load(ctx context.Context) *Snapshot {
	snap := &Snapshot{CycleID: uuid.NewString(), StartedAt: uc.now()}
	log := uc.log.Child(uc.log.With().Str("cycle_id", snap.CycleID))

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	// ── Goroutines para paralelizar las 3 peticiones ──────────────────────────
	overviewCh := make(chan Result[*entity.OverviewStats], 1)
	revenueCh := make(chan Result[*entity.RevenueReport], 1)
	edgesCh := make(chan Result[[]entity.JourneyEdge], 1)

	go func() {
		ov, err := uc.source.GetOverview(ctx)
		overviewCh <- Result[*entity.OverviewStats]{ov, err}
	}()
	go func() {
		rev, err := uc.source.GetRevenue(ctx)
		revenueCh <- Result[*entity.RevenueReport]{rev, err}
	}()
	go func() {
		edges, err := uc.source.GetJourneyEdges(ctx)
		edgesCh <- Result[[]entity.JourneyEdge]{edges, err}
	}()

	snap.Overview = <-overviewCh
	snap.Revenue = <-revenueCh
	snap.Edges = <-edgesCh
	snap.SettledAt = uc.now()

	failures := snap.Failures()
	for _, f := range failures {
		log.Error().
			Str("endpoint", f.Endpoint).
			Str("code", f.Code).
			Bool("retryable", f.Retryable).
			Msg("dashboard: fallo al cargar datos: " + f.Message)
	}
	log.Info().
		Int("failed", len(failures)).
		Int("edges", len(snap.Edges.Value)).
		Dur("elapsed", snap.SettledAt.Sub(snap.StartedAt)).
		Msg("dashboard: ciclo de carga finalizado")

	return snap
}
