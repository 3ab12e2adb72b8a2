package analytics

import (
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
)

// Presenter compuerta de render: convierte una Snapshot en la vista del dashboard.
//
//   - nil                          → loading
//   - sin fallos                   → ready
//   - fallos parciales             → degraded (secciones con datos + lista de fallos)
//   - todo falló, o strict y algún fallo → failed (sin secciones)
type Presenter struct {
	title  string
	strict bool
}

// NewPresenter construye la compuerta. strict=true deja el dashboard en blanco ante cualquier fallo.
func NewPresenter(title string, strict bool) *Presenter {
	return &Presenter{title: title, strict: strict}
}

// Present es pura: la misma Snapshot produce siempre la misma vista.
func (p *Presenter) Present(s *Snapshot) *dto.DashboardViewDTO {
	view := &dto.DashboardViewDTO{
		State:    dto.StateLoading,
		Title:    p.title,
		Failures: []dto.EndpointFailureDTO{},
	}
	if s == nil {
		return view
	}

	startedAt, settledAt := s.StartedAt, s.SettledAt
	view.CycleID = s.CycleID
	view.StartedAt = &startedAt
	view.SettledAt = &settledAt
	view.Failures = s.Failures()

	if len(view.Failures) == 3 || (p.strict && len(view.Failures) > 0) {
		view.State = dto.StateFailed
		return view
	}

	if s.Overview.IsOk() {
		view.Overview = OverviewSection(s.Overview.Value)
	}
	if s.Revenue.IsOk() {
		view.RevenueByCategory = CategoryBars(s.Revenue.Value)
		view.MonthlyRevenue = MonthlyBars(s.Revenue.Value)
	}
	if s.Edges.IsOk() {
		view.Journey = JourneyGraph(s.Edges.Value)
	}

	view.State = dto.StateReady
	if len(view.Failures) > 0 {
		view.State = dto.StateDegraded
	}
	return view
}
