package analytics

import (
	"context"
	"io"

	"github.com/jhoicas/journey-dashboard/internal/application/dto"
)

// PageRenderer define el puerto de salida para la página HTML del dashboard.
type PageRenderer interface {
	// RenderPage escribe la página completa para la vista dada (cualquier estado).
	RenderPage(w io.Writer, view *dto.DashboardViewDTO) error
}

// ReportGenerator define el puerto de salida para la exportación del dashboard.
type ReportGenerator interface {
	// GenerateDashboardPDF devuelve los bytes del PDF. La vista debe estar asentada.
	GenerateDashboardPDF(ctx context.Context, view *dto.DashboardViewDTO) ([]byte, error)
}
