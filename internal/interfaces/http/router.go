package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	// MountCtx contexto del servidor; los reload montan la sesión con él.
	MountCtx  context.Context
	Session   *analytics.Session
	Presenter *analytics.Presenter
	Page      analytics.PageRenderer
	Report    analytics.ReportGenerator
	Log       *logger.Logger
	// Service nombre del servicio en /health.
	Service   string
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	mountCtx := deps.MountCtx
	if mountCtx == nil {
		mountCtx = context.Background()
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	dashboardHandler := NewDashboardHandler(mountCtx, deps.Session, deps.Presenter, deps.Page, deps.Report, log)

	healthHandler := NewHealthHandler(deps.Service)
	app.Get("/health", healthHandler.Check)

	// Página HTML
	app.Get("/", dashboardHandler.GetPage)

	// API JSON + exportación
	dashboard := app.Group("/api/dashboard")
	dashboard.Get("/", dashboardHandler.GetView)
	dashboard.Post("/reload", dashboardHandler.Reload)
	dashboard.Get("/export.pdf", dashboardHandler.ExportPDF)
}
