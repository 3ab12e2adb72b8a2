package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/journey-dashboard/docs"
	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/analyticsapi"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/charts"
	infrapdf "github.com/jhoicas/journey-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/journey-dashboard/internal/interfaces/http"
	"github.com/jhoicas/journey-dashboard/pkg/config"
	"github.com/jhoicas/journey-dashboard/pkg/format"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

// @title        Customer Journey Dashboard
// @version      1.0
// @description  Dashboard de ingresos y recorrido de clientes sobre el backend de analítica.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("failure_mode", cfg.Dashboard.FailureMode).
		Msg("iniciando aplicación")

	// Contexto del servidor: los ciclos de carga viven mientras el proceso esté arriba.
	serverCtx, stopCycles := context.WithCancel(context.Background())
	defer stopCycles()

	client := analyticsapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout())
	dashboardUC := analytics.NewDashboardUseCase(client, log, cfg.Backend.Timeout())
	session := analytics.NewSession(dashboardUC)
	presenter := analytics.NewPresenter(cfg.Dashboard.Title, cfg.Dashboard.FailureMode == config.FailureModeStrict)

	nf := format.New(cfg.Dashboard.Locale, cfg.Dashboard.Currency)
	pageRenderer, err := charts.NewEChartsPageRenderer(nf)
	if err != nil {
		log.Fatal().Err(err).Msg("plantilla del dashboard")
	}
	// PDF: gráficos de barras como PNG (go-chart) dentro de un documento Maroto
	pdfGenerator := infrapdf.NewMarotoDashboardPDF(charts.NewPNGBarRenderer(), nf)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Customer Journey Dashboard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MountCtx:  serverCtx,
		Session:   session,
		Presenter: presenter,
		Page:      pageRenderer,
		Report:    pdfGenerator,
		Log:       log,
		Service:   cfg.App.Name,
	})

	// Montar el dashboard: un único ciclo de carga, sin polling.
	session.Mount(serverCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Desmontar: cancela las peticiones pendientes al backend.
	session.Unmount()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
