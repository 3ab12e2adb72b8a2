// export ejecuta un único ciclo de carga contra el backend de analítica y
// escribe el dashboard a un archivo, sin levantar el servidor HTTP.
//
// Uso: go run ./cmd/export [--out dashboard.pdf] [--json] [--backend http://host:8000]
// Por defecto escribe journey-dashboard.pdf (o journey-dashboard.json con --json).
// Sale con código 1 si el dashboard quedó en estado failed o si algo no se pudo escribir.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/analyticsapi"
	"github.com/jhoicas/journey-dashboard/internal/infrastructure/charts"
	infrapdf "github.com/jhoicas/journey-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/journey-dashboard/pkg/config"
	"github.com/jhoicas/journey-dashboard/pkg/format"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.StringP("out", "o", "", "archivo de salida")
	asJSON := fs.Bool("json", false, "escribir la vista JSON en lugar del PDF")
	backendURL := fs.String("backend", "", "URL base del backend (sobrescribe BACKEND_URL)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Cargar configuración: %v\n", err)
		return 1
	}
	if *backendURL != "" {
		cfg.Backend.BaseURL = strings.TrimRight(*backendURL, "/")
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Configuración inválida: %v\n", err)
			return 1
		}
	}
	if *out == "" {
		*out = "journey-dashboard.pdf"
		if *asJSON {
			*out = "journey-dashboard.json"
		}
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: stderr})

	client := analyticsapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout())
	uc := analytics.NewDashboardUseCase(client, log, cfg.Backend.Timeout())
	presenter := analytics.NewPresenter(cfg.Dashboard.Title, cfg.Dashboard.FailureMode == config.FailureModeStrict)

	view := presenter.Present(uc.Load(ctx))

	var data []byte
	if *asJSON {
		data, err = json.MarshalIndent(view, "", "  ")
	} else {
		nf := format.New(cfg.Dashboard.Locale, cfg.Dashboard.Currency)
		data, err = infrapdf.NewMarotoDashboardPDF(charts.NewPNGBarRenderer(), nf).GenerateDashboardPDF(ctx, view)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Generar salida: %v\n", err)
		return 1
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(stderr, "Escribir %s: %v\n", *out, err)
		return 1
	}

	log.Info().
		Str("out", *out).
		Str("state", view.State).
		Int("failures", len(view.Failures)).
		Msg("dashboard exportado")

	if view.State == dto.StateFailed {
		return 1
	}
	return 0
}
