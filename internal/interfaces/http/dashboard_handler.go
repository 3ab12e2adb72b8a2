package http

import (
	"bytes"
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/journey-dashboard/internal/application/analytics"
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain"
	"github.com/jhoicas/journey-dashboard/pkg/logger"
)

const exportFilename = "journey-dashboard.pdf"

// DashboardHandler maneja los endpoints del dashboard de customer journey.
type DashboardHandler struct {
	session   *analytics.Session
	presenter *analytics.Presenter
	page      analytics.PageRenderer
	report    analytics.ReportGenerator
	mountCtx  context.Context
	log       *logger.Logger
}

// NewDashboardHandler construye el handler. mountCtx es el contexto con el que
// se vuelve a montar la sesión en un reload (vida del servidor, no de la petición).
func NewDashboardHandler(
	mountCtx context.Context,
	session *analytics.Session,
	presenter *analytics.Presenter,
	page analytics.PageRenderer,
	report analytics.ReportGenerator,
	log *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		session:   session,
		presenter: presenter,
		page:      page,
		report:    report,
		mountCtx:  mountCtx,
		log:       log,
	}
}

func (h *DashboardHandler) view() *dto.DashboardViewDTO {
	return h.presenter.Present(h.session.Current())
}

// GetPage godoc
// @Summary      Dashboard HTML
// @Description  Página con el resumen, los gráficos de ingresos y el diagrama de flujo del
//               customer journey. Mientras carga muestra un aviso y se refresca sola.
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string  "página HTML"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       / [get]
func (h *DashboardHandler) GetPage(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.page.RenderPage(&buf, h.view()); err != nil {
		h.log.Error().Err(err).Msg("renderizar página del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo renderizar el dashboard",
		})
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// GetView godoc
// @Summary      Vista del dashboard
// @Description  Estado del ciclo de carga (loading, ready, degraded, failed), secciones con
//               datos y lista de endpoints que fallaron.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardViewDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetView(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

// Reload godoc
// @Summary      Recargar el dashboard
// @Description  Cancela el ciclo en curso (si lo hay) y lanza uno nuevo. La vista vuelve a loading.
// @Tags         dashboard
// @Produce      json
// @Success      202  {object}  dto.StatusResponse
// @Router       /api/dashboard/reload [post]
func (h *DashboardHandler) Reload(c *fiber.Ctx) error {
	h.session.Mount(h.mountCtx)
	h.log.Info().Str("request_id", requestID(c)).Msg("dashboard: nuevo ciclo de carga")

	return c.Status(fiber.StatusAccepted).JSON(dto.StatusResponse{Status: "scheduled"})
}

// ExportPDF godoc
// @Summary      Exportar el dashboard a PDF
// @Description  Genera el PDF de la vista actual. Responde 409 mientras el ciclo de carga no termina.
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export.pdf [get]
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	view := h.view()
	if !view.Settled() {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: domain.CodeNotReady, Message: "el dashboard todavía está cargando",
		})
	}

	pdf, err := h.report.GenerateDashboardPDF(c.UserContext(), view)
	if err != nil {
		h.log.Error().Err(err).Str("cycle_id", view.CycleID).Msg("exportar PDF del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "no se pudo generar el PDF",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(exportFilename)
	return c.Send(pdf)
}
