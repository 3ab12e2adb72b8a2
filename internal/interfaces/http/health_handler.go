package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/journey-dashboard/internal/application/dto"
)

// HealthHandler responde el chequeo de vida del servicio.
type HealthHandler struct {
	service string
}

// NewHealthHandler construye el handler con el nombre del servicio.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check godoc
// @Summary      Chequeo de vida
// @Description  Responde 200 mientras el proceso esté arriba; no consulta el backend de analítica.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{Status: "ok", Service: h.service})
}
