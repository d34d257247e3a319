package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/germatek-api/internal/application/dto"
)

// Health godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true, Timestamp: time.Now().UTC().Format(time.RFC3339)})
}
