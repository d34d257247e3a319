package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/germatek-api/internal/application/usecase"
)

// CatalogHandler expone el catálogo de precios vigente.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos cotizables
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
