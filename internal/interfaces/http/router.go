package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/germatek-api/internal/application/usecase"
	"github.com/jhoicas/germatek-api/pkg/config"
	"github.com/jhoicas/germatek-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QuoteUC   *usecase.QuoteUseCase
	CatalogUC *usecase.CatalogUseCase
	Log       *logger.Logger
	RateLimit config.RateLimitConfig // Max <= 0 = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api", RequestLogger(log.Component("http")))

	api.Get("/health", Health)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)

	quoteHandler := NewQuoteHandler(deps.QuoteUC, log.Component("quote"))
	api.Post("/quote", QuoteRateLimiter(deps.RateLimit), quoteHandler.Create)
	api.Get("/quote/pdf/:reference", quoteHandler.DownloadPDF)
	api.Get("/whatsapp", quoteHandler.WhatsApp)
}
