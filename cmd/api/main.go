// @title        Germatek Quote API
// @version      1.0
// @description  Quote estimator API for the Germatek website: price ranges, PDF estimates and WhatsApp links.
// @BasePath     /
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

	_ "github.com/jhoicas/germatek-api/docs"
	"github.com/jhoicas/germatek-api/internal/application/usecase"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
	"github.com/jhoicas/germatek-api/internal/infrastructure/catalog"
	infrapdf "github.com/jhoicas/germatek-api/internal/infrastructure/pdf"
	"github.com/jhoicas/germatek-api/internal/infrastructure/reference"
	httpRouter "github.com/jhoicas/germatek-api/internal/interfaces/http"
	"github.com/jhoicas/germatek-api/pkg/config"
	"github.com/jhoicas/germatek-api/pkg/logger"
)

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
		Str("pricing_source", cfg.Pricing.Source).
		Msg("iniciando aplicación")

	// Catálogo: se lee una vez; con postgres la conexión se cierra al terminar la carga.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := catalog.Source{Pricing: cfg.Pricing, DB: cfg.DB}.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de precios")
	}
	log.Info().Int("rules", cat.Len()).Msg("catálogo cargado")

	estimator, err := quote.NewEstimator(cat, quote.Policy{
		MinJob:   cfg.Pricing.MinJob,
		Band:     cfg.Pricing.Band,
		Currency: cfg.Pricing.Currency,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("política de precios")
	}

	brand := entity.Brand{
		Name:           cfg.Brand.Name,
		Slogan:         cfg.Brand.Slogan,
		WhatsAppNumber: cfg.Brand.WhatsAppNumber,
		Email:          cfg.Brand.Email,
		Coverage:       cfg.Brand.Coverage,
	}

	// Referencias firmadas + PDF: solo si hay QUOTE_TOKEN_SECRET.
	// Se declaran como interfaz para que "deshabilitado" sea nil de verdad.
	var (
		signer usecase.ReferenceSigner
		pdfGen usecase.QuotePDFGenerator
	)
	if cfg.Token.Enabled() {
		s, err := reference.NewJWTSigner(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.TTL)
		if err != nil {
			log.Fatal().Err(err).Msg("firmador de referencias")
		}
		signer = s
		pdfGen = infrapdf.NewMarotoPDFGenerator()
	} else {
		log.Warn().Msg("QUOTE_TOKEN_SECRET vacío: referencias y PDF deshabilitados")
	}

	quoteUC := usecase.NewQuoteUseCase(estimator, brand, signer, pdfGen)
	catalogUC := usecase.NewCatalogUseCase(cat, cfg.Pricing.Currency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Germatek Quote API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuoteUC:   quoteUC,
		CatalogUC: catalogUC,
		Log:       log,
		RateLimit: cfg.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
