package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/germatek-api/internal/application/dto"
	"github.com/jhoicas/germatek-api/internal/application/usecase"
	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/pkg/logger"
)

// QuoteHandler maneja las peticiones HTTP de cotización (público).
type QuoteHandler struct {
	uc  *usecase.QuoteUseCase
	log *logger.Logger
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Estimar cotización
// @Description  Calcula el rango estimado (low/high) para un producto y sus medidas en metros.
// @Description  Un producto desconocido se cotiza con la regla "other".
// @Tags         quote
// @Accept       json
// @Produce      json
// @Param        body  body      dto.QuoteRequest  true  "product, width_m, height_m, qty (número o string numérico) y datos de contacto opcionales"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/quote [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body.",
			Code:  "INVALID_BODY",
		})
	}
	out, err := h.uc.Estimate(in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar PDF de la estimación
// @Description  Verifica la referencia firmada, recalcula la estimación y devuelve el PDF.
// @Tags         quote
// @Produce      application/pdf
// @Param        reference  path  string  true  "Referencia devuelta por POST /api/quote"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/quote/pdf/{reference} [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "reference is required", Code: "INVALID_REFERENCE"})
	}
	pdfBytes, filename, err := h.uc.DownloadPDF(c.UserContext(), reference)
	if err != nil {
		return h.respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return c.Send(pdfBytes)
}

// WhatsApp godoc
// @Summary      Enlace de WhatsApp
// @Description  Enlace wa.me con el mensaje genérico de consulta de la marca.
// @Tags         quote
// @Produce      json
// @Success      200  {object}  dto.LinkResponse
// @Router       /api/whatsapp [get]
func (h *QuoteHandler) WhatsApp(c *fiber.Ctx) error {
	return c.JSON(dto.LinkResponse{URL: h.uc.EnquiryLink()})
}

// respondError traduce errores de dominio a status HTTP.
// Las validaciones son un caso esperado: solo se registran en debug.
func (h *QuoteHandler) respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.log.Debug().Str("field", verr.Field).Str("reason", verr.Message).Msg("validación de cotización")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid input: " + verr.Error(),
			Code:  "VALIDATION",
			Field: verr.Field,
		})
	case errors.Is(err, domain.ErrDisabled):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "quote references are disabled", Code: "DISABLED"})
	case errors.Is(err, domain.ErrExpired):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Error: "reference has expired", Code: "EXPIRED"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid reference", Code: "INVALID_REFERENCE"})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error", Code: "INTERNAL"})
}
