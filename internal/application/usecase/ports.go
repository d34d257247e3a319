package usecase

import (
	"context"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// ReferenceSigner firma y verifica referencias de cotización (token autocontenido).
// Verify devuelve domain.ErrExpired si venció y domain.ErrInvalidInput si la firma no es válida.
type ReferenceSigner interface {
	Sign(req entity.QuoteRequest) (token, id string, err error)
	Verify(token string) (req entity.QuoteRequest, id string, err error)
}

// QuotePDFData datos que necesita el generador de PDF.
type QuotePDFData struct {
	Brand       entity.Brand
	Request     entity.QuoteRequest
	Estimate    *entity.QuoteEstimate
	ReferenceID string
	WhatsAppURL string // se imprime como QR
}

// QuotePDFGenerator genera la representación en PDF de una estimación.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, data QuotePDFData) ([]byte, error)
}
