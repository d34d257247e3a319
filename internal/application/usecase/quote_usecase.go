package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/germatek-api/internal/application/dto"
	"github.com/jhoicas/germatek-api/internal/application/whatsapp"
	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
)

// QuoteUseCase casos de uso de cotización: estimar, descargar PDF y enlace de WhatsApp.
// signer y pdf son opcionales (nil = referencias/PDF deshabilitados).
type QuoteUseCase struct {
	estimator *quote.Estimator
	brand     entity.Brand
	signer    ReferenceSigner
	pdf       QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(estimator *quote.Estimator, brand entity.Brand, signer ReferenceSigner, pdf QuotePDFGenerator) *QuoteUseCase {
	return &QuoteUseCase{estimator: estimator, brand: brand, signer: signer, pdf: pdf}
}

// Estimate valida la entrada y devuelve la estimación con su enlace de WhatsApp.
// Los errores de validación envuelven domain.ErrInvalidInput.
func (uc *QuoteUseCase) Estimate(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	req, err := in.ToEntity()
	if err != nil {
		return nil, err
	}
	est, err := uc.estimator.Estimate(req)
	if err != nil {
		return nil, err
	}

	out := &dto.QuoteResponse{
		OK:          true,
		Estimate:    dto.NewEstimateResponse(est),
		WhatsAppURL: whatsapp.QuoteLink(uc.brand, in.Contact(), req, est),
	}
	if uc.signer != nil {
		token, _, err := uc.signer.Sign(req)
		if err != nil {
			return nil, fmt.Errorf("quote: firmar referencia: %w", err)
		}
		out.Reference = token
	}
	return out, nil
}

// DownloadPDF verifica la referencia, recalcula la estimación y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrDisabled         si no hay firmador o generador configurado.
//   - domain.ErrExpired          si la referencia venció.
//   - domain.ErrInvalidInput     si la referencia no es válida.
func (uc *QuoteUseCase) DownloadPDF(ctx context.Context, reference string) ([]byte, string, error) {
	if uc.signer == nil || uc.pdf == nil {
		return nil, "", domain.ErrDisabled
	}
	req, id, err := uc.signer.Verify(reference)
	if err != nil {
		return nil, "", err
	}
	est, err := uc.estimator.Estimate(req)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdf.GenerateQuotePDF(ctx, QuotePDFData{
		Brand:       uc.brand,
		Request:     req,
		Estimate:    est,
		ReferenceID: id,
		WhatsAppURL: whatsapp.QuoteLink(uc.brand, entity.ContactDetails{}, req, est),
	})
	if err != nil {
		return nil, "", fmt.Errorf("quote: generar pdf: %w", err)
	}
	return pdfBytes, pdfFilename(id), nil
}

// EnquiryLink enlace genérico de WhatsApp de la marca.
func (uc *QuoteUseCase) EnquiryLink() string {
	return whatsapp.Link(uc.brand.WhatsAppNumber, whatsapp.EnquiryMessage(uc.brand))
}

func pdfFilename(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "quote-" + id + ".pdf"
}
