// Package reference adapta pkg/jwt al puerto usecase.ReferenceSigner.
package reference

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/germatek-api/pkg/jwt"
)

// JWTSigner firma referencias HS256 con vencimiento.
type JWTSigner struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewJWTSigner construye el firmador. secret no puede estar vacío.
func NewJWTSigner(secret, issuer string, ttl time.Duration) (*JWTSigner, error) {
	if secret == "" {
		return nil, fmt.Errorf("reference: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("reference: ttl debe ser positivo")
	}
	return &JWTSigner{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// Sign guarda los valores como texto decimal exacto para que el recálculo sea idéntico.
func (s *JWTSigner) Sign(req entity.QuoteRequest) (string, string, error) {
	return pkgjwt.Generate(s.secret, s.issuer, s.ttl,
		req.Product, req.Width.String(), req.Height.String(), req.Qty.String())
}

// Verify valida el token y reconstruye la solicitud.
func (s *JWTSigner) Verify(token string) (entity.QuoteRequest, string, error) {
	claims, err := pkgjwt.Parse(s.secret, s.issuer, token)
	if err != nil {
		if errors.Is(err, pkgjwt.ErrExpired) {
			return entity.QuoteRequest{}, "", domain.ErrExpired
		}
		return entity.QuoteRequest{}, "", fmt.Errorf("%w: referencia inválida", domain.ErrInvalidInput)
	}
	req := entity.QuoteRequest{Product: claims.Product}
	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{claims.Width, &req.Width},
		{claims.Height, &req.Height},
		{claims.Qty, &req.Qty},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return entity.QuoteRequest{}, "", fmt.Errorf("%w: referencia con valores inválidos", domain.ErrInvalidInput)
		}
		*f.dst = d
	}
	return req, claims.ID, nil
}
