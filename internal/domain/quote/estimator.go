// Package quote contiene la lógica pura de cotización: catálogo de reglas y estimador.
//
// Procedimiento:
//
//	area     = ancho × alto
//	unit     = base                      (Fixed)
//	unit     = base + porM2 × area       (AreaScaled)
//	subtotal = max(unit × qty, MinJob)
//	low      = round(subtotal × (1 - Band))
//	high     = round(subtotal × (1 + Band))
package quote

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// Policy parámetros de la política de precios (mínimo, banda y moneda).
type Policy struct {
	MinJob   decimal.Decimal
	Band     decimal.Decimal // 0.10 = ±10%
	Currency string
}

// DefaultPolicy configuración de referencia: mínimo 18000 MUR, banda ±10%.
func DefaultPolicy() Policy {
	return Policy{
		MinJob:   decimal.NewFromInt(18000),
		Band:     decimal.NewFromFloat(0.10),
		Currency: "MUR",
	}
}

// Validate verifica que la política sea utilizable.
func (p Policy) Validate() error {
	if p.MinJob.IsNegative() {
		return fmt.Errorf("%w: mínimo de trabajo negativo", domain.ErrInvalidInput)
	}
	if p.Band.IsNegative() || p.Band.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: la banda debe estar en [0, 1)", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Currency) == "" {
		return fmt.Errorf("%w: moneda vacía", domain.ErrInvalidInput)
	}
	return nil
}

// Estimator calcula rangos de precio. No tiene estado mutable: seguro para uso concurrente.
type Estimator struct {
	catalog *Catalog
	policy  Policy
}

// NewEstimator construye el estimador con un catálogo y una política ya validados.
func NewEstimator(catalog *Catalog, policy Policy) (*Estimator, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catálogo nil", domain.ErrInvalidInput)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{catalog: catalog, policy: policy}, nil
}

// Catalog devuelve el catálogo usado por el estimador.
func (e *Estimator) Catalog() *Catalog { return e.catalog }

// Policy devuelve la política usada por el estimador.
func (e *Estimator) Policy() Policy { return e.policy }

// Validate aplica las reglas de entrada. Devuelve *domain.ValidationError en el primer campo inválido.
func Validate(req entity.QuoteRequest) error {
	if strings.TrimSpace(req.Product) == "" {
		return domain.NewValidationError("product", "is required")
	}
	if !req.Width.IsPositive() {
		return domain.NewValidationError("width", "must be greater than 0")
	}
	if !req.Height.IsPositive() {
		return domain.NewValidationError("height", "must be greater than 0")
	}
	if !req.Qty.IsPositive() {
		return domain.NewValidationError("qty", "must be greater than 0")
	}
	return nil
}

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Estimate valida la solicitud y calcula el rango. Misma entrada, misma salida.
func (e *Estimator) Estimate(req entity.QuoteRequest) (*entity.QuoteEstimate, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	area := req.Width.Mul(req.Height)
	rule := e.catalog.Lookup(req.Product)
	unit := rule.Mode.UnitPrice(area)

	subtotal := unit.Mul(req.Qty)
	final := decimal.Max(subtotal, e.policy.MinJob)

	one := decimal.NewFromInt(1)
	// Round usa redondeo half away from zero.
	low := final.Mul(one.Sub(e.policy.Band)).Round(0)
	high := final.Mul(one.Add(e.policy.Band)).Round(0)
	unitRounded := unit.Round(0)

	// Los montos se publican como enteros de 64 bits.
	if high.GreaterThan(maxAmount) || unitRounded.GreaterThan(maxAmount) {
		return nil, domain.NewValidationError("estimate", "exceeds the supported range")
	}

	return &entity.QuoteEstimate{
		ProductKey:    rule.Key,
		ProductLabel:  rule.Label,
		Area:          area.Round(2),
		Qty:           req.Qty,
		UnitEstimate:  unitRounded,
		Subtotal:      final,
		Low:           low,
		High:          high,
		Currency:      e.policy.Currency,
		MinJobApplied: subtotal.LessThan(e.policy.MinJob),
	}, nil
}
