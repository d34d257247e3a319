package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain"
)

// Nombres de los modos de precio (columna mode en product_rules y en archivos YAML/CSV).
const (
	ModeFixed      = "fixed"
	ModeAreaScaled = "area_scaled"
)

// PricingMode es la variante de precio de una regla. Solo existen Fixed y AreaScaled;
// el método no exportado cierra la interfaz a este paquete.
type PricingMode interface {
	// UnitPrice devuelve el precio unitario para un área en m².
	UnitPrice(area decimal.Decimal) decimal.Decimal
	// Name devuelve ModeFixed o ModeAreaScaled.
	Name() string
	pricingMode()
}

// Fixed: precio por unidad constante, no depende de las dimensiones (ej. puerta WPC).
type Fixed struct {
	Base decimal.Decimal
}

func (f Fixed) UnitPrice(decimal.Decimal) decimal.Decimal { return f.Base }
func (Fixed) Name() string                                 { return ModeFixed }
func (Fixed) pricingMode()                                 {}

// AreaScaled: precio base más una tarifa lineal por m² (ancho × alto).
type AreaScaled struct {
	Base        decimal.Decimal
	PerAreaUnit decimal.Decimal
}

func (a AreaScaled) UnitPrice(area decimal.Decimal) decimal.Decimal {
	return a.Base.Add(a.PerAreaUnit.Mul(area))
}
func (AreaScaled) Name() string { return ModeAreaScaled }
func (AreaScaled) pricingMode() {}

// ProductRule regla de precio de un producto del catálogo. Inmutable una vez construida.
type ProductRule struct {
	Key   string // identificador fijo: garage, sliding_gate, wpc_doors...
	Label string
	Mode  PricingMode
}

// Base devuelve el precio base de la regla, sea cual sea su modo.
func (r ProductRule) Base() decimal.Decimal {
	switch m := r.Mode.(type) {
	case Fixed:
		return m.Base
	case AreaScaled:
		return m.Base
	default:
		return decimal.Zero
	}
}

// PerAreaUnit devuelve la tarifa por m² (cero para reglas Fixed).
func (r ProductRule) PerAreaUnit() decimal.Decimal {
	if m, ok := r.Mode.(AreaScaled); ok {
		return m.PerAreaUnit
	}
	return decimal.Zero
}

// NewProductRule construye una regla desde sus valores planos (fuentes YAML, CSV o PostgreSQL).
// perArea se ignora para el modo fixed.
func NewProductRule(key, label, mode string, base, perArea decimal.Decimal) (ProductRule, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return ProductRule{}, fmt.Errorf("%w: key de producto vacío", domain.ErrInvalidInput)
	}
	if base.IsNegative() || perArea.IsNegative() {
		return ProductRule{}, fmt.Errorf("%w: producto %q con precio negativo", domain.ErrInvalidInput, key)
	}
	if label == "" {
		label = key
	}
	var m PricingMode
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeFixed:
		m = Fixed{Base: base}
	case ModeAreaScaled, "":
		m = AreaScaled{Base: base, PerAreaUnit: perArea}
	default:
		return ProductRule{}, fmt.Errorf("%w: modo %q desconocido para %q", domain.ErrInvalidInput, mode, key)
	}
	return ProductRule{Key: key, Label: label, Mode: m}, nil
}
