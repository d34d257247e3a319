package quote

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// FallbackKey es la regla usada cuando el producto no existe en el catálogo.
const FallbackKey = "other"

// Catalog tabla de reglas de precio, inmutable después de NewCatalog.
// Segura para lecturas concurrentes sin bloqueo.
type Catalog struct {
	rules    map[string]entity.ProductRule
	fallback entity.ProductRule
}

// FallbackRule regla de costo cero (base 0, por m² 0).
func FallbackRule() entity.ProductRule {
	return entity.ProductRule{
		Key:   FallbackKey,
		Label: "Other",
		Mode:  entity.AreaScaled{Base: decimal.Zero, PerAreaUnit: decimal.Zero},
	}
}

// ReferenceRules tabla de referencia de Germatek (MUR).
func ReferenceRules() []entity.ProductRule {
	d := decimal.NewFromInt
	return []entity.ProductRule{
		{Key: "garage", Label: "Automatic Garage Door", Mode: entity.AreaScaled{Base: d(65000), PerAreaUnit: d(13500)}},
		{Key: "sliding_gate", Label: "Sliding Gate Opener", Mode: entity.AreaScaled{Base: d(42000), PerAreaUnit: d(4500)}},
		{Key: "swing_gate", Label: "Swing Gate Opener", Mode: entity.AreaScaled{Base: d(45000), PerAreaUnit: d(4200)}},
		{Key: "wpc_doors", Label: "WPC Flush Door (per door)", Mode: entity.Fixed{Base: d(16000)}},
		{Key: "inox", Label: "Stainless Steel / Inox Works", Mode: entity.AreaScaled{Base: d(15000), PerAreaUnit: d(22000)}},
		FallbackRule(),
	}
}

// NewCatalog valida y congela las reglas. Si no viene la regla "other" se agrega la de costo cero;
// si viene, solo puede cambiar la etiqueta: con costo distinto de cero se rechaza.
func NewCatalog(rules ...entity.ProductRule) (*Catalog, error) {
	c := &Catalog{rules: make(map[string]entity.ProductRule, len(rules)+1)}
	for _, r := range rules {
		if r.Key == "" {
			return nil, fmt.Errorf("%w: regla sin key", domain.ErrInvalidInput)
		}
		if r.Mode == nil {
			return nil, fmt.Errorf("%w: regla %q sin modo de precio", domain.ErrInvalidInput, r.Key)
		}
		if r.Base().IsNegative() || r.PerAreaUnit().IsNegative() {
			return nil, fmt.Errorf("%w: regla %q con precio negativo", domain.ErrInvalidInput, r.Key)
		}
		if r.Key == FallbackKey && !(r.Base().IsZero() && r.PerAreaUnit().IsZero()) {
			return nil, fmt.Errorf("%w: regla %q debe tener costo cero", domain.ErrInvalidInput, r.Key)
		}
		if _, dup := c.rules[r.Key]; dup {
			return nil, fmt.Errorf("%w: regla %q duplicada", domain.ErrInvalidInput, r.Key)
		}
		c.rules[r.Key] = r
	}
	fb, ok := c.rules[FallbackKey]
	if !ok {
		fb = FallbackRule()
		c.rules[FallbackKey] = fb
	}
	c.fallback = fb
	return c, nil
}

// DefaultCatalog catálogo construido con ReferenceRules.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(ReferenceRules()...)
	if err != nil {
		panic("catálogo de referencia inválido: " + err.Error())
	}
	return c
}

// Lookup devuelve la regla del producto o la regla "other" si no existe.
// Un producto desconocido no es un error: se cotiza con el mínimo.
func (c *Catalog) Lookup(key string) entity.ProductRule {
	if r, ok := c.rules[key]; ok {
		return r
	}
	return c.fallback
}

// Has indica si el producto tiene regla propia.
func (c *Catalog) Has(key string) bool {
	_, ok := c.rules[key]
	return ok
}

// Rules devuelve una copia de las reglas ordenada por key.
func (c *Catalog) Rules() []entity.ProductRule {
	out := make([]entity.ProductRule, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len número de reglas, incluida la de respaldo.
func (c *Catalog) Len() int { return len(c.rules) }
