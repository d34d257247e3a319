package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
)

func TestDefaultCatalog_SeisCategorias(t *testing.T) {
	cat := quote.DefaultCatalog()
	assert.Equal(t, 6, cat.Len())

	keys := make([]string, 0, cat.Len())
	for _, r := range cat.Rules() {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"garage", "inox", "other", "sliding_gate", "swing_gate", "wpc_doors"}, keys,
		"Rules debe venir ordenado por key")

	assert.Equal(t, entity.ModeFixed, cat.Lookup("wpc_doors").Mode.Name())
	assert.Equal(t, entity.ModeAreaScaled, cat.Lookup("garage").Mode.Name())
}

func TestNewCatalog_AgregaFallbackSiFalta(t *testing.T) {
	rule, err := entity.NewProductRule("garage", "Garage", "area_scaled", decimal.NewFromInt(1), decimal.NewFromInt(2))
	require.NoError(t, err)

	cat, err := quote.NewCatalog(rule)
	require.NoError(t, err)

	assert.True(t, cat.Has(quote.FallbackKey))
	fb := cat.Lookup("lo_que_sea")
	assert.Equal(t, quote.FallbackKey, fb.Key)
	assert.True(t, fb.Base().IsZero())
	assert.True(t, fb.PerAreaUnit().IsZero())
}

func TestNewCatalog_RespetaOtherPersonalizado(t *testing.T) {
	other, err := entity.NewProductRule("other", "Otro", "fixed", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	cat, err := quote.NewCatalog(other)
	require.NoError(t, err)
	fb := cat.Lookup("desconocido")
	assert.Equal(t, "Otro", fb.Label)
	assert.True(t, fb.Base().IsZero())
}

func TestNewCatalog_OtherConCostoRechazado(t *testing.T) {
	cases := map[string]entity.PricingMode{
		"fijo":     entity.Fixed{Base: decimal.NewFromInt(50000)},
		"base":     entity.AreaScaled{Base: decimal.NewFromInt(1)},
		"por área": entity.AreaScaled{PerAreaUnit: decimal.RequireFromString("0.01")},
	}
	for name, mode := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := quote.NewCatalog(entity.ProductRule{Key: quote.FallbackKey, Label: "Other", Mode: mode})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewCatalog_Errores(t *testing.T) {
	garage := quote.ReferenceRules()[0]

	_, err := quote.NewCatalog(garage, garage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "key duplicada")

	_, err = quote.NewCatalog(entity.ProductRule{Key: "", Mode: entity.Fixed{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "key vacía")

	_, err = quote.NewCatalog(entity.ProductRule{Key: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin modo")

	_, err = quote.NewCatalog(entity.ProductRule{Key: "x", Mode: entity.Fixed{Base: decimal.NewFromInt(-1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestNewProductRule(t *testing.T) {
	r, err := entity.NewProductRule(" inox ", "", "AREA_SCALED", decimal.NewFromInt(15000), decimal.NewFromInt(22000))
	require.NoError(t, err)
	assert.Equal(t, "inox", r.Key)
	assert.Equal(t, "inox", r.Label, "sin label se usa la key")
	assert.True(t, r.Mode.UnitPrice(decimal.NewFromInt(2)).Equal(decimal.NewFromInt(59000)))

	fixed, err := entity.NewProductRule("wpc_doors", "WPC", "fixed", decimal.NewFromInt(16000), decimal.NewFromInt(999))
	require.NoError(t, err)
	assert.True(t, fixed.PerAreaUnit().IsZero(), "fixed ignora la tarifa por m²")
	assert.True(t, fixed.Mode.UnitPrice(decimal.NewFromInt(50)).Equal(decimal.NewFromInt(16000)))

	_, err = entity.NewProductRule("x", "X", "por_hora", decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
