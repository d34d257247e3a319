package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/internal/application/usecase"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

func sampleData() usecase.QuotePDFData {
	return usecase.QuotePDFData{
		Brand: entity.Brand{Name: "GERMATEK", Slogan: "Home automation", Email: "info@germatek.mu"},
		Request: entity.QuoteRequest{
			Product: "garage",
			Width:   decimal.NewFromInt(3),
			Height:  decimal.RequireFromString("2.2"),
			Qty:     decimal.NewFromInt(1),
		},
		Estimate: &entity.QuoteEstimate{
			ProductKey:   "garage",
			ProductLabel: "Automatic Garage Door",
			Area:         decimal.RequireFromString("6.6"),
			Qty:          decimal.NewFromInt(1),
			UnitEstimate: decimal.NewFromInt(154100),
			Subtotal:     decimal.NewFromInt(154100),
			Low:          decimal.NewFromInt(138690),
			High:         decimal.NewFromInt(169510),
			Currency:     "MUR",
		},
		ReferenceID: "abcdef12-3456",
		WhatsAppURL: "https://wa.me/2300000000?text=Hi",
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	g := NewMarotoPDFGenerator().WithClock(func() time.Time {
		return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	})

	out, err := g.GenerateQuotePDF(context.Background(), sampleData())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateQuotePDF_SinQRNiReferencia(t *testing.T) {
	data := sampleData()
	data.WhatsAppURL = ""
	data.ReferenceID = ""
	data.Estimate.MinJobApplied = true

	out, err := NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateQuotePDF_EstimacionNil(t *testing.T) {
	data := sampleData()
	data.Estimate = nil
	_, err := NewMarotoPDFGenerator().GenerateQuotePDF(context.Background(), data)
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "MUR 138,690", g.money("MUR", decimal.NewFromInt(138690)))
	assert.Equal(t, "1,000,000", g.money("", decimal.NewFromInt(1000000)))
	assert.Equal(t, "MUR 500", g.money("MUR", decimal.RequireFromString("499.5")))
}
